package static_test

import (
	"net/http"
	"testing"

	"github.com/lk16/reversi/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestStaticFiles(t *testing.T) {
	files := []string{
		"game.css",
		"game.html",
		"game.js",
	}

	app, _ := tests.NewTestApp(t)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/static/"+file, nil)
			require.NoError(t, err)

			resp, err := app.Test(req)
			require.NoError(t, err)

			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestStaticFiles_Missing(t *testing.T) {
	app, _ := tests.NewTestApp(t)

	req, err := http.NewRequest(http.MethodGet, "/static/book.html", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

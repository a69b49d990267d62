package static

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/lk16/reversi/internal/config"
)

// SetupRoutes serves the files in the configured static directory.
func SetupRoutes(app *fiber.App, cfg *config.ServerConfig) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.Dir(cfg.StaticDir),
		Browse: false,
	}))
}

// Package tests contains helpers for the route tests.
package tests

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/services"
)

const (
	TestToken    = "test-token"
	TestUser     = "admin"
	TestPassword = "secret"
)

// StaticDir returns the path of the static directory in the repository.
func StaticDir() string {
	_, file, _, _ := runtime.Caller(0) //nolint:dogsled
	return filepath.Join(filepath.Dir(file), "..", "..", "static")
}

// NewTestConfig returns a config without storage.
func NewTestConfig() *config.ServerConfig {
	return &config.ServerConfig{
		ServerHost:        "127.0.0.1",
		ServerPort:        "0",
		StaticDir:         StaticDir(),
		BasicAuthUsername: TestUser,
		BasicAuthPassword: TestPassword,
		Token:             TestToken,
	}
}

// NewTestApp builds an app without storage and returns it with its match registry.
func NewTestApp(t *testing.T) (*fiber.App, *match.Registry) {
	t.Helper()

	matches := match.NewRegistry(nil)
	app := internal.BuildApp(NewTestConfig(), &services.Services{}, matches)

	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	return app, matches
}

package internal

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/routes"
	"github.com/lk16/reversi/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024
	schemaTimeout       = 10 * time.Second
)

// SetupApp loads the configuration from the environment, connects to the
// external services and builds the app. It exits on failure.
func SetupApp() (*fiber.App, *config.ServerConfig) {
	cfg := config.LoadServerConfig()

	svcs, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	var recorder match.Recorder = match.NopRecorder{}

	if svcs.Enabled() {
		repo := repository.NewResultRepositoryFromServices(svcs)

		ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
		defer cancel()

		if err = repo.EnsureSchema(ctx); err != nil {
			slog.Error("Failed to prepare result storage", "error", err)
			os.Exit(1)
		}

		recorder = repo
	} else {
		slog.Warn("Result storage disabled, finished matches are not archived")
	}

	return BuildApp(cfg, svcs, match.NewRegistry(recorder)), cfg
}

// BuildApp creates the fiber app with all routes.
func BuildApp(cfg *config.ServerConfig, svcs *services.Services, matches *match.Registry) *fiber.App {
	// Matches live in memory, so the app must not be preforked.
	app := fiber.New(fiber.Config{
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Setup connections to external services, config and matches in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", svcs)
		c.Locals("config", cfg)
		c.Locals("matches", matches)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app, cfg)

	return app
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Match routes
	apiGroup.Post("/matches", CreateMatch)
	apiGroup.Get("/matches/:id", GetMatch)
	apiGroup.Post("/matches/:id/turns", PlayTurn)
	apiGroup.Post("/matches/:id/restart", RestartMatch)
	apiGroup.Delete("/matches/:id", DeleteMatch)

	// Result routes
	apiGroup.Get("/results", middleware.AuthOrToken(), GetResults)
	apiGroup.Get("/stats", middleware.AuthOrToken(), GetStats)
}

func getMatches(c *fiber.Ctx) *match.Registry {
	return c.Locals("matches").(*match.Registry) //nolint: errcheck
}

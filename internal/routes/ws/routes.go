package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/ws"
)

func handleWs(c *websocket.Conn) {
	matches := c.Locals("matches").(*match.Registry) //nolint: errcheck

	h := ws.NewHandler(c, matches)
	if err := h.Handle(); err != nil {
		slog.Debug("ws session ended", "error", err)
	}
}

// upgradeOnly rejects plain http requests to the websocket endpoint.
func upgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws", upgradeOnly, websocket.New(handleWs))
}

package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade ensures that requests to WebSocket endpoints are valid WebSocket connection attempts.
// It also checks that the board and viewer ids are present before allowing the upgrade.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		if c.Params("boardId") == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "board ID is required",
			})
		}

		// Set by EnsureViewerID
		if c.Locals("viewerID") == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "viewer ID is required",
			})
		}

		return c.Next()
	}
}

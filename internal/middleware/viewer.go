package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const ViewerIDHeader = "X-Viewer-ID"

// EnsureViewerID stores the caller's viewer id in Locals("viewerID"). The id
// comes from the X-Viewer-ID header or the viewerId query parameter; callers
// without one are issued a fresh id, echoed back in the response header.
func EnsureViewerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("viewerID") != nil {
			return c.Next()
		}

		viewerID := c.Get(ViewerIDHeader)
		if viewerID == "" {
			viewerID = c.Query("viewerId")
		}
		if viewerID == "" {
			viewerID = uuid.New().String()
		}

		c.Set(ViewerIDHeader, viewerID)
		c.Locals("viewerID", viewerID)
		return c.Next()
	}
}

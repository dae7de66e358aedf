package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewerApp() *fiber.App {
	app := fiber.New()
	app.Use(EnsureViewerID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("viewerID").(string))
	})
	return app
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func TestEnsureViewerIDFromHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ViewerIDHeader, "viewer-7")

	resp, err := viewerApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "viewer-7", body(t, resp))
	assert.Equal(t, "viewer-7", resp.Header.Get(ViewerIDHeader))
}

func TestEnsureViewerIDFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?viewerId=from-query", nil)

	resp, err := viewerApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "from-query", body(t, resp))
}

func TestEnsureViewerIDIssuesNewID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	resp, err := viewerApp().Test(req)
	require.NoError(t, err)
	id := body(t, resp)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, resp.Header.Get(ViewerIDHeader))
}

func TestWebSocketUpgradeRejectsPlainRequests(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/:boardId", WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ws/b1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func upgradeRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	return req
}

func TestWebSocketUpgradeRequiresViewerID(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/:boardId", WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(upgradeRequest("/ws/b1"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWebSocketUpgradePassesThrough(t *testing.T) {
	var viewerID, boardLocal interface{}
	app := fiber.New()
	app.Get("/ws/:boardId", EnsureViewerID(), WebSocketUpgrade(), func(c *fiber.Ctx) error {
		viewerID = c.Locals("viewerID")
		boardLocal = c.Locals("wsBoardID")
		return c.SendStatus(fiber.StatusOK)
	})

	req := upgradeRequest("/ws/b1")
	req.Header.Set(ViewerIDHeader, "viewer-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "viewer-1", viewerID)
	assert.Nil(t, boardLocal)
}

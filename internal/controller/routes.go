package controller

import (
	"github.com/benbeisheim/boardview-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func SetupRoutes(app *fiber.App, bc *BoardController, wsc *WebSocketController) {
	// WebSocket routes
	app.Use("/ws/*", middleware.EnsureViewerID())
	app.Get("/ws/boards/:boardId", middleware.WebSocketUpgrade(), websocket.New(wsc.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	// REST routes
	api := app.Group("/api", middleware.EnsureViewerID())

	boards := api.Group("/boards")
	boards.Post("/", bc.CreateBoard)
	boards.Get("/default", bc.DefaultBoard)
	boards.Get("/:boardId", bc.GetFrame)
	boards.Put("/:boardId", bc.LoadRecord)
	boards.Delete("/:boardId", bc.RemoveBoard)
	boards.Get("/:boardId/squares/:square", bc.GetSquare)
	boards.Get("/:boardId/locate", bc.Locate)
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/benbeisheim/boardview-backend/internal/config"
	"github.com/benbeisheim/boardview-backend/internal/controller"
	"github.com/benbeisheim/boardview-backend/internal/model"
	"github.com/benbeisheim/boardview-backend/internal/render"
	"github.com/benbeisheim/boardview-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Setup(config.Path())
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}
	logger := NewLogger(cfg.Debug)
	defer logger.Sync()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Viewer-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(func(c *fiber.Ctx) error {
		logger.Debugw("incoming request", "method", c.Method(), "path", c.Path())
		return c.Next()
	})

	// Initialize services
	decoder := model.NewDecoder(logger, cfg.StrictPlacement)
	boardManager := service.NewBoardManager(decoder, logger)
	boardService := service.NewBoardService(boardManager, model.SquareLayout(cfg.TileSize), render.NewAssetSet(cfg.AssetDir), logger)
	if err := boardService.InitDefault(cfg.InitialRecord); err != nil {
		logger.Fatalw("failed to load initial record", "record", cfg.InitialRecord, "error", err)
	}

	// Initialize controllers
	boardController := controller.NewBoardController(boardService, logger)
	wsController := controller.NewWebSocketController(boardService, logger)
	controller.SetupRoutes(app, boardController, wsController)

	go handleShutdown(app, logger)

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err := app.Listen(cfg.ServerPort); err != nil {
		logger.Fatalw("failed to start server", "error", err)
	}
}

func NewLogger(debug bool) *zap.SugaredLogger {
	build := zap.NewProduction
	if debug {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func handleShutdown(app *fiber.App, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	if err := app.Shutdown(); err != nil {
		log.Errorw("shutdown failed", "error", err)
	}
}

package controller

import (
	"errors"

	"github.com/benbeisheim/boardview-backend/internal/model"
	"github.com/benbeisheim/boardview-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BoardController struct {
	boardService *service.BoardService
	log          *zap.SugaredLogger
}

type recordRequest struct {
	Record string `json:"record"`
}

func NewBoardController(boardService *service.BoardService, log *zap.SugaredLogger) *BoardController {
	return &BoardController{boardService: boardService, log: log}
}

func (bc *BoardController) CreateBoard(c *fiber.Ctx) error {
	var req recordRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}

	boardID, err := bc.boardService.CreateBoard(req.Record)
	if err != nil {
		bc.log.Infow("create board rejected", "error", err)
		return errorResponse(c, statusFor(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Board created",
		"boardId": boardID,
	})
}

func (bc *BoardController) DefaultBoard(c *fiber.Ctx) error {
	boardID, err := bc.boardService.DefaultBoardID()
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(fiber.Map{"boardId": boardID})
}

func (bc *BoardController) GetFrame(c *fiber.Ctx) error {
	frame, err := bc.boardService.GetFrame(c.Params("boardId"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(frame)
}

func (bc *BoardController) LoadRecord(c *fiber.Ctx) error {
	var req recordRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}

	frame, err := bc.boardService.LoadRecord(c.Params("boardId"), req.Record)
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(frame)
}

func (bc *BoardController) RemoveBoard(c *fiber.Ctx) error {
	if err := bc.boardService.RemoveBoard(c.Params("boardId")); err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (bc *BoardController) GetSquare(c *fiber.Ctx) error {
	info, err := bc.boardService.PieceAt(c.Params("boardId"), c.Params("square"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(info)
}

func (bc *BoardController) Locate(c *fiber.Ctx) error {
	x, y := c.QueryInt("x", -1), c.QueryInt("y", -1)
	info, err := bc.boardService.Locate(c.Params("boardId"), x, y)
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(info)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrInvalidRecord),
		errors.Is(err, model.ErrInvalidRankCount),
		errors.Is(err, model.ErrInvalidPlacement),
		errors.Is(err, model.ErrOutOfBounds),
		errors.Is(err, service.ErrInvalidSquare):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

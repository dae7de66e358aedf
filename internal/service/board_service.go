package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/boardview-backend/internal/model"
	"github.com/benbeisheim/boardview-backend/internal/render"
	"github.com/benbeisheim/boardview-backend/internal/ws"
	"go.uber.org/zap"
)

var ErrInvalidSquare = errors.New("invalid square")

// SquareInfo describes one square and its occupant, if any.
type SquareInfo struct {
	Square   string         `json:"square"`
	Position model.Position `json:"position"`
	Piece    *model.Piece   `json:"piece"`
}

type BoardService struct {
	boardManager *BoardManager
	layout       model.Layout
	assets       *render.AssetSet
	log          *zap.SugaredLogger
	defaultID    string
	mu           sync.RWMutex
}

func NewBoardService(boardManager *BoardManager, layout model.Layout, assets *render.AssetSet, log *zap.SugaredLogger) *BoardService {
	return &BoardService{
		boardManager: boardManager,
		layout:       layout,
		assets:       assets,
		log:          log,
	}
}

// InitDefault creates the board served by the default route.
func (bs *BoardService) InitDefault(record string) error {
	session, err := bs.boardManager.CreateBoard(record)
	if err != nil {
		return fmt.Errorf("failed to create default board: %w", err)
	}
	bs.mu.Lock()
	bs.defaultID = session.ID
	bs.mu.Unlock()
	return nil
}

func (bs *BoardService) DefaultBoardID() (string, error) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	if bs.defaultID == "" {
		return "", ErrBoardNotFound
	}
	return bs.defaultID, nil
}

func (bs *BoardService) CreateBoard(record string) (string, error) {
	session, err := bs.boardManager.CreateBoard(record)
	if err != nil {
		return "", fmt.Errorf("failed to create board: %w", err)
	}
	return session.ID, nil
}

func (bs *BoardService) GetFrame(boardID string) (render.Frame, error) {
	session, err := bs.boardManager.GetSession(boardID)
	if err != nil {
		return render.Frame{}, err
	}
	return bs.frame(session), nil
}

// LoadRecord replaces the board position and pushes the new frame to viewers.
func (bs *BoardService) LoadRecord(boardID, record string) (render.Frame, error) {
	var frame render.Frame
	_, err := bs.boardManager.LoadRecord(boardID, record, func(board *model.Board, rec model.Record) {
		frame = render.NewFrame(boardID, board, rec, bs.layout, bs.assets)
		bs.broadcast(boardID, frame)
	})
	if err != nil {
		return render.Frame{}, fmt.Errorf("failed to load record: %w", err)
	}
	return frame, nil
}

func (bs *BoardService) RemoveBoard(boardID string) error {
	if err := bs.boardManager.RemoveBoard(boardID); err != nil {
		return err
	}
	bs.mu.Lock()
	if boardID == bs.defaultID {
		bs.defaultID = ""
	}
	bs.mu.Unlock()
	return nil
}

// PieceAt looks up a square given in algebraic notation.
func (bs *BoardService) PieceAt(boardID, square string) (SquareInfo, error) {
	pos, err := model.ParseSquare(square)
	if err != nil {
		return SquareInfo{}, fmt.Errorf("%w: %v", ErrInvalidSquare, err)
	}
	return bs.squareInfo(boardID, pos)
}

// Locate maps pointer coordinates of a drag to the square under them.
func (bs *BoardService) Locate(boardID string, x, y int) (SquareInfo, error) {
	pos, err := bs.layout.SquareAt(x, y)
	if err != nil {
		return SquareInfo{}, err
	}
	return bs.squareInfo(boardID, pos)
}

// RegisterViewer attaches conn to the board and sends it the current frame.
func (bs *BoardService) RegisterViewer(boardID, viewerID string, conn model.Conn) error {
	_, err := bs.boardManager.RegisterViewer(boardID, model.Viewer{ID: viewerID, Conn: conn}, func(board *model.Board, rec model.Record) error {
		msg, err := ws.NewMessage(ws.MessageTypeFrame, render.NewFrame(boardID, board, rec, bs.layout, bs.assets))
		if err != nil {
			return err
		}
		return conn.WriteJSON(msg)
	})
	return err
}

func (bs *BoardService) UnregisterViewer(boardID, viewerID string, conn model.Conn) {
	bs.boardManager.UnregisterViewer(boardID, viewerID, conn)
}

func (bs *BoardService) squareInfo(boardID string, pos model.Position) (SquareInfo, error) {
	session, err := bs.boardManager.GetSession(boardID)
	if err != nil {
		return SquareInfo{}, err
	}
	board, _ := session.Snapshot()
	piece, err := board.PieceAt(pos.X, pos.Y)
	if err != nil {
		return SquareInfo{}, err
	}
	return SquareInfo{Square: pos.Notation(), Position: pos, Piece: piece}, nil
}

func (bs *BoardService) frame(session *model.Session) render.Frame {
	board, rec := session.Snapshot()
	return render.NewFrame(session.ID, board, rec, bs.layout, bs.assets)
}

func (bs *BoardService) broadcast(boardID string, frame render.Frame) {
	session, err := bs.boardManager.GetSession(boardID)
	if err != nil {
		return
	}
	msg, err := ws.NewMessage(ws.MessageTypeFrame, frame)
	if err != nil {
		bs.log.Errorw("failed to marshal frame", "board", boardID, "error", err)
		return
	}
	session.Broadcast(msg)
}

// service/board_manager.go
package service

import (
	"errors"
	"sync"

	"github.com/benbeisheim/boardview-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrBoardNotFound = errors.New("board not found")

// BoardManager keeps every live session keyed by board id.
type BoardManager struct {
	sessions map[string]*model.Session
	decoder  *model.Decoder
	log      *zap.SugaredLogger
	mu       sync.RWMutex
}

func NewBoardManager(decoder *model.Decoder, log *zap.SugaredLogger) *BoardManager {
	return &BoardManager{
		sessions: make(map[string]*model.Session),
		decoder:  decoder,
		log:      log,
	}
}

// CreateBoard decodes record into a new session and registers it.
func (bm *BoardManager) CreateBoard(record string) (*model.Session, error) {
	session := model.NewSession(uuid.New().String(), bm.log)
	if err := session.Load(bm.decoder, record); err != nil {
		return nil, err
	}

	bm.mu.Lock()
	bm.sessions[session.ID] = session
	bm.mu.Unlock()
	bm.log.Infow("board created", "board", session.ID)
	return session, nil
}

func (bm *BoardManager) GetSession(boardID string) (*model.Session, error) {
	bm.mu.RLock()
	defer bm.mu.RUnlock()

	session, exists := bm.sessions[boardID]
	if !exists {
		return nil, ErrBoardNotFound
	}
	return session, nil
}

// LoadRecord reloads the board and passes the new position to publish.
func (bm *BoardManager) LoadRecord(boardID, record string, publish func(*model.Board, model.Record)) (*model.Session, error) {
	session, err := bm.GetSession(boardID)
	if err != nil {
		return nil, err
	}
	if err := session.Reload(bm.decoder, record, publish); err != nil {
		bm.log.Warnw("record rejected", "board", boardID, "error", err)
		return nil, err
	}
	return session, nil
}

func (bm *BoardManager) RemoveBoard(boardID string) error {
	bm.mu.Lock()
	session, exists := bm.sessions[boardID]
	delete(bm.sessions, boardID)
	bm.mu.Unlock()

	if !exists {
		return ErrBoardNotFound
	}
	session.CloseViewers()
	bm.log.Infow("board removed", "board", boardID)
	return nil
}

func (bm *BoardManager) RegisterViewer(boardID string, viewer model.Viewer, publish func(*model.Board, model.Record) error) (*model.Session, error) {
	session, err := bm.GetSession(boardID)
	if err != nil {
		return nil, err
	}
	if err := session.Join(viewer, publish); err != nil {
		return nil, err
	}
	return session, nil
}

func (bm *BoardManager) UnregisterViewer(boardID, viewerID string, conn model.Conn) {
	session, err := bm.GetSession(boardID)
	if err != nil {
		return
	}
	session.RemoveViewer(viewerID, conn)
}

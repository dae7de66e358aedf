package model

import (
	"fmt"
	"sync"

	"github.com/benbeisheim/boardview-backend/internal/ws"
	"go.uber.org/zap"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type Viewer struct {
	ID   string
	Conn Conn
}

// The connections watching a specific board
type SessionViewers struct {
	viewers map[string]Conn // viewerID -> connection
	mu      sync.RWMutex
}

// Session owns one board and the viewers rendering it. Loading a record
// builds a new board and swaps it in, so a board handed out by Snapshot is
// never written again.
type Session struct {
	ID      string
	mu      sync.RWMutex
	board   *Board
	record  Record
	viewers *SessionViewers
	log     *zap.SugaredLogger

	// Held from swap to publish so viewers see positions in load order
	publishMu sync.Mutex
}

func NewSession(id string, log *zap.SugaredLogger) *Session {
	return &Session{
		ID:    id,
		board: NewBoard(),
		viewers: &SessionViewers{
			viewers: make(map[string]Conn),
		},
		log: log,
	}
}

// Load decodes record into a fresh board and makes it current. On error the
// current board is kept.
func (s *Session) Load(d *Decoder, record string) error {
	board := NewBoard()
	rec, err := d.Decode(board, record)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.board = board
	s.record = rec
	s.mu.Unlock()
	s.log.Infow("position loaded", "board", s.ID, "pieces", board.Count())
	return nil
}

// Reload loads record and hands the new position to publish before any
// other load or join on this session can run.
func (s *Session) Reload(d *Decoder, record string, publish func(*Board, Record)) error {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	if err := s.Load(d, record); err != nil {
		return err
	}
	board, rec := s.Snapshot()
	publish(board, rec)
	return nil
}

// Join adds v and hands it the current position through publish. A viewer
// whose first publish fails is removed again.
func (s *Session) Join(v Viewer, publish func(*Board, Record) error) error {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	if err := s.AddViewer(v); err != nil {
		return err
	}
	board, rec := s.Snapshot()
	if err := publish(board, rec); err != nil {
		s.RemoveViewer(v.ID, v.Conn)
		return err
	}
	return nil
}

func (s *Session) Snapshot() (*Board, Record) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board, s.record
}

func (s *Session) AddViewer(v Viewer) error {
	s.viewers.mu.Lock()
	defer s.viewers.mu.Unlock()

	if _, exists := s.viewers.viewers[v.ID]; exists {
		return fmt.Errorf("viewer %s already watching board %s", v.ID, s.ID)
	}
	s.viewers.viewers[v.ID] = v.Conn
	s.log.Infow("viewer registered", "board", s.ID, "viewer", v.ID)
	return nil
}

// RemoveViewer drops the viewer only if conn is still its registered connection.
func (s *Session) RemoveViewer(viewerID string, conn Conn) {
	s.viewers.mu.Lock()
	defer s.viewers.mu.Unlock()

	if current, exists := s.viewers.viewers[viewerID]; exists && current == conn {
		delete(s.viewers.viewers, viewerID)
		s.log.Infow("viewer unregistered", "board", s.ID, "viewer", viewerID)
	}
}

func (s *Session) ViewerCount() int {
	s.viewers.mu.RLock()
	defer s.viewers.mu.RUnlock()
	return len(s.viewers.viewers)
}

// Broadcast writes msg to every viewer. Viewers whose write fails are dropped.
func (s *Session) Broadcast(msg ws.Message) {
	// Copy under the read lock, write without holding it
	s.viewers.mu.RLock()
	active := make(map[string]Conn, len(s.viewers.viewers))
	for id, conn := range s.viewers.viewers {
		active[id] = conn
	}
	s.viewers.mu.RUnlock()

	for id, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			s.log.Warnw("failed to send to viewer", "board", s.ID, "viewer", id, "error", err)
			s.RemoveViewer(id, conn)
		}
	}
}

// CloseViewers closes every viewer connection, used when a board is removed.
func (s *Session) CloseViewers() {
	s.viewers.mu.Lock()
	defer s.viewers.mu.Unlock()
	for id, conn := range s.viewers.viewers {
		if err := conn.Close(); err != nil {
			s.log.Debugw("close error", "board", s.ID, "viewer", id, "error", err)
		}
		delete(s.viewers.viewers, id)
	}
}

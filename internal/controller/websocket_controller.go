package controller

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/boardview-backend/internal/service"
	"github.com/benbeisheim/boardview-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

type WebSocketController struct {
	boardService *service.BoardService
	log          *zap.SugaredLogger
}

func NewWebSocketController(boardService *service.BoardService, log *zap.SugaredLogger) *WebSocketController {
	return &WebSocketController{
		boardService: boardService,
		log:          log,
	}
}

// lockedConn serializes writes; broadcasts and replies share one connection.
type lockedConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (l *lockedConn) WriteJSON(v interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn.WriteJSON(v)
}

func (l *lockedConn) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn.Close()
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	boardID := c.Params("boardId")
	viewerID, _ := c.Locals("viewerID").(string)
	conn := &lockedConn{conn: c}

	if err := wsc.boardService.RegisterViewer(boardID, viewerID, conn); err != nil {
		wsc.log.Warnw("failed to register viewer", "board", boardID, "viewer", viewerID, "error", err)
		closeMsg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error())
		if err := c.WriteMessage(websocket.CloseMessage, closeMsg); err != nil {
			wsc.log.Debugw("close message error", "board", boardID, "viewer", viewerID, "error", err)
		}
		if err := c.Close(); err != nil {
			wsc.log.Debugw("close error", "board", boardID, "viewer", viewerID, "error", err)
		}
		return
	}
	defer wsc.boardService.UnregisterViewer(boardID, viewerID, conn)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			wsc.log.Debugw("read error", "board", boardID, "viewer", viewerID, "error", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(conn, fmt.Errorf("parse error: %w", err))
			continue
		}

		reply, err := wsc.handleMessage(boardID, msg)
		if err != nil {
			wsc.log.Infow("message rejected", "board", boardID, "type", msg.Type, "error", err)
			wsc.sendError(conn, err)
			continue
		}
		if reply != nil {
			if err := conn.WriteJSON(reply); err != nil {
				wsc.log.Warnw("write error", "board", boardID, "viewer", viewerID, "error", err)
				break
			}
		}
	}
}

// handleMessage returns the direct reply to msg, if there is one. Loads are
// answered through the broadcast every viewer receives.
func (wsc *WebSocketController) handleMessage(boardID string, msg ws.Message) (*ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeLoad:
		var payload ws.LoadPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return nil, err
		}
		_, err := wsc.boardService.LoadRecord(boardID, payload.Record)
		return nil, err

	case ws.MessageTypeLocate:
		var payload ws.LocatePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return nil, err
		}
		info, err := wsc.boardService.Locate(boardID, payload.X, payload.Y)
		if err != nil {
			return nil, err
		}
		reply, err := ws.NewMessage(ws.MessageTypeSquare, info)
		return &reply, err

	default:
		return nil, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(conn *lockedConn, err error) {
	msg, merr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if merr != nil {
		return
	}
	conn.WriteJSON(msg)
}

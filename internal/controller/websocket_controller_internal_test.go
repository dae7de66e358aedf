package controller

import (
	"encoding/json"
	"testing"

	"github.com/benbeisheim/boardview-backend/internal/model"
	"github.com/benbeisheim/boardview-backend/internal/render"
	"github.com/benbeisheim/boardview-backend/internal/service"
	"github.com/benbeisheim/boardview-backend/internal/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWSController(t *testing.T) (*WebSocketController, *service.BoardService, string) {
	t.Helper()
	log := zap.NewNop().Sugar()
	manager := service.NewBoardManager(model.NewDecoder(log, false), log)
	bs := service.NewBoardService(manager, model.SquareLayout(64), render.NewAssetSet("assets"), log)
	id, err := bs.CreateBoard(model.StartingRecord)
	require.NoError(t, err)
	return NewWebSocketController(bs, log), bs, id
}

func message(t *testing.T, mt ws.MessageType, payload string) ws.Message {
	t.Helper()
	return ws.Message{Type: mt, Payload: json.RawMessage(payload)}
}

func TestHandleMessageLoad(t *testing.T) {
	wsc, bs, id := newTestWSController(t)

	reply, err := wsc.handleMessage(id, message(t, ws.MessageTypeLoad, `{"record":"4k3/8/8/8/8/8/8/4K3 w - - 0 1"}`))
	require.NoError(t, err)
	assert.Nil(t, reply)

	frame, err := bs.GetFrame(id)
	require.NoError(t, err)
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3", frame.Placement)

	_, err = wsc.handleMessage(id, message(t, ws.MessageTypeLoad, `{"record":"8/8 w - - 0 1"}`))
	assert.ErrorIs(t, err, model.ErrInvalidRankCount)
}

func TestHandleMessageLocate(t *testing.T) {
	wsc, _, id := newTestWSController(t)

	reply, err := wsc.handleMessage(id, message(t, ws.MessageTypeLocate, `{"x":70,"y":450}`))
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, ws.MessageTypeSquare, reply.Type)

	var info service.SquareInfo
	require.NoError(t, json.Unmarshal(reply.Payload, &info))
	assert.Equal(t, "b1", info.Square)
	require.NotNil(t, info.Piece)
	assert.Equal(t, model.Piece{Type: model.Knight, Side: model.SideBlack}, *info.Piece)

	_, err = wsc.handleMessage(id, message(t, ws.MessageTypeLocate, `{"x":9000,"y":0}`))
	assert.ErrorIs(t, err, model.ErrOutOfBounds)
}

func TestHandleMessageUnknownType(t *testing.T) {
	wsc, _, id := newTestWSController(t)

	_, err := wsc.handleMessage(id, message(t, ws.MessageType("move"), `{}`))
	assert.EqualError(t, err, "unknown message type: move")
}

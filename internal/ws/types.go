package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages exchanged with viewers
type MessageType string

const (
	MessageTypeFrame  MessageType = "frame"
	MessageTypeLoad   MessageType = "load"
	MessageTypeLocate MessageType = "locate"
	MessageTypeSquare MessageType = "square"
	MessageTypeError  MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type LoadPayload struct {
	Record string `json:"record"`
}

type LocatePayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

package websocket

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/gridgames/internal/entity"
)

const (
	actionNewGame  = "game:new"
	actionTurn     = "game:turn"
	actionPass     = "game:pass"
	actionState    = "game:state"
	actionThinking = "ai:thinking"
	actionAIMove   = "game:ai"
	actionError    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Options *entity.GameOptions `json:"options,omitempty"`
	Cell    *int                `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Game  *entity.State `json:"game,omitempty"`
	Cell  *int          `json:"cell,omitempty"`
	Error string        `json:"error,omitempty"`
}

func decodePayload(msg *Message) (*Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}

func sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err = conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = conn.WriteMessage(websocket.TextMessage, response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func sendErrorResponse(conn *websocket.Conn, action string, game *entity.State, cause error) error {
	if err := sendMessage(conn, action, ResponsePayload{Game: game, Error: cause.Error()}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

package ws

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Events accepted on the websocket.
const (
	EventNewMatch = "new_match"
	EventGetState = "get_state"
	EventPlayTurn = "play_turn"
	EventRestart  = "restart"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

// Outgoing answers the Incoming message with the same ID. Data holds either a
// models.MatchState or a models.ErrorResponse; Error tells which.
type Outgoing struct {
	ID    int  `json:"id"`
	Error bool `json:"error"`
	Data  any  `json:"data"`
}

type MatchRequest struct {
	MatchID uuid.UUID `json:"match_id"`
}

type PlayTurnRequest struct {
	MatchID  uuid.UUID `json:"match_id"`
	Position string    `json:"position"`
}

package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
)

const (
	turnTimeout = 10 * time.Second
)

type Handler struct {
	matches *match.Registry
	ws      *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, matches *match.Registry) *Handler {
	return &Handler{matches: matches, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// handleMessage answers one request. Rejected turns and unknown matches are
// answered with an error payload; a returned error ends the session.
func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	var (
		state models.MatchState
		err   error
	)

	switch req.Event {
	case EventNewMatch:
		state = h.matches.Create().State()
	case EventGetState:
		var reqData MatchRequest
		if err = json.Unmarshal(req.Data, &reqData); err != nil {
			return nil, fmt.Errorf("ws get state unmarshal error: %w", err)
		}
		state, err = h.matches.Snapshot(reqData.MatchID)
	case EventPlayTurn:
		var reqData PlayTurnRequest
		if err = json.Unmarshal(req.Data, &reqData); err != nil {
			return nil, fmt.Errorf("ws play turn unmarshal error: %w", err)
		}
		state, err = h.playTurn(reqData)
	case EventRestart:
		var reqData MatchRequest
		if err = json.Unmarshal(req.Data, &reqData); err != nil {
			return nil, fmt.Errorf("ws restart unmarshal error: %w", err)
		}
		state, err = h.matches.Restart(reqData.MatchID)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}

	if err != nil {
		return &Outgoing{ID: req.ID, Error: true, Data: models.NewErrorResponse(err)}, nil
	}

	return &Outgoing{ID: req.ID, Data: state}, nil
}

func (h *Handler) playTurn(reqData PlayTurnRequest) (models.MatchState, error) {
	pos, err := othello.ParsePosition(reqData.Position)
	if err != nil {
		return models.MatchState{}, fmt.Errorf("%w: %w", othello.ErrInvalidPosition, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
	defer cancel()

	return h.matches.Play(ctx, reqData.MatchID, pos)
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

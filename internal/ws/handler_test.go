package ws //nolint:testpackage

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/models"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(nil, match.NewRegistry(nil))
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func requireState(t *testing.T, out *Outgoing) models.MatchState {
	t.Helper()
	require.False(t, out.Error)
	state, ok := out.Data.(models.MatchState)
	require.True(t, ok, "data is %T", out.Data)
	return state
}

func requireErrorKind(t *testing.T, out *Outgoing, kind string) {
	t.Helper()
	require.True(t, out.Error)
	resp, ok := out.Data.(models.ErrorResponse)
	require.True(t, ok, "data is %T", out.Data)
	require.Equal(t, kind, resp.Kind)
}

func TestHandleMessage_Match(t *testing.T) {
	h := newTestHandler()

	out, err := h.handleMessage(&Incoming{Event: EventNewMatch, ID: 1})
	require.NoError(t, err)
	require.Equal(t, 1, out.ID)
	state := requireState(t, out)
	require.Equal(t, "black", state.Turn)

	out, err = h.handleMessage(&Incoming{
		Event: EventPlayTurn,
		ID:    2,
		Data:  mustJSON(t, PlayTurnRequest{MatchID: state.ID, Position: "d3"}),
	})
	require.NoError(t, err)
	require.Equal(t, 2, out.ID)
	state = requireState(t, out)
	require.Equal(t, "white", state.Turn)
	require.Equal(t, "d3", state.LastMove)

	out, err = h.handleMessage(&Incoming{
		Event: EventGetState,
		ID:    3,
		Data:  mustJSON(t, MatchRequest{MatchID: state.ID}),
	})
	require.NoError(t, err)
	require.Equal(t, state, requireState(t, out))

	out, err = h.handleMessage(&Incoming{
		Event: EventRestart,
		ID:    4,
		Data:  mustJSON(t, MatchRequest{MatchID: state.ID}),
	})
	require.NoError(t, err)
	restarted := requireState(t, out)
	require.Equal(t, state.ID, restarted.ID)
	require.Equal(t, "black", restarted.Turn)
	require.Empty(t, restarted.LastMove)
}

func TestHandleMessage_RejectedTurns(t *testing.T) {
	h := newTestHandler()

	out, err := h.handleMessage(&Incoming{Event: EventNewMatch})
	require.NoError(t, err)
	id := requireState(t, out).ID

	tests := []struct {
		position string
		wantKind string
	}{
		{"a1", models.KindIllegalMove},
		{"d4", models.KindCellOccupied},
		{"j9", models.KindInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			out, err := h.handleMessage(&Incoming{
				Event: EventPlayTurn,
				Data:  mustJSON(t, PlayTurnRequest{MatchID: id, Position: tt.position}),
			})
			require.NoError(t, err)
			requireErrorKind(t, out, tt.wantKind)
		})
	}

	out, err = h.handleMessage(&Incoming{Event: EventGetState, Data: mustJSON(t, MatchRequest{MatchID: id})})
	require.NoError(t, err)
	require.Equal(t, "black", requireState(t, out).Turn)
}

func TestHandleMessage_UnknownMatch(t *testing.T) {
	h := newTestHandler()

	out, err := h.handleMessage(&Incoming{
		Event: EventGetState,
		Data:  mustJSON(t, MatchRequest{MatchID: uuid.New()}),
	})
	require.NoError(t, err)
	requireErrorKind(t, out, "")

	resp := out.Data.(models.ErrorResponse) //nolint: errcheck
	require.Equal(t, match.ErrMatchNotFound.Error(), resp.Error)
}

func TestHandleMessage_BrokenRequests(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name string
		req  *Incoming
	}{
		{"missing event", &Incoming{}},
		{"unknown event", &Incoming{Event: "resign"}},
		{"broken data", &Incoming{Event: EventPlayTurn, Data: json.RawMessage(`{"match_id": 3`)}},
		{"missing data", &Incoming{Event: EventGetState}},
		{"bad match id", &Incoming{Event: EventRestart, Data: json.RawMessage(`{"match_id": "nope"}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.handleMessage(tt.req)
			require.Error(t, err)
		})
	}
}

package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&othello.MoveError{Err: othello.ErrInvalidPosition}, KindInvalidPosition},
		{&othello.MoveError{Err: othello.ErrCellOccupied}, KindCellOccupied},
		{&othello.MoveError{Err: othello.ErrIllegalMove}, KindIllegalMove},
		{fmt.Errorf("wrapped: %w", othello.ErrGameOver), KindGameOver},
		{errors.New("something else"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			require.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}

func TestNewMatchState_Start(t *testing.T) {
	id := uuid.New()
	state := NewMatchState(id, othello.NewGame())

	require.Equal(t, id, state.ID)
	require.Equal(t, []string{
		"........",
		"........",
		"........",
		"...WB...",
		"...BW...",
		"........",
		"........",
		"........",
	}, state.Rows)
	require.Equal(t, "black", state.Turn)
	require.Equal(t, "in_progress", state.Status)
	require.Equal(t, []string{"d3", "c4", "f5", "e6"}, state.LegalMoves)
	require.Equal(t, 2, state.Black)
	require.Equal(t, 2, state.White)
	require.Empty(t, state.LastMove)
	require.Nil(t, state.Result)
}

func TestNewMatchState_Terminated(t *testing.T) {
	board := othello.NewBoardEmpty()
	require.NoError(t, board.Set(othello.NewPosition(0, 0), othello.White))

	state := NewMatchState(uuid.New(), othello.NewGameFromBoard(board, othello.Black))

	require.Equal(t, "terminated", state.Status)
	require.Empty(t, state.LegalMoves)
	require.True(t, state.DoublePass)
	require.Equal(t, &MatchResult{
		Black:      0,
		White:      1,
		Winner:     "white",
		DoublePass: true,
		Summary:    "Two consecutive passes, game over.\nWhite wins with 1 discs.",
	}, state.Result)
}

func TestNewTurnOutcome(t *testing.T) {
	outcome := NewTurnOutcome(othello.TurnResult{
		Event:   othello.EventForcedPass,
		Move:    othello.NewPosition(2, 3),
		Mover:   othello.Black,
		Flipped: []othello.Position{othello.NewPosition(3, 3)},
		Passed:  othello.White,
		Next:    othello.Black,
	})

	require.Equal(t, &TurnOutcome{
		Event:   "forced_pass",
		Move:    "d3",
		Mover:   "black",
		Flipped: []string{"d4"},
		Passed:  "white",
	}, outcome)
}

func TestNewMatchResult_Draw(t *testing.T) {
	result := NewMatchResult(othello.Result{Black: 32, White: 32, Draw: true})
	require.Equal(t, "draw", result.Winner)
	require.Equal(t, "Draw.", result.Summary)
}

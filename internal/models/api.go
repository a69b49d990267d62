package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/othello"
)

// Error kinds reported for rejected turns.
const (
	KindInvalidPosition = "invalid_position"
	KindCellOccupied    = "cell_occupied"
	KindIllegalMove     = "illegal_move"
	KindGameOver        = "game_over"
)

// PlayTurnPayload is the body of a play turn request.
type PlayTurnPayload struct {
	Position string `json:"position"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// NewErrorResponse builds the response for err, filling in the kind for
// rejected turns.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Error: err.Error(),
		Kind:  ErrorKind(err),
	}
}

// ErrorKind returns the kind of a rejected turn, or an empty string for other errors.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, othello.ErrInvalidPosition):
		return KindInvalidPosition
	case errors.Is(err, othello.ErrCellOccupied):
		return KindCellOccupied
	case errors.Is(err, othello.ErrIllegalMove):
		return KindIllegalMove
	case errors.Is(err, othello.ErrGameOver):
		return KindGameOver
	default:
		return ""
	}
}

// TurnOutcome describes the last played turn.
type TurnOutcome struct {
	Event   string   `json:"event"`
	Move    string   `json:"move"`
	Mover   string   `json:"mover"`
	Flipped []string `json:"flipped"`
	Passed  string   `json:"passed,omitempty"`
}

// NewTurnOutcome converts a turn result.
func NewTurnOutcome(result othello.TurnResult) *TurnOutcome {
	outcome := &TurnOutcome{
		Event:   result.Event.String(),
		Move:    result.Move.String(),
		Mover:   result.Mover.String(),
		Flipped: positionStrings(result.Flipped),
	}

	if result.Event == othello.EventForcedPass {
		outcome.Passed = result.Passed.String()
	}

	return outcome
}

// MatchResult is the final score of a match.
type MatchResult struct {
	Black      int    `json:"black"`
	White      int    `json:"white"`
	Winner     string `json:"winner"`
	DoublePass bool   `json:"double_pass"`
	Summary    string `json:"summary"`
}

// NewMatchResult converts a game result. Winner is "draw" on a draw.
func NewMatchResult(result othello.Result) *MatchResult {
	winner := result.Winner.String()
	if result.Draw {
		winner = "draw"
	}

	return &MatchResult{
		Black:      result.Black,
		White:      result.White,
		Winner:     winner,
		DoublePass: result.DoublePass,
		Summary:    result.String(),
	}
}

// MatchState is everything a shell needs to render a match.
type MatchState struct {
	ID         uuid.UUID    `json:"id"`
	Rows       []string     `json:"rows"`
	Turn       string       `json:"turn"`
	Status     string       `json:"status"`
	LegalMoves []string     `json:"legal_moves"`
	Black      int          `json:"black"`
	White      int          `json:"white"`
	Passed     bool         `json:"previous_turn_passed"`
	DoublePass bool         `json:"double_pass"`
	LastMove   string       `json:"last_move,omitempty"`
	LastTurn   *TurnOutcome `json:"last_turn,omitempty"`
	Result     *MatchResult `json:"result,omitempty"`
}

// NewMatchState takes a snapshot of game.
func NewMatchState(id uuid.UUID, game *othello.Game) MatchState {
	board := game.Board()

	state := MatchState{
		ID:         id,
		Rows:       boardRows(board),
		Turn:       game.Turn().String(),
		Status:     "in_progress",
		LegalMoves: positionStrings(game.LegalMoves()),
		Black:      board.Count(othello.Black),
		White:      board.Count(othello.White),
		Passed:     game.PreviousTurnPassed(),
		DoublePass: game.DoublePass(),
	}

	if lastMove, ok := game.LastMove(); ok {
		state.LastMove = lastMove.String()
	}

	if result, err := game.DetermineWinner(); err == nil {
		state.Status = "terminated"
		state.LegalMoves = []string{}
		state.Result = NewMatchResult(result)
	}

	return state
}

// boardRows renders each row as 8 characters: 'B', 'W' or '.'.
func boardRows(board *othello.Board) []string {
	rows := make([]string, othello.Size)

	for row := 0; row < othello.Size; row++ {
		line := make([]byte, othello.Size)
		for col := 0; col < othello.Size; col++ {
			line[col] = '.'
			if piece, ok := board.Piece(othello.NewPosition(row, col)); ok {
				line[col] = 'B'
				if piece.Color == othello.White {
					line[col] = 'W'
				}
			}
		}
		rows[row] = string(line)
	}

	return rows
}

func positionStrings(positions []othello.Position) []string {
	strs := make([]string, len(positions))
	for i, pos := range positions {
		strs[i] = pos.String()
	}
	return strs
}

// ResultRecord is an archived match result.
type ResultRecord struct {
	ID         uuid.UUID `json:"id"          db:"id"`
	Black      int       `json:"black"       db:"black"`
	White      int       `json:"white"       db:"white"`
	Winner     string    `json:"winner"      db:"winner"`
	DoublePass bool      `json:"double_pass" db:"double_pass"`
	FinishedAt time.Time `json:"finished_at" db:"finished_at"`
}

// ResultStats counts archived results.
type ResultStats struct {
	Games        int `json:"games"`
	BlackWins    int `json:"black_wins"`
	WhiteWins    int `json:"white_wins"`
	Draws        int `json:"draws"`
	DoublePasses int `json:"double_passes"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Commit string `json:"commit"`
}

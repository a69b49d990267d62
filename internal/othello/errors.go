package othello

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition is returned for coordinates outside the board.
	ErrInvalidPosition = errors.New("position is outside the board")

	// ErrCellOccupied is returned when the target cell already holds a disc.
	ErrCellOccupied = errors.New("cell is already occupied")

	// ErrIllegalMove is returned when a move on an empty cell captures nothing.
	ErrIllegalMove = errors.New("move does not capture any disc")

	// ErrGameOver is returned when a turn is played after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrGameInProgress is returned when the winner is requested before the
	// game ended.
	ErrGameInProgress = errors.New("game is still in progress")
)

// MoveError describes a rejected move. It wraps one of the sentinel errors.
type MoveError struct {
	Err      error
	Position Position
	Color    Color
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("invalid move %s for %s: %s", e.Position, e.Color, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

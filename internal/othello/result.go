package othello

import "fmt"

// Result is the final score of a terminated game.
type Result struct {
	Black int
	White int

	// Winner is only meaningful when Draw is false.
	Winner Color
	Draw   bool

	// DoublePass is set when the game ended because neither player could move.
	DoublePass bool
}

// newResult counts the discs on board.
func newResult(board *Board, doublePass bool) Result {
	result := Result{
		Black:      board.Count(Black),
		White:      board.Count(White),
		DoublePass: doublePass,
	}

	switch {
	case result.Black > result.White:
		result.Winner = Black
	case result.White > result.Black:
		result.Winner = White
	default:
		result.Draw = true
	}

	return result
}

// WinnerCount returns the disc count of the winner, or the shared count on a draw.
func (r Result) WinnerCount() int {
	if r.Winner == White && !r.Draw {
		return r.White
	}
	return r.Black
}

// String returns a human readable summary of the result.
func (r Result) String() string {
	prefix := ""
	if r.DoublePass {
		prefix = "Two consecutive passes, game over.\n"
	}

	if r.Draw {
		return prefix + "Draw."
	}

	return fmt.Sprintf("%s%s wins with %d discs.", prefix, r.Winner.Title(), r.WinnerCount())
}

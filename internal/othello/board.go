package othello

import (
	"fmt"
	"strings"
)

// Color is the color of a disc or a player.
type Color int

const (
	Black Color = iota
	White
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return Black + White - c
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Title returns the capitalized name of the color.
func (c Color) Title() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return c.String()
	}
}

// ParseColor parses "black" or "white", case-insensitive.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return Black, fmt.Errorf("invalid color: %q", s)
	}
}

// cell is the content of a square. The zero value is an empty square.
type cell uint8

const (
	empty cell = iota
	blackDisc
	whiteDisc
)

func cellOf(c Color) cell {
	if c == White {
		return whiteDisc
	}
	return blackDisc
}

func (c cell) color() Color {
	if c == whiteDisc {
		return White
	}
	return Black
}

// Piece is the disc occupying a cell.
type Piece struct {
	Color Color
}

// Board is an 8x8 Othello board. It knows nothing about turns or players.
type Board struct {
	cells [Size * Size]cell
}

// NewBoard creates a board with the four center discs of the standard opening.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// NewBoardEmpty creates a board without any discs.
func NewBoardEmpty() *Board {
	return &Board{}
}

// Reset clears all cells and places the four center discs.
func (b *Board) Reset() {
	b.cells = [Size * Size]cell{}
	b.cells[NewPosition(3, 3).index()] = whiteDisc
	b.cells[NewPosition(3, 4).index()] = blackDisc
	b.cells[NewPosition(4, 3).index()] = blackDisc
	b.cells[NewPosition(4, 4).index()] = whiteDisc
}

// Clone returns a copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Set places a disc of the given color, overwriting the cell.
// It is meant for setting up positions, not for playing moves.
func (b *Board) Set(pos Position, color Color) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}
	b.cells[pos.index()] = cellOf(color)
	return nil
}

// Piece returns the disc at pos. The second return value is false if the cell
// is empty or pos is not on the board.
func (b *Board) Piece(pos Position) (Piece, bool) {
	if !pos.Valid() {
		return Piece{}, false
	}

	c := b.cells[pos.index()]
	if c == empty {
		return Piece{}, false
	}

	return Piece{Color: c.color()}, true
}

// ValidPosition checks if pos lies on the board.
func (b *Board) ValidPosition(pos Position) bool {
	return pos.Valid()
}

func (b *Board) occupied(pos Position) bool {
	return b.cells[pos.index()] != empty
}

// CapturedPositions returns the opponent discs that would be flipped if a disc
// of color was placed on pos. The board is not modified.
func (b *Board) CapturedPositions(pos Position, color Color) []Position {
	if !pos.Valid() {
		return nil
	}

	own := cellOf(color)
	opp := cellOf(color.Opponent())

	var captured []Position

	for _, dir := range directions {
		run := make([]Position, 0, Size)
		cur := pos.add(dir)

		for cur.Valid() && b.cells[cur.index()] == opp {
			run = append(run, cur)
			cur = cur.add(dir)
		}

		// A run only counts when a disc of our own color brackets it.
		if len(run) > 0 && cur.Valid() && b.cells[cur.index()] == own {
			captured = append(captured, run...)
		}
	}

	return captured
}

// MovePossible checks if pos is empty and placing color there captures at
// least one disc.
func (b *Board) MovePossible(pos Position, color Color) bool {
	if !pos.Valid() || b.occupied(pos) {
		return false
	}
	return len(b.CapturedPositions(pos, color)) > 0
}

// LegalMoves returns all positions where color can move, in row-major order.
func (b *Board) LegalMoves(color Color) []Position {
	moves := make([]Position, 0)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos := NewPosition(row, col)
			if b.MovePossible(pos, color) {
				moves = append(moves, pos)
			}
		}
	}

	return moves
}

// HasMoves checks if color has at least one legal move.
func (b *Board) HasMoves(color Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.MovePossible(NewPosition(row, col), color) {
				return true
			}
		}
	}
	return false
}

// ApplyMove places a disc of color on pos and flips the captured discs.
// It returns the flipped positions. If the move is not possible the board is
// left unchanged and an error wrapping ErrIllegalMove is returned.
func (b *Board) ApplyMove(pos Position, color Color) ([]Position, error) {
	if !b.MovePossible(pos, color) {
		return nil, &MoveError{Err: ErrIllegalMove, Position: pos, Color: color}
	}

	flipped := b.CapturedPositions(pos, color)

	b.cells[pos.index()] = cellOf(color)
	for _, f := range flipped {
		b.cells[f.index()] = cellOf(color)
	}

	return flipped, nil
}

// CountDiscs returns the number of occupied cells.
func (b *Board) CountDiscs() int {
	count := 0
	for _, c := range b.cells {
		if c != empty {
			count++
		}
	}
	return count
}

// Count returns the number of discs of the given color.
func (b *Board) Count(color Color) int {
	want := cellOf(color)
	count := 0
	for _, c := range b.cells {
		if c == want {
			count++
		}
	}
	return count
}

// Occupancy returns the color of every occupied cell.
func (b *Board) Occupancy() map[Position]Color {
	occupancy := make(map[Position]Color, b.CountDiscs())
	for i, c := range b.cells {
		if c != empty {
			occupancy[NewPosition(i/Size, i%Size)] = c.color()
		}
	}
	return occupancy
}

// Equal checks if two boards hold the same discs.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}

// ASCIIArtLines returns the ascii art lines for the board. Cells in moves are
// marked with a dot.
func (b *Board) ASCIIArtLines(moves []Position) []string {
	hints := make(map[Position]bool, len(moves))
	for _, move := range moves {
		hints[move] = true
	}

	lines := make([]string, Size+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := 0; row < Size; row++ {
		line := fmt.Sprintf("%d ", row+1)

		for col := 0; col < Size; col++ {
			pos := NewPosition(row, col)

			switch c := b.cells[pos.index()]; {
			case c == whiteDisc:
				line += "○ "
			case c == blackDisc:
				line += "● "
			case hints[pos]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[Size+1] = "+-----------------+"

	return lines
}

// String returns the ascii art of the board without move hints.
func (b *Board) String() string {
	return strings.Join(b.ASCIIArtLines(nil), "\n")
}

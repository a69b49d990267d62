package othello

import (
	"fmt"
	"strings"
)

// Size is the number of rows and columns of the board.
const Size = 8

// Position is a cell on the board, addressed by 0-indexed row and column.
type Position struct {
	Row int
	Col int
}

// NewPosition creates a position from a row and column.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Valid checks if both coordinates lie on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// index returns the offset of the position in a row-major cell array.
func (p Position) index() int {
	return p.Row*Size + p.Col
}

// add moves the position by the given row and column offset.
func (p Position) add(d direction) Position {
	return Position{Row: p.Row + d.dRow, Col: p.Col + d.dCol}
}

// String returns the field notation of the position, e.g. "d3".
// Positions outside the board are printed as coordinate pairs.
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

// ParsePosition converts a field notation (e.g. "a1", "h8") to a position.
// The column letter comes first, the row digit second.
func ParsePosition(field string) (Position, error) {
	if len(field) != 2 {
		return Position{}, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Position{}, fmt.Errorf("invalid field: %q", field)
	}

	col := int(field[0] - 'a')
	row := int(field[1] - '1')
	return Position{Row: row, Col: col}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
func MustParsePosition(field string) Position {
	pos, err := ParsePosition(field)
	if err != nil {
		panic(err)
	}
	return pos
}

// ParsePositions parses a whitespace separated list of fields.
func ParsePositions(fields string) ([]Position, error) {
	words := strings.Fields(fields)
	positions := make([]Position, 0, len(words))

	for _, word := range words {
		pos, err := ParsePosition(word)
		if err != nil {
			return nil, fmt.Errorf("failed to parse move %s: %w", word, err)
		}
		positions = append(positions, pos)
	}

	return positions, nil
}

type direction struct {
	dRow int
	dCol int
}

// directions lists the 8 compass directions.
var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"
)

var themeFile = "reversi/theme.json"

// InvalidThemeError is returned when a theme contains unusable values.
type InvalidThemeError struct {
	reason string
}

func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("theme error: %s", e.reason)
}

// ThemeColors holds palette indices (0-255) for the terminal shell.
type ThemeColors struct {
	Board    int `json:"board"`
	BoardAlt int `json:"board_alt"`
	Black    int `json:"black"`
	White    int `json:"white"`
	Hint     int `json:"hint"`
	Cursor   int `json:"cursor"`
	LastMove int `json:"last_move"`
}

// ThemeSymbols holds the runes drawn for each kind of cell.
type ThemeSymbols struct {
	Black rune `json:"black"`
	White rune `json:"white"`
	Empty rune `json:"empty"`
	Hint  rune `json:"hint"`
}

// Theme configures how the terminal shell draws the board.
type Theme struct {
	ShowHints bool         `json:"show_hints"`
	Colors    ThemeColors  `json:"colors"`
	Symbols   ThemeSymbols `json:"symbols"`
}

// DefaultTheme is used for every value the theme file does not set.
var DefaultTheme = Theme{
	ShowHints: true,
	Colors: ThemeColors{
		Board:    22,
		BoardAlt: 28,
		Black:    232,
		White:    255,
		Hint:     220,
		Cursor:   4,
		LastMove: 94,
	},
	Symbols: ThemeSymbols{
		Black: '●',
		White: '●',
		Empty: ' ',
		Hint:  '·',
	},
}

// LoadTheme reads the theme file from the XDG config directories, falling back
// to DefaultTheme when there is none.
func LoadTheme() (*Theme, error) {
	theme := DefaultTheme

	path, err := xdg.SearchConfigFile(themeFile)
	if err == nil {
		if err = readThemeFile(path, &theme); err != nil {
			return nil, err
		}
	}

	if err = theme.Validate(); err != nil {
		return nil, err
	}

	return &theme, nil
}

// Validate checks the symbols are printable and colors are palette indices.
func (t *Theme) Validate() error {
	for _, r := range []rune{t.Symbols.Black, t.Symbols.White, t.Symbols.Empty, t.Symbols.Hint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidThemeError{"unicode characters 1-31 and 127-159 are not allowed"}
		}
	}

	colors := []int{
		t.Colors.Board, t.Colors.BoardAlt, t.Colors.Black, t.Colors.White,
		t.Colors.Hint, t.Colors.Cursor, t.Colors.LastMove,
	}
	for _, c := range colors {
		if c < 0 || c > 255 {
			return &InvalidThemeError{fmt.Sprintf("color %d is not a palette index", c)}
		}
	}

	return nil
}

// Save writes the theme to the user's XDG config directory.
func (t *Theme) Save() error {
	path, err := xdg.ConfigFile(themeFile)
	if err != nil {
		return fmt.Errorf("failed to resolve theme path: %w", err)
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write theme: %w", err)
	}

	return nil
}

func readThemeFile(path string, theme *Theme) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme: %w", err)
	}

	if err = json.Unmarshal(data, theme); err != nil {
		return fmt.Errorf("failed to parse theme %s: %w", path, err)
	}

	return nil
}

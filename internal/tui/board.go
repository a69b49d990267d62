// Package tui draws an Othello game in the terminal with tview.
package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/othello"
	"github.com/rivo/tview"
)

// Indices into BoardUI.styles.
const (
	styleBoard = iota
	styleBoardAlt
	styleBlack
	styleWhite
	styleHint
	styleCursor
	styleLastMove
)

// cellWidth is the number of screen columns per board cell, so cells look square.
const cellWidth = 2

// labelWidth is the number of screen columns left of the board for row numbers.
const labelWidth = 3

// BoardUI is a tview control which lets two people at one keyboard play a game.
type BoardUI struct {
	Box    *tview.Box
	status *StatusPanel
	theme  *config.Theme
	styles []tcell.Color

	game   *othello.Game
	cursor othello.Position

	// lastTurn is the outcome of the most recent successful move.
	lastTurn    othello.TurnResult
	hasLastTurn bool

	// alert is the last rejected move, cleared by the next key press.
	alert error
}

// NewBoardUI creates a board with a new game.
func NewBoardUI(theme *config.Theme, status *StatusPanel) *BoardUI {
	b := &BoardUI{
		Box:    tview.NewBox(),
		status: status,
	}
	b.SetTheme(theme)
	b.Box.SetDrawFunc(b.draw)
	b.NewGame()
	return b
}

// SetTheme changes the colors and symbols used to draw the board.
func (b *BoardUI) SetTheme(theme *config.Theme) {
	b.theme = theme
	b.styles = []tcell.Color{
		tcell.PaletteColor(theme.Colors.Board),    // styleBoard
		tcell.PaletteColor(theme.Colors.BoardAlt), // styleBoardAlt
		tcell.PaletteColor(theme.Colors.Black),    // styleBlack
		tcell.PaletteColor(theme.Colors.White),    // styleWhite
		tcell.PaletteColor(theme.Colors.Hint),     // styleHint
		tcell.PaletteColor(theme.Colors.Cursor),   // styleCursor
		tcell.PaletteColor(theme.Colors.LastMove), // styleLastMove
	}
}

// NewGame discards the current game and starts over.
func (b *BoardUI) NewGame() {
	b.setGame(othello.NewGame())
}

func (b *BoardUI) setGame(game *othello.Game) {
	b.game = game
	b.hasLastTurn = false
	b.alert = nil
	b.resetCursor()
	b.refreshStatus()
}

// Game returns the game being played.
func (b *BoardUI) Game() *othello.Game {
	return b.game
}

// Cursor returns the selected cell.
func (b *BoardUI) Cursor() othello.Position {
	return b.cursor
}

// resetCursor puts the cursor on the first legal move, or the board center.
func (b *BoardUI) resetCursor() {
	if moves := b.game.LegalMoves(); len(moves) > 0 {
		b.cursor = moves[0]
		return
	}
	b.cursor = othello.NewPosition(othello.Size/2, othello.Size/2)
}

// MoveCursor moves the cursor by the given offset. Moves off the board are ignored.
func (b *BoardUI) MoveCursor(dRow, dCol int) {
	next := othello.NewPosition(b.cursor.Row+dRow, b.cursor.Col+dCol)
	if !next.Valid() {
		return
	}
	b.cursor = next
}

// PlayCursor plays the selected cell for the side to move.
func (b *BoardUI) PlayCursor() {
	b.alert = nil

	turn, err := b.game.PlayTurn(b.cursor)
	if err != nil {
		b.alert = err
		b.refreshStatus()
		return
	}

	b.lastTurn = turn
	b.hasLastTurn = true

	// A forced pass leaves the cursor where the same player can reuse it.
	if turn.Event == othello.EventMoved {
		b.resetCursor()
	}

	b.refreshStatus()
}

// HandleKey applies a key press. It returns false if the key is not used by the board.
func (b *BoardUI) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyUp:
		b.MoveCursor(-1, 0)
	case tcell.KeyDown:
		b.MoveCursor(1, 0)
	case tcell.KeyLeft:
		b.MoveCursor(0, -1)
	case tcell.KeyRight:
		b.MoveCursor(0, 1)
	case tcell.KeyEnter:
		b.PlayCursor()
		return true
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			b.MoveCursor(0, -1)
		case 'j':
			b.MoveCursor(1, 0)
		case 'k':
			b.MoveCursor(-1, 0)
		case 'l':
			b.MoveCursor(0, 1)
		case ' ':
			b.PlayCursor()
			return true
		case 'n':
			b.NewGame()
			return true
		default:
			return false
		}
	default:
		return false
	}

	if b.alert != nil {
		b.alert = nil
		b.refreshStatus()
	}
	return true
}

func (b *BoardUI) refreshStatus() {
	if b.status == nil {
		return
	}
	b.status.Update(b.statusInfo())
}

func (b *BoardUI) statusInfo() StatusInfo {
	board := b.game.Board()

	info := StatusInfo{
		Turn:  b.game.Turn(),
		Black: board.Count(othello.Black),
		White: board.Count(othello.White),
		Alert: alertText(b.alert),
	}

	if b.hasLastTurn && b.lastTurn.Event == othello.EventForcedPass {
		info.Passed = &b.lastTurn.Passed
	}

	if result, err := b.game.DetermineWinner(); err == nil {
		info.Result = &result
	}

	return info
}

func alertText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, othello.ErrCellOccupied):
		return "That cell is already taken."
	case errors.Is(err, othello.ErrIllegalMove):
		return "That move does not flip any discs."
	case errors.Is(err, othello.ErrGameOver):
		return "The game is over, press n for a new game."
	default:
		return err.Error()
	}
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	board := b.game.Board()
	lastMove, hasLastMove := b.game.LastMove()

	hints := make(map[othello.Position]struct{})
	if b.theme.ShowHints {
		for _, move := range b.game.LegalMoves() {
			hints[move] = struct{}{}
		}
	}

	left := x + labelWidth
	top := y

	for row := 0; row < othello.Size; row++ {
		for col := 0; col < othello.Size; col++ {
			pos := othello.NewPosition(row, col)

			bg := b.styles[styleBoard]
			if (row+col)%2 == 1 {
				bg = b.styles[styleBoardAlt]
			}

			symbol := b.theme.Symbols.Empty
			fg := b.styles[styleHint]

			if piece, ok := board.Piece(pos); ok {
				symbol = b.theme.Symbols.Black
				fg = b.styles[styleBlack]
				if piece.Color == othello.White {
					symbol = b.theme.Symbols.White
					fg = b.styles[styleWhite]
				}
			} else if _, ok := hints[pos]; ok {
				symbol = b.theme.Symbols.Hint
			}

			switch {
			case pos == b.cursor:
				bg = b.styles[styleCursor]
			case hasLastMove && pos == lastMove:
				bg = b.styles[styleLastMove]
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(left+col*cellWidth, top+row, symbol, nil, style)
			screen.SetContent(left+col*cellWidth+1, top+row, ' ', nil, style)
		}
	}

	b.drawCoordinates(screen, x, y)

	return x, y, labelWidth + othello.Size*cellWidth, othello.Size + 1
}

func (b *BoardUI) drawCoordinates(screen tcell.Screen, x, y int) {
	highlight := tcell.StyleDefault.Background(b.styles[styleCursor])

	for col := 0; col < othello.Size; col++ {
		style := tcell.StyleDefault
		if col == b.cursor.Col {
			style = highlight
		}
		screen.SetContent(x+labelWidth+col*cellWidth, y+othello.Size, rune('a'+col), nil, style)
		screen.SetContent(x+labelWidth+col*cellWidth+1, y+othello.Size, ' ', nil, style)
	}

	for row := 0; row < othello.Size; row++ {
		style := tcell.StyleDefault
		if row == b.cursor.Row {
			style = highlight
		}
		screen.SetContent(x+1, y+row, rune('1'+row), nil, style)
	}
}

package tui

import (
	"github.com/lk16/reversi/internal/othello"
	"github.com/rivo/tview"
)

// NewGameLayout places the board left of the status panel.
func NewGameLayout(board *BoardUI, status *StatusPanel) *tview.Flex {
	boardWidth := labelWidth + cellWidth*othello.Size + 2
	boardHeight := othello.Size + 1

	boardColumn := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(board.Box, boardHeight, 0, true).
		AddItem(nil, 0, 1, false)

	return tview.NewFlex().
		AddItem(nil, 1, 0, false).
		AddItem(boardColumn, boardWidth, 0, true).
		AddItem(status.View(), 0, 1, false)
}

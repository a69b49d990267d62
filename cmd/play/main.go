// play lets two people share a keyboard for a game of Othello in the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/tui"
	"github.com/rivo/tview"
)

func main() {
	closeLog, err := config.SetFileLogger()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck

	theme, err := config.LoadTheme()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	app := tview.NewApplication()

	status := tui.NewStatusPanel()
	board := tui.NewBoardUI(theme, status)

	root := tui.NewGameLayout(board, status)
	root.SetBorder(true).SetTitle(" ● reversi ")

	board.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}
		if board.HandleKey(event) {
			return nil
		}
		return event
	})

	slog.Info("Starting game")

	if err = app.SetRoot(root, true).SetFocus(board.Box).Run(); err != nil {
		slog.Error("Terminal app failed", "error", err)
		fmt.Println(err)
		os.Exit(1) //nolint:gocritic
	}
}

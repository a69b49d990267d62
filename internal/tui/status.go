package tui

import (
	"fmt"
	"strings"

	"github.com/lk16/reversi/internal/othello"
	"github.com/rivo/tview"
)

const controlsLine = `
  hjkl/↑↓←→ move   ⏎/space play
  n new game   q quit`

// StatusInfo is everything the status panel shows.
type StatusInfo struct {
	Turn  othello.Color
	Black int
	White int

	// Passed is the color which was skipped by the last move, if any.
	Passed *othello.Color

	// Result is set when the game is over.
	Result *othello.Result

	Alert string
}

// Text renders the status panel contents.
func (s StatusInfo) Text() string {
	var sb strings.Builder

	if s.Result != nil {
		sb.WriteString("───────── Game Over ─────────\n\n")
		for _, line := range strings.Split(s.Result.String(), "\n") {
			sb.WriteString("  " + line + "\n")
		}
		fmt.Fprintf(&sb, "\n  ● Black %d   ○ White %d\n", s.Black, s.White)
		sb.WriteString("\n  n new game   q quit")
		return sb.String()
	}

	if s.Passed != nil {
		fmt.Fprintf(&sb, "  %s has no moves and passes.\n\n", s.Passed.Title())
	}

	stone := "●"
	if s.Turn == othello.White {
		stone = "○"
	}
	fmt.Fprintf(&sb, "  %s %s to move\n", stone, s.Turn.Title())
	fmt.Fprintf(&sb, "  ● Black %d   ○ White %d\n", s.Black, s.White)

	if s.Alert != "" {
		fmt.Fprintf(&sb, "\n  ! %s\n", s.Alert)
	}

	sb.WriteString(controlsLine)
	return sb.String()
}

// StatusPanel shows whose turn it is, the disc counts and the result.
type StatusPanel struct {
	view *tview.TextView
	info StatusInfo
}

// NewStatusPanel creates an empty status panel.
func NewStatusPanel() *StatusPanel {
	view := tview.NewTextView()
	view.SetBorder(true)
	view.SetBorderPadding(0, 0, 1, 1)
	view.SetTitle(" Status ")
	view.SetTitleAlign(tview.AlignLeft)

	return &StatusPanel{view: view}
}

// View returns the underlying tview component.
func (p *StatusPanel) View() *tview.TextView {
	return p.view
}

// Info returns what the panel currently shows.
func (p *StatusPanel) Info() StatusInfo {
	return p.info
}

// Update replaces the panel contents.
func (p *StatusPanel) Update(info StatusInfo) {
	p.info = info
	p.view.SetText(info.Text())
}

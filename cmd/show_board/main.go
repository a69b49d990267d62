package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lk16/reversi/internal/othello"
)

func main() {
	movesString := flag.String("moves", "", "whitespace separated moves to play from the start position, e.g. \"d3 c5\"")
	hints := flag.Bool("hints", true, "mark the moves of the player to move")
	flag.Parse()

	moves, err := othello.ParsePositions(*movesString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	game := othello.NewGame()

	for _, move := range moves {
		turn, err := game.PlayTurn(move)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if turn.Event == othello.EventForcedPass {
			fmt.Printf("%s has no moves and passes.\n", turn.Passed.Title())
		}
	}

	var hinted []othello.Position
	if *hints {
		hinted = game.LegalMoves()
	}

	for _, line := range game.Board().ASCIIArtLines(hinted) {
		fmt.Println(line)
	}

	result, err := game.DetermineWinner()
	if errors.Is(err, othello.ErrGameInProgress) {
		fmt.Printf("%s to move.\n", game.Turn().Title())
		return
	}

	fmt.Println(result)
}

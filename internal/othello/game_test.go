package othello //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	game := NewGame()

	require.Equal(t, Black, game.Turn())
	require.Equal(t, Player{Color: Black, Kind: Human}, game.CurrentPlayer())
	require.False(t, game.IsTerminated())
	require.False(t, game.PreviousTurnPassed())
	require.False(t, game.DoublePass())
	require.Len(t, game.LegalMoves(), 4)
	require.Equal(t, 0, game.MoveCount())

	_, ok := game.LastMove()
	require.False(t, ok)
}

func TestGame_PlayTurn(t *testing.T) {
	game := NewGame()

	result, err := game.PlayTurn(NewPosition(2, 3))
	require.NoError(t, err)

	require.Equal(t, EventMoved, result.Event)
	require.Equal(t, Black, result.Mover)
	require.Equal(t, White, result.Next)
	require.Equal(t, []Position{NewPosition(3, 3)}, result.Flipped)

	board := game.Board()
	require.Equal(t, 5, board.CountDiscs())
	require.Equal(t, map[Position]Color{
		NewPosition(2, 3): Black,
		NewPosition(3, 3): Black,
		NewPosition(3, 4): Black,
		NewPosition(4, 3): Black,
		NewPosition(4, 4): White,
	}, board.Occupancy())

	require.Equal(t, White, game.Turn())
	require.Equal(t, board.LegalMoves(White), game.LegalMoves())

	lastMove, ok := game.LastMove()
	require.True(t, ok)
	require.Equal(t, NewPosition(2, 3), lastMove)
	require.Equal(t, 1, game.MoveCount())
}

func TestGame_PlayTurn_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		pos     Position
		wantErr error
	}{
		{"illegal move", NewPosition(0, 0), ErrIllegalMove},
		{"row out of bounds", NewPosition(8, 0), ErrInvalidPosition},
		{"negative column", NewPosition(3, -1), ErrInvalidPosition},
		{"occupied", NewPosition(3, 3), ErrCellOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := NewGame()

			_, err := game.PlayTurn(tt.pos)
			require.ErrorIs(t, err, tt.wantErr)

			var moveErr *MoveError
			require.True(t, errors.As(err, &moveErr))
			require.Equal(t, tt.pos, moveErr.Position)
			require.Equal(t, Black, moveErr.Color)

			require.Equal(t, Black, game.Turn())
			require.Equal(t, 4, game.Board().CountDiscs())
			require.True(t, game.Board().Equal(NewBoard()))
			require.Equal(t, 0, game.MoveCount())
		})
	}
}

func TestGame_ForcedPassThenDoublePass(t *testing.T) {
	board := boardFromRows(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"BW......",
	)
	game := NewGameFromBoard(board, Black)
	require.Equal(t, []Position{NewPosition(0, 2), NewPosition(7, 2)}, game.LegalMoves())

	// White has no move after this, black plays again.
	result, err := game.PlayTurn(NewPosition(0, 2))
	require.NoError(t, err)
	require.Equal(t, EventForcedPass, result.Event)
	require.Equal(t, White, result.Passed)
	require.Equal(t, Black, result.Next)
	require.Equal(t, Black, game.Turn())
	require.True(t, game.PreviousTurnPassed())
	require.False(t, game.IsTerminated())
	require.Equal(t, []Position{NewPosition(7, 2)}, game.LegalMoves())

	// No white discs remain, neither player can move.
	result, err = game.PlayTurn(NewPosition(7, 2))
	require.NoError(t, err)
	require.Equal(t, EventGameOver, result.Event)
	require.True(t, game.DoublePass())
	require.True(t, game.IsTerminated())
	require.Less(t, game.Board().CountDiscs(), Size*Size)

	winner, err := game.DetermineWinner()
	require.NoError(t, err)
	require.Equal(t, Result{Black: 6, White: 0, Winner: Black, DoublePass: true}, winner)
	require.Equal(t, "Two consecutive passes, game over.\nBlack wins with 6 discs.", winner.String())

	_, err = game.PlayTurn(NewPosition(5, 5))
	require.ErrorIs(t, err, ErrGameOver)
}

func TestGame_PassProcedure(t *testing.T) {
	board := NewBoardEmpty()
	require.NoError(t, board.Set(NewPosition(0, 0), Black))
	require.NoError(t, board.Set(NewPosition(7, 7), White))

	// Skip the constructor so both pass procedures are observable.
	game := &Game{board: board, current: White}

	event := game.verifyNextTurn()
	require.Equal(t, EventGameOver, event)
	require.True(t, game.PreviousTurnPassed())
	require.True(t, game.DoublePass())
	require.True(t, game.IsTerminated())
	require.Equal(t, Black, game.Turn())
	require.Empty(t, game.LegalMoves())

	result, err := game.DetermineWinner()
	require.NoError(t, err)
	require.True(t, result.Draw)
	require.Equal(t, "Two consecutive passes, game over.\nDraw.", result.String())
}

func TestNewGameFromBoard_StuckStart(t *testing.T) {
	board := NewBoardEmpty()
	require.NoError(t, board.Set(NewPosition(0, 0), Black))

	game := NewGameFromBoard(board, Black)
	require.True(t, game.IsTerminated())
	require.True(t, game.DoublePass())
}

func TestNewGameFromBoard_PassedStart(t *testing.T) {
	// Black cannot move, white can.
	board := boardFromRows(t,
		"WB......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	game := NewGameFromBoard(board, Black)
	require.False(t, game.IsTerminated())
	require.Equal(t, White, game.Turn())
	require.True(t, game.PreviousTurnPassed())
	require.Equal(t, []Position{NewPosition(0, 2)}, game.LegalMoves())
}

func TestGame_FullBoardTerminates(t *testing.T) {
	board := boardFromRows(t,
		".WBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
		"BBBBBBBB",
	)
	game := NewGameFromBoard(board, Black)
	require.False(t, game.IsTerminated())

	result, err := game.PlayTurn(NewPosition(0, 0))
	require.NoError(t, err)
	require.Equal(t, EventGameOver, result.Event)
	require.True(t, game.IsTerminated())
	require.False(t, game.DoublePass())

	winner, err := game.DetermineWinner()
	require.NoError(t, err)
	require.Equal(t, "Black wins with 64 discs.", winner.String())
}

func TestGame_DetermineWinner(t *testing.T) {
	tests := []struct {
		name       string
		rows       []string
		wantResult Result
		wantString string
	}{
		{
			name: "black wins",
			rows: []string{
				"BBBBBBBB",
				"BBBBBBBB",
				"BBBBBBBB",
				"BBBBBBBB",
				"BBBBBBBB",
				"WWWWWWWW",
				"WWWWWWWW",
				"WWWWWWWW",
			},
			wantResult: Result{Black: 40, White: 24, Winner: Black},
			wantString: "Black wins with 40 discs.",
		},
		{
			name: "white wins",
			rows: []string{
				"BBBBBBBB",
				"WWWWWWWW",
				"WWWWWWWW",
				"WWWWWWWW",
				"WWWWWWWW",
				"WWWWWWWW",
				"WWWWWWWW",
				"WWWWWWWW",
			},
			wantResult: Result{Black: 8, White: 56, Winner: White},
			wantString: "White wins with 56 discs.",
		},
		{
			name: "draw",
			rows: []string{
				"BBBBBBBB",
				"BBBBBBBB",
				"BBBBBBBB",
				"BBBBBBBB",
				"WWWWWWWW",
				"WWWWWWWW",
				"WWWWWWWW",
				"WWWWWWWW",
			},
			wantResult: Result{Black: 32, White: 32, Draw: true},
			wantString: "Draw.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := NewGameFromBoard(boardFromRows(t, tt.rows...), Black)
			require.True(t, game.IsTerminated())

			result, err := game.DetermineWinner()
			require.NoError(t, err)
			require.Equal(t, tt.wantResult, result)
			require.Equal(t, tt.wantString, result.String())
		})
	}
}

func TestGame_DetermineWinner_InProgress(t *testing.T) {
	_, err := NewGame().DetermineWinner()
	require.ErrorIs(t, err, ErrGameInProgress)
}

func TestGame_Playthrough(t *testing.T) {
	game := NewGame()
	discs := game.Board().CountDiscs()

	for turns := 0; !game.IsTerminated(); turns++ {
		require.Less(t, turns, 60, "game must end within 60 moves")

		mover := game.Turn()
		moves := game.LegalMoves()
		require.NotEmpty(t, moves)

		// Play the last legal move for some variety compared to playedBoards.
		result, err := game.PlayTurn(moves[len(moves)-1])
		require.NoError(t, err)

		after := game.Board().CountDiscs()
		require.Equal(t, discs+1, after)
		discs = after

		switch result.Event {
		case EventMoved:
			require.Equal(t, mover.Opponent(), game.Turn())
			require.False(t, game.PreviousTurnPassed())
		case EventForcedPass:
			require.Equal(t, mover, game.Turn())
			require.Equal(t, mover.Opponent(), result.Passed)
			require.True(t, game.PreviousTurnPassed())
		case EventGameOver:
			require.True(t, game.IsTerminated())
		}
	}

	result, err := game.DetermineWinner()
	require.NoError(t, err)
	require.Equal(t, game.Board().CountDiscs(), result.Black+result.White)
}

func TestGame_BoardIsCopy(t *testing.T) {
	game := NewGame()

	board := game.Board()
	require.NoError(t, board.Set(NewPosition(0, 0), White))

	_, ok := game.Board().Piece(NewPosition(0, 0))
	require.False(t, ok)
}

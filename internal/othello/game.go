package othello

// Event tells what happened as a consequence of a turn.
type Event int

const (
	// EventMoved means the move was played and the opponent is to move.
	EventMoved Event = iota

	// EventForcedPass means the opponent had no legal move and was skipped,
	// so the player who just moved is to move again.
	EventForcedPass

	// EventGameOver means the game ended with this move.
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventForcedPass:
		return "forced_pass"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TurnResult describes a successfully played turn.
type TurnResult struct {
	Event Event

	// Move is the played position and Mover the color that played it.
	Move  Position
	Mover Color

	// Flipped holds the captured discs.
	Flipped []Position

	// Passed is the color that was skipped. Only set for EventForcedPass.
	Passed Color

	// Next is the color to move after this turn. Meaningless after EventGameOver.
	Next Color
}

// Game runs turn sequencing, pass detection and scoring on top of a Board.
// A Game is not safe for concurrent use.
type Game struct {
	board   *Board
	players [2]Player

	// current is the color to move.
	current Color

	// previousPassed is set when the last turn transition skipped a player.
	previousPassed bool

	// doublePass is set when neither player can move.
	doublePass bool

	// legalMoves caches the legal moves of current, recomputed at every transition.
	legalMoves []Position

	lastMove    Position
	hasLastMove bool
	moveCount   int
}

// NewGame creates a game with the standard opening, black to move.
func NewGame() *Game {
	return NewGameFromBoard(NewBoard(), Black)
}

// NewGameFromBoard creates a game with a custom start board. The board is owned
// by the game afterwards. If turn has no legal move the turn passes right away.
func NewGameFromBoard(board *Board, turn Color) *Game {
	g := &Game{
		board: board,
		players: [2]Player{
			{Color: Black, Kind: Human},
			{Color: White, Kind: Human},
		},
		current: turn,
	}

	g.legalMoves = g.board.LegalMoves(g.current)
	if len(g.legalMoves) == 0 && !g.boardFull() {
		g.passTurn()
	}

	return g
}

// PlayTurn plays a disc of the current color on pos.
//
// Rejected moves return an error wrapping ErrInvalidPosition, ErrCellOccupied or
// ErrIllegalMove and leave the game unchanged; the same player is still to move.
// A skipped opponent is reported as EventForcedPass, not as an error.
func (g *Game) PlayTurn(pos Position) (TurnResult, error) {
	if g.IsTerminated() {
		return TurnResult{}, &MoveError{Err: ErrGameOver, Position: pos, Color: g.current}
	}

	g.legalMoves = g.board.LegalMoves(g.current)

	if err := g.validateMove(pos); err != nil {
		return TurnResult{}, err
	}

	mover := g.current

	flipped, err := g.board.ApplyMove(pos, mover)
	if err != nil {
		return TurnResult{}, err
	}

	g.lastMove = pos
	g.hasLastMove = true
	g.moveCount++

	result := TurnResult{
		Move:    pos,
		Mover:   mover,
		Flipped: flipped,
	}

	if g.IsTerminated() {
		result.Event = EventGameOver
		return result, nil
	}

	g.current = mover.Opponent()
	result.Event = g.verifyNextTurn()
	result.Next = g.current

	if result.Event == EventForcedPass {
		result.Passed = mover.Opponent()
	}

	return result, nil
}

func (g *Game) validateMove(pos Position) error {
	if !g.board.ValidPosition(pos) {
		return &MoveError{Err: ErrInvalidPosition, Position: pos, Color: g.current}
	}

	if _, ok := g.board.Piece(pos); ok {
		return &MoveError{Err: ErrCellOccupied, Position: pos, Color: g.current}
	}

	for _, move := range g.legalMoves {
		if move == pos {
			return nil
		}
	}

	return &MoveError{Err: ErrIllegalMove, Position: pos, Color: g.current}
}

// verifyNextTurn recomputes the legal moves of the color to move and resolves
// passes. This is the only place where passes are detected.
func (g *Game) verifyNextTurn() Event {
	g.legalMoves = g.board.LegalMoves(g.current)

	if len(g.legalMoves) == 0 {
		return g.passTurn()
	}

	g.previousPassed = false
	return EventMoved
}

// passTurn skips the color to move. If the other color cannot move either, the
// game ends by double pass.
func (g *Game) passTurn() Event {
	g.previousPassed = true
	g.current = g.current.Opponent()
	g.legalMoves = g.board.LegalMoves(g.current)

	if len(g.legalMoves) == 0 {
		g.doublePass = true
		return EventGameOver
	}

	return EventForcedPass
}

func (g *Game) boardFull() bool {
	return g.board.CountDiscs() >= Size*Size
}

// IsTerminated checks if the board is full or both players had to pass.
func (g *Game) IsTerminated() bool {
	return g.boardFull() || g.doublePass
}

// DetermineWinner counts the discs of a terminated game.
func (g *Game) DetermineWinner() (Result, error) {
	if !g.IsTerminated() {
		return Result{}, ErrGameInProgress
	}
	return newResult(g.board, g.doublePass), nil
}

// Board returns a copy of the board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Turn returns the color to move.
func (g *Game) Turn() Color {
	return g.current
}

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() Player {
	return g.players[g.current]
}

// Players returns both players, black first.
func (g *Game) Players() [2]Player {
	return g.players
}

// LegalMoves returns the cached legal moves of the color to move.
func (g *Game) LegalMoves() []Position {
	moves := make([]Position, len(g.legalMoves))
	copy(moves, g.legalMoves)
	return moves
}

// PreviousTurnPassed checks if the last turn transition skipped a player.
func (g *Game) PreviousTurnPassed() bool {
	return g.previousPassed
}

// DoublePass checks if the game ended because neither player could move.
func (g *Game) DoublePass() bool {
	return g.doublePass
}

// LastMove returns the most recently played position, if any.
func (g *Game) LastMove() (Position, bool) {
	return g.lastMove, g.hasLastMove
}

// MoveCount returns the number of discs placed since the game started.
func (g *Game) MoveCount() int {
	return g.moveCount
}

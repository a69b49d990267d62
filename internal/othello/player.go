package othello

// PlayerKind tells who provides the moves of a player.
type PlayerKind int

const (
	// Human players submit their moves through a driving shell.
	Human PlayerKind = iota
)

func (k PlayerKind) String() string {
	if k == Human {
		return "human"
	}
	return "unknown"
}

// Player is a participant of a game.
type Player struct {
	Color Color
	Kind  PlayerKind
}

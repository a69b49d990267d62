// Package match keeps independent in-memory matches for the driving shells.
package match

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
)

const recordTimeout = 5 * time.Second

// ErrMatchNotFound is returned for unknown match ids.
var ErrMatchNotFound = errors.New("match not found")

// Recorder archives the result of a finished match.
type Recorder interface {
	RecordResult(ctx context.Context, id uuid.UUID, result othello.Result) error
}

// NopRecorder discards results. It is used when storage is disabled.
type NopRecorder struct{}

func (NopRecorder) RecordResult(context.Context, uuid.UUID, othello.Result) error {
	return nil
}

// Match is one game with its own lock. A Game is not safe for concurrent use,
// so every access goes through mu.
type Match struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	game     *othello.Game
	lastTurn *othello.TurnResult
}

func newMatch(id uuid.UUID) *Match {
	return &Match{
		ID:        id,
		CreatedAt: time.Now(),
		game:      othello.NewGame(),
	}
}

// State returns a snapshot of the match.
func (m *Match) State() models.MatchState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stateLocked()
}

func (m *Match) stateLocked() models.MatchState {
	state := models.NewMatchState(m.ID, m.game)
	if m.lastTurn != nil {
		state.LastTurn = models.NewTurnOutcome(*m.lastTurn)
	}
	return state
}

// Registry holds all running matches.
type Registry struct {
	mu       sync.Mutex
	matches  map[uuid.UUID]*Match
	recorder Recorder
}

// NewRegistry creates an empty registry. A nil recorder discards results.
func NewRegistry(recorder Recorder) *Registry {
	if recorder == nil {
		recorder = NopRecorder{}
	}

	return &Registry{
		matches:  make(map[uuid.UUID]*Match),
		recorder: recorder,
	}
}

// Create starts a new match.
func (r *Registry) Create() *Match {
	m := newMatch(uuid.New())

	r.mu.Lock()
	r.matches[m.ID] = m
	r.mu.Unlock()

	slog.Info("match created", "match_id", m.ID)
	return m
}

// Get returns the match with the given id.
func (r *Registry) Get(id uuid.UUID) (*Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

// Delete removes a match. Unknown ids are ignored.
func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	delete(r.matches, id)
	r.mu.Unlock()

	slog.Info("match deleted", "match_id", id)
}

// Len returns the number of matches.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.matches)
}

// Snapshot returns the state of a match.
func (r *Registry) Snapshot(id uuid.UUID) (models.MatchState, error) {
	m, err := r.Get(id)
	if err != nil {
		return models.MatchState{}, err
	}
	return m.State(), nil
}

// Restart discards the game of a match and starts a fresh one under the same id.
func (r *Registry) Restart(id uuid.UUID) (models.MatchState, error) {
	m, err := r.Get(id)
	if err != nil {
		return models.MatchState{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.game = othello.NewGame()
	m.lastTurn = nil

	slog.Info("match restarted", "match_id", id)
	return m.stateLocked(), nil
}

// Play plays pos for the color to move. Rejected moves return the engine error
// and leave the match unchanged. When the move ends the match its result is
// handed to the recorder; recorder failures are logged only.
func (r *Registry) Play(ctx context.Context, id uuid.UUID, pos othello.Position) (models.MatchState, error) {
	m, err := r.Get(id)
	if err != nil {
		return models.MatchState{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	turn, err := m.game.PlayTurn(pos)
	if err != nil {
		slog.Debug("turn rejected", "match_id", id, "position", pos, "error", err)
		return models.MatchState{}, err
	}

	m.lastTurn = &turn

	switch turn.Event {
	case othello.EventForcedPass:
		slog.Info("forced pass", "match_id", id, "passed", turn.Passed)
	case othello.EventGameOver:
		r.record(ctx, id, m.game)
	case othello.EventMoved:
	}

	return m.stateLocked(), nil
}

func (r *Registry) record(ctx context.Context, id uuid.UUID, game *othello.Game) {
	result, err := game.DetermineWinner()
	if err != nil {
		slog.Error("failed to determine winner", "match_id", id, "error", err)
		return
	}

	slog.Info("match finished", "match_id", id, "black", result.Black, "white", result.White, "double_pass", result.DoublePass)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err = r.recorder.RecordResult(ctx, id, result); err != nil {
		slog.Error("failed to record result", "match_id", id, "error", err)
	}
}

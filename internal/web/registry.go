package web

import (
	"errors"
	"sync"
	"time"

	"github.com/atomchess/atomchess/internal/atomic"
	"github.com/google/uuid"
)

// ErrGameNotFound reports a game ID with no live game behind it.
var ErrGameNotFound = errors.New("game not found")

// hostedGame pairs an engine Game with the lock that serializes callers.
// The engine itself is single-threaded; the adapter owns the locking.
type hostedGame struct {
	mu        sync.Mutex
	game      *atomic.Game
	createdAt time.Time
}

// Registry holds the live games, keyed by ID.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*hostedGame
}

func NewRegistry() *Registry {
	return &Registry{
		games: make(map[string]*hostedGame),
	}
}

// Create starts a new game and returns its ID.
func (r *Registry) Create() string {
	id := uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[id] = &hostedGame{
		game:      atomic.NewGame(),
		createdAt: time.Now().UTC(),
	}
	return id
}

func (r *Registry) get(id string) (*hostedGame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hosted, exists := r.games[id]
	if !exists {
		return nil, ErrGameNotFound
	}
	return hosted, nil
}

// GameView is the wire representation of a game's current state.
type GameView struct {
	ID        string            `json:"id"`
	Status    atomic.GameStatus `json:"status"`
	Turn      atomic.Color      `json:"turn"`
	Board     string            `json:"board"`
	CreatedAt string            `json:"createdAt"`
}

// Snapshot returns the current state of a game.
func (r *Registry) Snapshot(id string) (*GameView, error) {
	hosted, err := r.get(id)
	if err != nil {
		return nil, err
	}

	hosted.mu.Lock()
	defer hosted.mu.Unlock()
	return &GameView{
		ID:        id,
		Status:    hosted.game.Status(),
		Turn:      hosted.game.Turn(),
		Board:     hosted.game.Render(),
		CreatedAt: hosted.createdAt.Format(time.RFC3339),
	}, nil
}

// SubmitMove plays a move on a hosted game.
func (r *Registry) SubmitMove(id, from, to string) (*atomic.MoveResult, error) {
	hosted, err := r.get(id)
	if err != nil {
		return nil, err
	}

	hosted.mu.Lock()
	defer hosted.mu.Unlock()
	return hosted.game.SubmitMove(from, to)
}

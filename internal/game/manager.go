package game

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"checkers/internal/checkers"
)

var ErrGameNotFound = errors.New("game not found")

// Manager keeps in-memory games keyed by a random ID. Safe for concurrent use;
// each game itself is only ever driven by one Session.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame() *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	id := uuid.NewString()
	g := &GameState{
		ID:        id,
		Board:     checkers.NewBoard(),
		Action:    1,
		Status:    checkers.Ongoing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[id] = g
	return g
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Update records the outcome of a finished or paused game.
func (m *Manager) Update(id string, board checkers.Board, action int, status checkers.GameStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	g.Board = board
	g.Action = action
	g.Status = status
	g.UpdatedAt = time.Now()
	return nil
}

// List returns a snapshot of every game, oldest first.
func (m *Manager) List() []GameState {
	m.mu.RLock()
	out := make([]GameState, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, *g)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

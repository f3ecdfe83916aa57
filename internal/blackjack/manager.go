package blackjack

import (
	"sync"
	"time"
)

// Game is the common surface the registry and sweeper need from both
// game variants.
type Game interface {
	Key() string
	Participants() []string
	Finished() bool
	Expired() bool
	Deadline() time.Time
	Snapshot() Snapshot
}

// Manager owns every live game. A player appears in at most one live game
// at a time; the check happens at registration, under the manager lock, so
// two concurrent starts cannot double-register.
type Manager struct {
	mu       sync.Mutex
	games    map[string]Game
	byPlayer map[string]string
	timeout  time.Duration
}

func NewManager(timeout time.Duration) *Manager {
	return &Manager{
		games:    make(map[string]Game),
		byPlayer: make(map[string]string),
		timeout:  timeout,
	}
}

// StartPvE registers a new game against the house, keyed by the player.
func (m *Manager) StartPvE(playerID string, bet int64) (*PvEGame, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, busy := m.byPlayer[playerID]; busy {
		return nil, ErrAlreadyInGame
	}

	g, err := newPvEGame(playerID, bet, m.timeout)
	if err != nil {
		return nil, err
	}

	m.games[g.Key()] = g
	m.byPlayer[playerID] = g.Key()
	return g, nil
}

// StartPvP registers a head-to-head game keyed by a caller-supplied table
// key. Both players must be free.
func (m *Manager) StartPvP(playerA, playerB string, bet int64, tableKey string) (*PvPGame, error) {
	if playerA == playerB {
		return nil, ErrSelfChallenge
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, busy := m.byPlayer[playerA]; busy {
		return nil, ErrAlreadyInGame
	}
	if _, busy := m.byPlayer[playerB]; busy {
		return nil, ErrAlreadyInGame
	}
	if _, taken := m.games[tableKey]; taken {
		return nil, ErrTableTaken
	}

	g, err := newPvPGame(playerA, playerB, bet, tableKey, m.timeout)
	if err != nil {
		return nil, err
	}

	m.games[tableKey] = g
	m.byPlayer[playerA] = tableKey
	m.byPlayer[playerB] = tableKey
	return g, nil
}

func (m *Manager) Get(key string) (Game, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[key]
	return g, ok
}

// End deregisters a game and frees its players. Idempotent.
func (m *Manager) End(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[key]
	if !ok {
		return
	}
	delete(m.games, key)
	for _, p := range g.Participants() {
		if m.byPlayer[p] == key {
			delete(m.byPlayer, p)
		}
	}
}

// Expired returns the games the sweeper must look at: unfinished games whose
// deadline has passed, and finished games still registered because their
// settlement failed. A settled game is deregistered, so finished+registered
// always means an outstanding payout.
func (m *Manager) Expired(now time.Time) []Game {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Game
	for _, g := range m.games {
		if g.Finished() || g.Deadline().Before(now) {
			out = append(out, g)
		}
	}
	return out
}

func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.games)
}

package blackjack

import (
	"sort"
	"sync"
)

type LeaderboardEntry struct {
	UID    string `json:"uid"`
	Games  int    `json:"games"`
	Wins   int    `json:"wins"`
	Profit int64  `json:"profit"`
}

// Leaderboard aggregates per-player results in memory.
type Leaderboard struct {
	data map[string]*LeaderboardEntry
	mu   sync.Mutex
}

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{
		data: make(map[string]*LeaderboardEntry),
	}
}

func (l *Leaderboard) Record(uid string, bet, payout int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.data[uid]
	if !ok {
		e = &LeaderboardEntry{UID: uid}
		l.data[uid] = e
	}

	e.Games++
	if payout > bet {
		e.Wins++
	}
	e.Profit += payout - bet
}

func (l *Leaderboard) Top(n int) []LeaderboardEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var entries []LeaderboardEntry
	for _, e := range l.data {
		entries = append(entries, *e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Profit > entries[j].Profit
	})

	if len(entries) > n {
		return entries[:n]
	}
	return entries
}

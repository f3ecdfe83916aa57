package blackjack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func plainDeal(t *testing.T) {
	t.Helper()
	useDeck(t,
		card(Ten, Spades), card(Five, Clubs),
		card(Nine, Hearts), card(Six, Diamonds),
		card(Ten, Clubs), card(Five, Diamonds),
		card(Nine, Spades), card(Six, Hearts),
	)
}

func TestManagerOneGamePerPlayer(t *testing.T) {
	plainDeal(t)
	m := NewManager(time.Minute)

	g, err := m.StartPvE("alice", 100)
	assert.NoError(t, err)
	assert.Equal(t, 1, m.Active())

	_, err = m.StartPvE("alice", 100)
	assert.ErrorIs(t, err, ErrAlreadyInGame)

	// A busy player cannot sit at a head-to-head table either.
	_, err = m.StartPvP("alice", "bob", 50, "t1")
	assert.ErrorIs(t, err, ErrAlreadyInGame)
	_, err = m.StartPvP("bob", "alice", 50, "t1")
	assert.ErrorIs(t, err, ErrAlreadyInGame)

	m.End(g.Key())
	_, err = m.StartPvP("alice", "bob", 50, "t1")
	assert.NoError(t, err)
}

func TestManagerPvPGuards(t *testing.T) {
	plainDeal(t)
	m := NewManager(time.Minute)

	_, err := m.StartPvP("alice", "alice", 50, "t1")
	assert.ErrorIs(t, err, ErrSelfChallenge)

	_, err = m.StartPvP("alice", "bob", 50, "t1")
	assert.NoError(t, err)

	_, err = m.StartPvP("carol", "dave", 50, "t1")
	assert.ErrorIs(t, err, ErrTableTaken)
}

func TestManagerEndIsIdempotent(t *testing.T) {
	plainDeal(t)
	m := NewManager(time.Minute)

	g, err := m.StartPvE("alice", 100)
	assert.NoError(t, err)

	m.End(g.Key())
	m.End(g.Key())
	assert.Equal(t, 0, m.Active())

	_, ok := m.Get(g.Key())
	assert.False(t, ok)

	_, err = m.StartPvE("alice", 100)
	assert.NoError(t, err)
}

func TestManagerExpired(t *testing.T) {
	plainDeal(t)
	m := NewManager(time.Minute)

	pve, err := m.StartPvE("alice", 100)
	assert.NoError(t, err)
	_, err = m.StartPvP("bob", "carol", 50, "t1")
	assert.NoError(t, err)

	assert.Empty(t, m.Expired(time.Now()))

	late := time.Now().Add(2 * time.Minute)
	assert.Len(t, m.Expired(late), 2)

	// A finished game stays in the scan until its settlement ends it; only
	// deregistering removes it.
	assert.NoError(t, pve.Stand("alice"))
	assert.Len(t, m.Expired(late), 2)
	m.End(pve.Key())
	assert.Len(t, m.Expired(late), 1)
}

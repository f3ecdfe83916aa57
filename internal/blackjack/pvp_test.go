package blackjack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Deal order is challenger, opponent, challenger, opponent; hits continue
// from the fifth card on.

func newTestPvP(t *testing.T, cards ...Card) *PvPGame {
	t.Helper()
	useDeck(t, cards...)
	g, err := newPvPGame("ana", "rui", 50, "table-1", time.Minute)
	assert.NoError(t, err)
	return g
}

func TestPvPChallengerActsFirst(t *testing.T) {
	g := newTestPvP(t,
		card(Ten, Spades), card(Nine, Clubs),
		card(Eight, Diamonds), card(Seven, Hearts),
	)

	assert.ErrorIs(t, g.Hit("rui"), ErrNotYourTurn)
	assert.ErrorIs(t, g.Stand("rui"), ErrNotYourTurn)
	assert.Equal(t, 2, g.hands["rui"].Len())
}

func TestPvPStandPassesTurnThenResolves(t *testing.T) {
	g := newTestPvP(t,
		card(Ten, Spades), card(Nine, Clubs),
		card(Eight, Diamonds), card(Seven, Hearts),
	)

	assert.NoError(t, g.Stand("ana"))
	assert.False(t, g.Finished())

	snap := g.Snapshot()
	assert.Equal(t, "rui", snap.TurnOf)

	assert.NoError(t, g.Stand("rui"))
	assert.True(t, g.Finished())

	// 18 beats 16.
	res := g.Result()
	assert.Equal(t, PvPWin, res.Kind)
	assert.Equal(t, "ana", res.Winner)
}

func TestPvPBustForcesStand(t *testing.T) {
	g := newTestPvP(t,
		card(Ten, Spades), card(Nine, Clubs),
		card(Eight, Diamonds), card(Seven, Hearts),
		card(King, Clubs), card(Five, Spades),
	)

	// Ana draws to 28; her stand is implied and the turn moves on.
	assert.NoError(t, g.Hit("ana"))
	assert.False(t, g.Finished())
	assert.ErrorIs(t, g.Hit("ana"), ErrNotYourTurn)

	// Rui draws to 21, then stands: only one bust, so rui takes it.
	assert.NoError(t, g.Hit("rui"))
	assert.NoError(t, g.Stand("rui"))
	assert.True(t, g.Finished())

	res := g.Result()
	assert.Equal(t, PvPWin, res.Kind)
	assert.Equal(t, "rui", res.Winner)
}

func TestPvPBothBustIsVoid(t *testing.T) {
	g := newTestPvP(t,
		card(Ten, Spades), card(Ten, Clubs),
		card(Six, Diamonds), card(Six, Hearts),
		card(King, Clubs), card(King, Diamonds),
	)

	assert.NoError(t, g.Hit("ana"))
	assert.NoError(t, g.Hit("rui"))
	assert.True(t, g.Finished())

	res := g.Result()
	assert.Equal(t, PvPVoid, res.Kind)
	assert.Empty(t, res.Winner)
}

func TestPvPEqualScoresPush(t *testing.T) {
	g := newTestPvP(t,
		card(Ten, Spades), card(Ten, Clubs),
		card(Eight, Diamonds), card(Eight, Hearts),
	)

	assert.NoError(t, g.Stand("ana"))
	assert.NoError(t, g.Stand("rui"))

	assert.Equal(t, PvPPush, g.Result().Kind)
}

func TestPvPRejectedActionsLeaveStateUntouched(t *testing.T) {
	g := newTestPvP(t,
		card(Ten, Spades), card(Nine, Clubs),
		card(Eight, Diamonds), card(Seven, Hearts),
	)

	assert.ErrorIs(t, g.Hit("mallory"), ErrNotParticipant)
	assert.ErrorIs(t, g.Stand("mallory"), ErrNotParticipant)

	snap := g.Snapshot()
	assert.Equal(t, "ana", snap.TurnOf)
	assert.Equal(t, 2, g.hands["ana"].Len())
	assert.Equal(t, 2, g.hands["rui"].Len())
}

func TestPvPFinishedGameRejectsActions(t *testing.T) {
	g := newTestPvP(t,
		card(Ten, Spades), card(Ten, Clubs),
		card(Eight, Diamonds), card(Eight, Hearts),
	)

	assert.NoError(t, g.Stand("ana"))
	assert.NoError(t, g.Stand("rui"))

	assert.ErrorIs(t, g.Hit("ana"), ErrGameFinished)
	assert.ErrorIs(t, g.Stand("rui"), ErrGameFinished)
}

func TestPvPSnapshotConcealment(t *testing.T) {
	g := newTestPvP(t,
		card(Ten, Spades), card(Nine, Clubs),
		card(Eight, Diamonds), card(Seven, Hearts),
	)

	// Opponent's hand hides everything past the first card until they act.
	snap := g.Snapshot()
	assert.False(t, snap.Hands[0].Concealed)
	assert.True(t, snap.Hands[1].Concealed)
	assert.Equal(t, []string{"9♣", "?"}, snap.Hands[1].Cards)

	assert.NoError(t, g.Stand("ana"))
	snap = g.Snapshot()
	assert.False(t, snap.Hands[1].Concealed)

	assert.NoError(t, g.Stand("rui"))
	snap = g.Snapshot()
	assert.True(t, snap.Finished)
	assert.Equal(t, "ana", snap.Winner)
}

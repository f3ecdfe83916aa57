package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePvEPayoutTable(t *testing.T) {
	natural := handOf(card(Ace, Spades), card(King, Hearts))
	twenty := handOf(card(King, Spades), card(Queen, Hearts))
	nineteen := handOf(card(Ten, Spades), card(Nine, Hearts))
	eighteen := handOf(card(Ten, Clubs), card(Eight, Diamonds))
	dealerBust := handOf(card(Ten, Spades), card(Six, Hearts), card(Six, Clubs))

	// Natural against a non-natural pays 2.5x the stake back.
	out, payout := ResolvePvE(natural, twenty, 100, false)
	assert.Equal(t, OutcomeNaturalWin, out)
	assert.Equal(t, int64(250), payout)

	// Dealer natural beats a plain 21 and everything else.
	out, payout = ResolvePvE(twenty, natural, 100, false)
	assert.Equal(t, OutcomeDealerNatural, out)
	assert.Equal(t, int64(0), payout)

	// Matching naturals push.
	out, payout = ResolvePvE(natural, handOf(card(Ace, Clubs), card(Queen, Diamonds)), 100, false)
	assert.Equal(t, OutcomePush, out)
	assert.Equal(t, int64(100), payout)

	// Dealer bust at 22 vs player 18.
	out, payout = ResolvePvE(eighteen, dealerBust, 100, false)
	assert.Equal(t, OutcomeDealerBust, out)
	assert.Equal(t, int64(200), payout)

	// Plain score comparison both ways, and the push.
	out, payout = ResolvePvE(twenty, eighteen, 100, false)
	assert.Equal(t, OutcomeScoreWin, out)
	assert.Equal(t, int64(200), payout)

	out, payout = ResolvePvE(eighteen, twenty, 100, false)
	assert.Equal(t, OutcomeScoreLoss, out)
	assert.Equal(t, int64(0), payout)

	out, payout = ResolvePvE(nineteen, handOf(card(Nine, Clubs), card(Ten, Diamonds)), 100, false)
	assert.Equal(t, OutcomePush, out)
	assert.Equal(t, int64(100), payout)
}

func TestResolvePvEForcedBust(t *testing.T) {
	busted := handOf(card(Ten, Spades), card(Nine, Hearts), card(Four, Clubs))
	dealer := handOf(card(Ten, Clubs), card(Six, Diamonds))

	out, payout := ResolvePvE(busted, dealer, 100, true)
	assert.Equal(t, OutcomePlayerBust, out)
	assert.Equal(t, int64(0), payout)
}

func TestResolvePvENaturalPayoutRoundsDown(t *testing.T) {
	natural := handOf(card(Ace, Spades), card(King, Hearts))
	dealer := handOf(card(Ten, Clubs), card(Nine, Diamonds))

	_, payout := ResolvePvE(natural, dealer, 5, false)
	assert.Equal(t, int64(12), payout)
}

func TestResolvePvP(t *testing.T) {
	bust := handOf(card(Ten, Spades), card(Nine, Hearts), card(Five, Clubs))
	bust2 := handOf(card(King, Spades), card(Queen, Hearts), card(Two, Clubs))
	twenty := handOf(card(King, Diamonds), card(Queen, Clubs))
	eighteen := handOf(card(Ten, Hearts), card(Eight, Spades))

	res := ResolvePvP(bust, bust2, "a", "b")
	assert.Equal(t, PvPVoid, res.Kind)
	assert.Empty(t, res.Winner)

	res = ResolvePvP(bust, eighteen, "a", "b")
	assert.Equal(t, PvPWin, res.Kind)
	assert.Equal(t, "b", res.Winner)

	res = ResolvePvP(twenty, bust2, "a", "b")
	assert.Equal(t, PvPWin, res.Kind)
	assert.Equal(t, "a", res.Winner)

	res = ResolvePvP(twenty, eighteen, "a", "b")
	assert.Equal(t, PvPWin, res.Kind)
	assert.Equal(t, "a", res.Winner)

	res = ResolvePvP(twenty, handOf(card(Ten, Diamonds), card(King, Clubs)), "a", "b")
	assert.Equal(t, PvPPush, res.Kind)
	assert.Empty(t, res.Winner)
}

func TestResolvePvPNoNaturalBonus(t *testing.T) {
	// A natural only wins on score; the pot never grows.
	natural := handOf(card(Ace, Spades), card(King, Hearts))
	twenty := handOf(card(King, Diamonds), card(Queen, Clubs))

	res := ResolvePvP(natural, twenty, "a", "b")
	assert.Equal(t, PvPWin, res.Kind)
	assert.Equal(t, "a", res.Winner)
}

package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayDealerDrawsToSeventeen(t *testing.T) {
	h := handOf(card(Ten, Spades), card(Six, Hearts))
	d := stackDeck(card(Ace, Clubs))

	assert.NoError(t, PlayDealer(h, d))
	assert.Equal(t, 17, h.Score())
	assert.Equal(t, 3, h.Len())
}

func TestPlayDealerStandsPat(t *testing.T) {
	h := handOf(card(Ten, Spades), card(Seven, Hearts))
	d := stackDeck(card(Five, Clubs))

	assert.NoError(t, PlayDealer(h, d))
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, d.Remaining())
}

func TestPlayDealerStopsOnBust(t *testing.T) {
	h := handOf(card(Ten, Spades), card(Six, Hearts))
	d := stackDeck(card(King, Clubs), card(Two, Diamonds))

	assert.NoError(t, PlayDealer(h, d))
	assert.True(t, h.IsBust())
	assert.Equal(t, 1, d.Remaining())
}

func TestPlayDealerTerminatesOnRandomDecks(t *testing.T) {
	for i := 0; i < 200; i++ {
		h := NewHand()
		d := NewDeck()
		assert.NoError(t, PlayDealer(h, d))
		assert.GreaterOrEqual(t, h.Score(), 17)
	}
}

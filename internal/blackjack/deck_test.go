package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeckDealsAllFiftyTwoCards(t *testing.T) {
	d := NewDeck()
	assert.Equal(t, 52, d.Remaining())

	seen := make(map[Card]bool, 52)
	for i := 0; i < 52; i++ {
		c, err := d.Draw()
		assert.NoError(t, err)
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}

	assert.Equal(t, 0, d.Remaining())
	_, err := d.Draw()
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestDrawReturnsCardsInStackedOrder(t *testing.T) {
	d := stackDeck(card(Ace, Spades), card(King, Hearts), card(Two, Clubs))

	first, err := d.Draw()
	assert.NoError(t, err)
	assert.Equal(t, card(Ace, Spades), first)

	second, _ := d.Draw()
	assert.Equal(t, card(King, Hearts), second)
	assert.Equal(t, 1, d.Remaining())
}

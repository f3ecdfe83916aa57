package blackjack

import "testing"

func card(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

func handOf(cards ...Card) *Hand {
	h := NewHand()
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

// stackDeck builds a deck that deals the given cards in order. Draw takes
// from the end of the pile, so the input is reversed.
func stackDeck(cards ...Card) *Deck {
	pile := make([]Card, len(cards))
	for i, c := range cards {
		pile[len(cards)-1-i] = c
	}
	return &Deck{cards: pile}
}

// useDeck makes every game created during the test deal from a fresh copy
// of the given card order.
func useDeck(t *testing.T, cards ...Card) {
	t.Helper()
	orig := newDeck
	newDeck = func() *Deck { return stackDeck(cards...) }
	t.Cleanup(func() { newDeck = orig })
}

package blackjack

import "math/rand"

// Deck is a shuffled 52-card draw pile owned by a single game.
type Deck struct {
	cards []Card
}

// newDeck is swapped out by tests that need a stacked deal.
var newDeck = NewDeck

func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for s := Clubs; s <= Spades; s++ {
		for r := Two; r <= Ace; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// Draw removes and returns the top card. An empty deck cannot happen in a
// normal game; it signals a consistency fault to the caller.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

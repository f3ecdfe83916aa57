package blackjack

// Hand is an ordered sequence of cards; insertion order is draw order, which
// matters for hole-card concealment when rendering.
type Hand struct {
	cards []Card
}

func NewHand() *Hand {
	return &Hand{}
}

func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Score sums card values, then converts aces from 11 to 1 one at a time
// while the total is over 21. The result is the best total not exceeding 21,
// or the minimal bust total when no soft ace remains.
func (h *Hand) Score() int {
	total := 0
	aces := 0

	for _, c := range h.cards {
		total += c.Value()
		if c.Rank == Ace {
			aces++
		}
	}

	for aces > 0 && total > 21 {
		total -= 10
		aces--
	}

	return total
}

// IsBlackjack reports a natural: exactly two cards scoring 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Score() == 21
}

func (h *Hand) IsBust() bool {
	return h.Score() > 21
}

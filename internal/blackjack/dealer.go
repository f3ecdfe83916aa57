package blackjack

// PlayDealer draws into the dealer's hand while it scores under 17. Each
// draw raises the score by at least one even after ace softening, so the
// loop always reaches 17+ or a bust.
func PlayDealer(hand *Hand, deck *Deck) error {
	for hand.Score() < 17 {
		c, err := deck.Draw()
		if err != nil {
			return err
		}
		hand.Add(c)
	}
	return nil
}

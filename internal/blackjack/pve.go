package blackjack

import (
	"sync"
	"time"
)

// PvEGame is a single-player game against the house dealer. All mutation
// happens under the game's own lock; once finished the state is frozen.
type PvEGame struct {
	mu sync.Mutex

	playerID string
	bet      int64
	timeout  time.Duration

	deck   *Deck
	player *Hand
	dealer *Hand

	finished bool
	expired  bool
	settling bool
	outcome  Outcome
	payout   int64
	deadline time.Time
}

func newPvEGame(playerID string, bet int64, timeout time.Duration) (*PvEGame, error) {
	g := &PvEGame{
		playerID: playerID,
		bet:      bet,
		timeout:  timeout,
		deck:     newDeck(),
		player:   NewHand(),
		dealer:   NewHand(),
	}

	for i := 0; i < 2; i++ {
		for _, h := range []*Hand{g.player, g.dealer} {
			c, err := g.deck.Draw()
			if err != nil {
				return nil, err
			}
			h.Add(c)
		}
	}

	g.touch()

	// Dealt 21 resolves on the spot; the dealer's hole card may still be a
	// matching natural, which the resolver checks.
	if g.player.Score() == 21 {
		g.resolve(false)
	}

	return g, nil
}

func (g *PvEGame) Key() string { return g.playerID }

func (g *PvEGame) Participants() []string { return []string{g.playerID} }

func (g *PvEGame) PlayerID() string { return g.playerID }

func (g *PvEGame) Bet() int64 { return g.bet }

func (g *PvEGame) Finished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.finished
}

func (g *PvEGame) Outcome() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outcome
}

func (g *PvEGame) Payout() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.payout
}

func (g *PvEGame) Deadline() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.deadline
}

func (g *PvEGame) Expired() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.expired
}

// claimSettlement grants the caller the exclusive right to pay the game out.
// Exactly one claim succeeds per finished game unless it is released again
// after a failed payout.
func (g *PvEGame) claimSettlement() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.finished || g.settling {
		return false
	}
	g.settling = true
	return true
}

// releaseSettlement returns a failed claim so the payout can be retried.
func (g *PvEGame) releaseSettlement() {
	g.mu.Lock()
	g.settling = false
	g.mu.Unlock()
}

// Hit draws one card into the player's hand. A bust resolves immediately
// without the dealer playing.
func (g *PvEGame) Hit(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerID != g.playerID {
		return ErrNotParticipant
	}
	if g.finished {
		return ErrGameFinished
	}

	c, err := g.deck.Draw()
	if err != nil {
		return err
	}
	g.player.Add(c)
	g.touch()

	if g.player.IsBust() {
		g.resolve(true)
	}
	return nil
}

// Stand runs the dealer and resolves.
func (g *PvEGame) Stand(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerID != g.playerID {
		return ErrNotParticipant
	}
	if g.finished {
		return ErrGameFinished
	}

	if err := PlayDealer(g.dealer, g.deck); err != nil {
		return err
	}
	g.touch()
	g.resolve(false)
	return nil
}

// forceExpire marks an idle game finished so the sweeper can settle it.
// Returns false when the game already resolved normally; an expired game
// whose settlement failed earlier reports true again so the sweep retries.
func (g *PvEGame) forceExpire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.expired {
		return true
	}
	if g.finished {
		return false
	}
	g.finished = true
	g.expired = true
	return true
}

func (g *PvEGame) resolve(forcedBust bool) {
	g.outcome, g.payout = ResolvePvE(g.player, g.dealer, g.bet, forcedBust)
	g.finished = true
}

func (g *PvEGame) touch() {
	g.deadline = time.Now().Add(g.timeout)
}

// Snapshot captures a render-safe copy of the game state. The dealer's hole
// card stays concealed until the game finishes.
func (g *PvEGame) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Mode:     ModePvE,
		Key:      g.playerID,
		Bet:      g.bet,
		Finished: g.finished,
		Expired:  g.expired,
		Payout:   g.payout,
		Hands: []HandView{
			handView(g.playerID, g.player, false),
			handView(dealerName, g.dealer, !g.finished),
		},
	}
	if g.finished {
		snap.Outcome = g.outcome.String()
	} else {
		snap.TurnOf = g.playerID
	}
	return snap
}

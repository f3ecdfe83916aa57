package blackjack

import (
	"sync"
	"time"
)

// PvPGame is a head-to-head game at a shared table. The challenger acts
// first; the turn passes when a player stands, and a bust forces the stand.
type PvPGame struct {
	mu sync.Mutex

	tableKey string
	playerA  string
	playerB  string
	bet      int64
	pot      int64
	timeout  time.Duration

	deck  *Deck
	hands map[string]*Hand

	turnOf   string
	stood    map[string]bool
	finished bool
	expired  bool
	settling bool
	result   PvPResult
	deadline time.Time
}

func newPvPGame(playerA, playerB string, bet int64, tableKey string, timeout time.Duration) (*PvPGame, error) {
	g := &PvPGame{
		tableKey: tableKey,
		playerA:  playerA,
		playerB:  playerB,
		bet:      bet,
		pot:      bet * 2,
		timeout:  timeout,
		deck:     newDeck(),
		hands: map[string]*Hand{
			playerA: NewHand(),
			playerB: NewHand(),
		},
		turnOf: playerA,
		stood:  make(map[string]bool, 2),
	}

	for i := 0; i < 2; i++ {
		for _, id := range []string{playerA, playerB} {
			c, err := g.deck.Draw()
			if err != nil {
				return nil, err
			}
			g.hands[id].Add(c)
		}
	}

	g.touch()
	return g, nil
}

func (g *PvPGame) Key() string { return g.tableKey }

func (g *PvPGame) Participants() []string { return []string{g.playerA, g.playerB} }

func (g *PvPGame) Bet() int64 { return g.bet }

func (g *PvPGame) Pot() int64 { return g.pot }

func (g *PvPGame) Finished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.finished
}

func (g *PvPGame) Result() PvPResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result
}

func (g *PvPGame) Deadline() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.deadline
}

func (g *PvPGame) Expired() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.expired
}

// claimSettlement grants the caller the exclusive right to pay the table out.
// Exactly one claim succeeds per finished game unless it is released again
// after a failed payout.
func (g *PvPGame) claimSettlement() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.finished || g.settling {
		return false
	}
	g.settling = true
	return true
}

// releaseSettlement returns a failed claim so the payout can be retried.
func (g *PvPGame) releaseSettlement() {
	g.mu.Lock()
	g.settling = false
	g.mu.Unlock()
}

func (g *PvPGame) guard(playerID string) error {
	if _, ok := g.hands[playerID]; !ok {
		return ErrNotParticipant
	}
	if g.finished {
		return ErrGameFinished
	}
	if playerID != g.turnOf {
		return ErrNotYourTurn
	}
	return nil
}

// Hit draws one card into the acting player's hand; busting forces their
// stand so the turn moves on without another action.
func (g *PvPGame) Hit(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(playerID); err != nil {
		return err
	}

	c, err := g.deck.Draw()
	if err != nil {
		return err
	}
	g.hands[playerID].Add(c)
	g.touch()

	if g.hands[playerID].IsBust() {
		g.stand(playerID)
	}
	return nil
}

// Stand marks the acting player done and either passes the turn or resolves.
func (g *PvPGame) Stand(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(playerID); err != nil {
		return err
	}

	g.touch()
	g.stand(playerID)
	return nil
}

func (g *PvPGame) stand(playerID string) {
	g.stood[playerID] = true

	opponent := g.opponent(playerID)
	if !g.stood[opponent] {
		g.turnOf = opponent
		return
	}

	g.result = ResolvePvP(g.hands[g.playerA], g.hands[g.playerB], g.playerA, g.playerB)
	g.finished = true
}

func (g *PvPGame) opponent(playerID string) string {
	if playerID == g.playerA {
		return g.playerB
	}
	return g.playerA
}

// forceExpire marks an idle table finished so the sweeper can refund it.
// An expired table whose refund failed earlier reports true again so the
// sweep retries.
func (g *PvPGame) forceExpire() bool {
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

func (g *PvPGame) touch() {
	g.deadline = time.Now().Add(g.timeout)
}

// Snapshot captures a render-safe copy. A hand stays concealed while its
// owner has neither acted nor holds the turn.
func (g *PvPGame) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Mode:     ModePvP,
		Key:      g.tableKey,
		Bet:      g.bet,
		Pot:      g.pot,
		Finished: g.finished,
		Expired:  g.expired,
		Winner:   g.result.Winner,
	}
	if g.finished {
		snap.Outcome = g.result.Kind.String()
	} else {
		snap.TurnOf = g.turnOf
	}

	for _, id := range []string{g.playerA, g.playerB} {
		concealed := !g.finished && id != g.turnOf && !g.stood[id]
		snap.Hands = append(snap.Hands, handView(id, g.hands[id], concealed))
	}
	return snap
}

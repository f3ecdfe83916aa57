package blackjack

import (
	"fmt"

	"bj-platform/internal/event"
)

type Audit interface {
	Log(uid string, action string, metadata string)
}

type Broadcaster interface {
	BroadcastJSON(v interface{})
}

// RegisterConsumers wires settlement events into the audit log, the
// leaderboard and the spectator websocket feed.
func RegisterConsumers(bus *event.Bus, audit Audit, lb *Leaderboard, ws Broadcaster) {

	settle := func(payload interface{}) {
		res, ok := payload.(*Settlement)
		if !ok {
			return
		}

		for uid, bet := range res.Bets {
			payout := res.Payouts[uid]
			audit.Log(uid, "blackjack_"+res.Mode, fmt.Sprintf("outcome=%s bet=%d payout=%d", res.Outcome, bet, payout))
			if !res.Expired {
				lb.Record(uid, bet, payout)
			}
		}

		ws.BroadcastJSON(res)
	}

	bus.Subscribe(event.EventGameSettled, settle)
	bus.Subscribe(event.EventGameExpired, settle)
}

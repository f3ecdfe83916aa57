package blackjack

import (
	"fmt"
	"strings"
)

const (
	ModePvE = "pve"
	ModePvP = "pvp"

	dealerName = "dealer"
)

// HandView is one hand as shown to spectators. A concealed hand exposes
// only the first card; Score then carries just that card's value.
type HandView struct {
	Owner     string   `json:"owner"`
	Cards     []string `json:"cards"`
	Score     int      `json:"score"`
	Concealed bool     `json:"concealed"`
}

// Snapshot is an immutable copy of a game for rendering and broadcast.
type Snapshot struct {
	Mode     string     `json:"mode"`
	Key      string     `json:"key"`
	Bet      int64      `json:"bet"`
	Pot      int64      `json:"pot,omitempty"`
	TurnOf   string     `json:"turn_of,omitempty"`
	Finished bool       `json:"finished"`
	Expired  bool       `json:"expired,omitempty"`
	Outcome  string     `json:"outcome,omitempty"`
	Winner   string     `json:"winner,omitempty"`
	Payout   int64      `json:"payout"`
	Hands    []HandView `json:"hands"`
}

func handView(owner string, h *Hand, concealed bool) HandView {
	cards := h.Cards()
	view := HandView{Owner: owner, Concealed: concealed}

	if concealed && len(cards) > 0 {
		view.Cards = []string{cards[0].String(), "?"}
		view.Score = cards[0].Value()
		return view
	}

	for _, c := range cards {
		view.Cards = append(view.Cards, c.String())
	}
	view.Score = h.Score()
	return view
}

// Text renders the snapshot as the chat-facing game board.
func (s Snapshot) Text() string {
	var b strings.Builder

	for _, h := range s.Hands {
		if h.Concealed {
			fmt.Fprintf(&b, "%s: %s (%d+)\n", h.Owner, strings.Join(h.Cards, " "), h.Score)
		} else {
			fmt.Fprintf(&b, "%s: %s (%d)\n", h.Owner, strings.Join(h.Cards, " "), h.Score)
		}
	}

	if s.Mode == ModePvP {
		fmt.Fprintf(&b, "pot: %d\n", s.Pot)
	} else {
		fmt.Fprintf(&b, "bet: %d\n", s.Bet)
	}

	switch {
	case s.Expired:
		b.WriteString("game expired\n")
	case s.Finished && s.Winner != "":
		fmt.Fprintf(&b, "result: %s wins the pot\n", s.Winner)
	case s.Finished:
		fmt.Fprintf(&b, "result: %s\n", s.Outcome)
	default:
		fmt.Fprintf(&b, "waiting on %s\n", s.TurnOf)
	}

	return b.String()
}

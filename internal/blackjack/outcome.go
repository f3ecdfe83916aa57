package blackjack

// Outcome classifies a finished PvE game from the player's perspective.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeNaturalWin
	OutcomePlayerBust
	OutcomeDealerNatural
	OutcomeDealerBust
	OutcomeScoreWin
	OutcomeScoreLoss
	OutcomePush
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNaturalWin:
		return "natural_win"
	case OutcomePlayerBust:
		return "player_bust"
	case OutcomeDealerNatural:
		return "dealer_natural"
	case OutcomeDealerBust:
		return "dealer_bust"
	case OutcomeScoreWin:
		return "score_win"
	case OutcomeScoreLoss:
		return "score_loss"
	case OutcomePush:
		return "push"
	}
	return "none"
}

// ResolvePvE maps two finished hands and the bet to an outcome and the total
// amount returned to the player. The bet is already escrowed, so 0 means it
// is forfeited and bet means a push. forcedBust short-circuits the table for
// a player who busted during a hit, before the dealer ever played.
func ResolvePvE(player, dealer *Hand, bet int64, forcedBust bool) (Outcome, int64) {
	if forcedBust || player.IsBust() {
		return OutcomePlayerBust, 0
	}

	playerNatural := player.IsBlackjack()
	dealerNatural := dealer.IsBlackjack()

	switch {
	case playerNatural && !dealerNatural:
		// 3:2 bonus on top of the returned stake.
		return OutcomeNaturalWin, bet * 5 / 2
	case dealerNatural && !playerNatural:
		return OutcomeDealerNatural, 0
	case dealer.IsBust():
		return OutcomeDealerBust, bet * 2
	}

	p, d := player.Score(), dealer.Score()
	switch {
	case p > d:
		return OutcomeScoreWin, bet * 2
	case p < d:
		return OutcomeScoreLoss, 0
	}
	return OutcomePush, bet
}

// PvPResultKind classifies a finished PvP game.
type PvPResultKind uint8

const (
	// PvPWin awards the full pot to Winner.
	PvPWin PvPResultKind = iota
	// PvPPush returns each player's own stake.
	PvPPush
	// PvPVoid routes the pot to the vault; both players busted.
	PvPVoid
)

func (k PvPResultKind) String() string {
	switch k {
	case PvPWin:
		return "win"
	case PvPPush:
		return "push"
	}
	return "void"
}

type PvPResult struct {
	Kind   PvPResultKind
	Winner string
}

// ResolvePvP compares two finished hands. Naturals carry no bonus here: the
// pot is fixed at twice the stake, so only bust state and raw score matter.
func ResolvePvP(a, b *Hand, aID, bID string) PvPResult {
	aBust, bBust := a.IsBust(), b.IsBust()

	switch {
	case aBust && bBust:
		return PvPResult{Kind: PvPVoid}
	case aBust:
		return PvPResult{Kind: PvPWin, Winner: bID}
	case bBust:
		return PvPResult{Kind: PvPWin, Winner: aID}
	}

	as, bs := a.Score(), b.Score()
	switch {
	case as > bs:
		return PvPResult{Kind: PvPWin, Winner: aID}
	case bs > as:
		return PvPResult{Kind: PvPWin, Winner: bID}
	}
	return PvPResult{Kind: PvPPush}
}

package blackjack

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bj-platform/internal/event"
	"bj-platform/internal/logger"
	"bj-platform/internal/monitoring"
	"bj-platform/internal/wallet"
)

type Wallet interface {
	Begin() (*sql.Tx, error)
	Balance(uid string) (int64, error)
	Debit(tx *sql.Tx, uid string, amount int64) error
	Credit(tx *sql.Tx, uid string, amount int64) error
}

type Ledger interface {
	Debit(tx *sql.Tx, account string, amount int64) error
	Credit(tx *sql.Tx, account string, amount int64) error
}

// Settlement is published on the bus whenever a game leaves the registry.
type Settlement struct {
	Mode    string           `json:"mode"`
	Key     string           `json:"key"`
	Outcome string           `json:"outcome"`
	Expired bool             `json:"expired"`
	Bets    map[string]int64 `json:"bets"`
	Payouts map[string]int64 `json:"payouts"`
}

// Service ties the engine to the money: escrow on start, payout before
// teardown, vault credits for forfeited stakes.
type Service struct {
	wallet  Wallet
	ledger  Ledger
	manager *Manager
	bus     *event.Bus
	vault   string
}

func NewService(w Wallet, l Ledger, m *Manager, bus *event.Bus, vaultAccount string) *Service {
	return &Service{wallet: w, ledger: l, manager: m, bus: bus, vault: vaultAccount}
}

func (s *Service) Manager() *Manager { return s.manager }

// StartPvE escrows the bet, registers the game and, when the deal itself
// already scored 21, settles on the spot.
func (s *Service) StartPvE(playerID string, bet int64) (*PvEGame, error) {
	if bet <= 0 {
		return nil, ErrInvalidBet
	}

	bal, err := s.wallet.Balance(playerID)
	if err != nil {
		return nil, err
	}
	if bal < bet {
		return nil, ErrInsufficientFunds
	}

	if err := s.escrow(map[string]int64{playerID: bet}); err != nil {
		return nil, err
	}

	g, err := s.manager.StartPvE(playerID, bet)
	if err != nil {
		s.refund(map[string]int64{playerID: bet})
		return nil, err
	}

	monitoring.GamesStarted.WithLabelValues(ModePvE).Inc()
	logger.Log.Info("pve game started",
		zap.String("player", playerID),
		zap.Int64("bet", bet))

	if g.Finished() {
		if err := s.settlePvE(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// StartPvP escrows both stakes and registers the table under a fresh key.
func (s *Service) StartPvP(challenger, opponent string, bet int64) (*PvPGame, error) {
	if bet <= 0 {
		return nil, ErrInvalidBet
	}
	if challenger == opponent {
		return nil, ErrSelfChallenge
	}

	for _, id := range []string{challenger, opponent} {
		bal, err := s.wallet.Balance(id)
		if err != nil {
			return nil, err
		}
		if bal < bet {
			return nil, ErrInsufficientFunds
		}
	}

	stakes := map[string]int64{challenger: bet, opponent: bet}
	if err := s.escrow(stakes); err != nil {
		return nil, err
	}

	g, err := s.manager.StartPvP(challenger, opponent, bet, uuid.New().String())
	if err != nil {
		s.refund(stakes)
		return nil, err
	}

	monitoring.GamesStarted.WithLabelValues(ModePvP).Inc()
	logger.Log.Info("pvp game started",
		zap.String("table", g.Key()),
		zap.String("challenger", challenger),
		zap.String("opponent", opponent),
		zap.Int64("bet", bet))

	return g, nil
}

// Hit forwards the action to the game behind key and settles if it ended.
func (s *Service) Hit(key, playerID string) (Game, error) {
	return s.act(key, playerID, func(g Game) error {
		switch game := g.(type) {
		case *PvEGame:
			return game.Hit(playerID)
		case *PvPGame:
			return game.Hit(playerID)
		}
		return ErrGameNotFound
	})
}

// Stand forwards the action to the game behind key and settles if it ended.
func (s *Service) Stand(key, playerID string) (Game, error) {
	return s.act(key, playerID, func(g Game) error {
		switch game := g.(type) {
		case *PvEGame:
			return game.Stand(playerID)
		case *PvPGame:
			return game.Stand(playerID)
		}
		return ErrGameNotFound
	})
}

func (s *Service) act(key, playerID string, action func(Game) error) (Game, error) {
	g, ok := s.manager.Get(key)
	if !ok {
		return nil, ErrGameNotFound
	}

	if err := action(g); err != nil {
		return g, err
	}

	if g.Finished() {
		if err := s.settle(g); err != nil {
			return g, err
		}
	}
	return g, nil
}

func (s *Service) settle(g Game) error {
	switch game := g.(type) {
	case *PvEGame:
		return s.settlePvE(game)
	case *PvPGame:
		return s.settlePvP(game)
	}
	return nil
}

// settlePvE pays the table amount back to the player, or books the
// forfeited stake to the vault, then releases the registration. The claim
// makes the payout once-only even when two callers observe the finish.
func (s *Service) settlePvE(g *PvEGame) error {
	if !g.claimSettlement() {
		return nil
	}
	payout := g.Payout()

	tx, err := s.wallet.Begin()
	if err != nil {
		g.releaseSettlement()
		return err
	}
	if payout > 0 {
		if err := s.wallet.Credit(tx, g.PlayerID(), payout); err != nil {
			tx.Rollback()
			g.releaseSettlement()
			return err
		}
		if err := s.ledger.Credit(tx, g.PlayerID(), payout); err != nil {
			tx.Rollback()
			g.releaseSettlement()
			return err
		}
	} else {
		if err := s.ledger.Credit(tx, s.vault, g.Bet()); err != nil {
			tx.Rollback()
			g.releaseSettlement()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		g.releaseSettlement()
		return err
	}

	s.manager.End(g.Key())

	outcome := g.Outcome()
	monitoring.GamesSettled.WithLabelValues(ModePvE, outcome.String()).Inc()
	monitoring.PayoutTotal.Add(float64(payout))
	logger.Log.Info("pve game settled",
		zap.String("player", g.PlayerID()),
		zap.String("outcome", outcome.String()),
		zap.Int64("payout", payout))

	s.bus.Publish(event.EventGameSettled, &Settlement{
		Mode:    ModePvE,
		Key:     g.Key(),
		Outcome: outcome.String(),
		Bets:    map[string]int64{g.PlayerID(): g.Bet()},
		Payouts: map[string]int64{g.PlayerID(): payout},
	})
	return nil
}

// settlePvP awards the pot, splits the stakes back on a push, or books a
// void pot to the vault, then releases the table. The claim makes the payout
// once-only even when two callers observe the finish.
func (s *Service) settlePvP(g *PvPGame) error {
	if !g.claimSettlement() {
		return nil
	}
	result := g.Result()
	payouts := make(map[string]int64, 2)

	tx, err := s.wallet.Begin()
	if err != nil {
		g.releaseSettlement()
		return err
	}
	switch result.Kind {
	case PvPWin:
		if err := s.creditPlayer(tx, result.Winner, g.Pot()); err != nil {
			tx.Rollback()
			g.releaseSettlement()
			return err
		}
		payouts[result.Winner] = g.Pot()
	case PvPPush:
		for _, id := range g.Participants() {
			if err := s.creditPlayer(tx, id, g.Bet()); err != nil {
				tx.Rollback()
				g.releaseSettlement()
				return err
			}
			payouts[id] = g.Bet()
		}
	case PvPVoid:
		if err := s.ledger.Credit(tx, s.vault, g.Pot()); err != nil {
			tx.Rollback()
			g.releaseSettlement()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		g.releaseSettlement()
		return err
	}

	s.manager.End(g.Key())

	monitoring.GamesSettled.WithLabelValues(ModePvP, result.Kind.String()).Inc()
	logger.Log.Info("pvp game settled",
		zap.String("table", g.Key()),
		zap.String("result", result.Kind.String()),
		zap.String("winner", result.Winner))

	bets := make(map[string]int64, 2)
	for _, id := range g.Participants() {
		bets[id] = g.Bet()
	}
	s.bus.Publish(event.EventGameSettled, &Settlement{
		Mode:    ModePvP,
		Key:     g.Key(),
		Outcome: result.Kind.String(),
		Bets:    bets,
		Payouts: payouts,
	})
	return nil
}

// SweepExpired force-resolves idle games: a PvE stake is forfeited to the
// vault, a PvP table refunds both stakes. Failed settlements, expiry or
// normal, stay registered and are retried here on the next sweep.
func (s *Service) SweepExpired(now time.Time) {
	for _, g := range s.manager.Expired(now) {
		switch game := g.(type) {
		case *PvEGame:
			if game.forceExpire() {
				s.expirePvE(game)
			} else if err := s.settlePvE(game); err != nil {
				s.logSettleFailure(game, err)
			}
		case *PvPGame:
			if game.forceExpire() {
				s.expirePvP(game)
			} else if err := s.settlePvP(game); err != nil {
				s.logSettleFailure(game, err)
			}
		}
	}
}

func (s *Service) expirePvE(g *PvEGame) {
	if !g.claimSettlement() {
		return
	}
	tx, err := s.wallet.Begin()
	if err != nil {
		g.releaseSettlement()
		s.logSettleFailure(g, err)
		return
	}
	if err := s.ledger.Credit(tx, s.vault, g.Bet()); err != nil {
		tx.Rollback()
		g.releaseSettlement()
		s.logSettleFailure(g, err)
		return
	}
	if err := tx.Commit(); err != nil {
		g.releaseSettlement()
		s.logSettleFailure(g, err)
		return
	}

	s.manager.End(g.Key())
	monitoring.GamesSettled.WithLabelValues(ModePvE, "expired").Inc()
	logger.Log.Warn("pve game expired, bet forfeited",
		zap.String("player", g.PlayerID()),
		zap.Int64("bet", g.Bet()))

	s.bus.Publish(event.EventGameExpired, &Settlement{
		Mode:    ModePvE,
		Key:     g.Key(),
		Outcome: "expired",
		Expired: true,
		Bets:    map[string]int64{g.PlayerID(): g.Bet()},
		Payouts: map[string]int64{},
	})
}

func (s *Service) expirePvP(g *PvPGame) {
	if !g.claimSettlement() {
		return
	}
	payouts := make(map[string]int64, 2)

	tx, err := s.wallet.Begin()
	if err != nil {
		g.releaseSettlement()
		s.logSettleFailure(g, err)
		return
	}
	for _, id := range g.Participants() {
		if err := s.creditPlayer(tx, id, g.Bet()); err != nil {
			tx.Rollback()
			g.releaseSettlement()
			s.logSettleFailure(g, err)
			return
		}
		payouts[id] = g.Bet()
	}
	if err := tx.Commit(); err != nil {
		g.releaseSettlement()
		s.logSettleFailure(g, err)
		return
	}

	s.manager.End(g.Key())
	monitoring.GamesSettled.WithLabelValues(ModePvP, "expired").Inc()
	logger.Log.Warn("pvp game expired, stakes refunded",
		zap.String("table", g.Key()))

	bets := make(map[string]int64, 2)
	for _, id := range g.Participants() {
		bets[id] = g.Bet()
	}
	s.bus.Publish(event.EventGameExpired, &Settlement{
		Mode:    ModePvP,
		Key:     g.Key(),
		Outcome: "expired",
		Expired: true,
		Bets:    bets,
		Payouts: payouts,
	})
}

// logSettleFailure records a failed settlement. The game stays registered,
// so the next sweep picks it up again.
func (s *Service) logSettleFailure(g Game, err error) {
	logger.Log.Error("settlement failed, will retry",
		zap.String("key", g.Key()),
		zap.Error(err))
}

func (s *Service) creditPlayer(tx *sql.Tx, uid string, amount int64) error {
	if err := s.wallet.Credit(tx, uid, amount); err != nil {
		return err
	}
	return s.ledger.Credit(tx, uid, amount)
}

// escrow debits every stake in one transaction and books the ledger rows.
func (s *Service) escrow(stakes map[string]int64) error {
	tx, err := s.wallet.Begin()
	if err != nil {
		return err
	}
	for id, amount := range stakes {
		if err := s.wallet.Debit(tx, id, amount); err != nil {
			tx.Rollback()
			if errors.Is(err, wallet.ErrInsufficientFunds) {
				return ErrInsufficientFunds
			}
			return err
		}
		if err := s.ledger.Debit(tx, id, amount); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Service) refund(stakes map[string]int64) {
	tx, err := s.wallet.Begin()
	if err != nil {
		return
	}
	for id, amount := range stakes {
		if err := s.creditPlayer(tx, id, amount); err != nil {
			tx.Rollback()
			return
		}
	}
	tx.Commit()
}

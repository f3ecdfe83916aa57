package heist

import (
	"database/sql"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"bj-platform/internal/cache"
	"bj-platform/internal/event"
	"bj-platform/internal/logger"
	"bj-platform/internal/monitoring"
)

var (
	ErrSelfHeist     = errors.New("cannot rob yourself")
	ErrCoolingDown   = errors.New("heist attempted too recently")
	ErrTargetTooPoor = errors.New("target wallet below minimum")
	ErrThiefTooPoor  = errors.New("thief wallet below minimum")
)

const (
	minTargetWallet = 200
	minThiefWallet  = 100
	successPercent  = 40
)

type Wallet interface {
	Debit(tx *sql.Tx, uid string, amount int64) error
	Credit(tx *sql.Tx, uid string, amount int64) error
}

type Ledger interface {
	Debit(tx *sql.Tx, account string, amount int64) error
	Credit(tx *sql.Tx, account string, amount int64) error
}

// Service runs wallet robbery attempts. A success moves a random 10-50% cut
// of the target's wallet to the thief; getting caught fines the thief 5-20%
// of their own wallet into the vault. The cooldown lives in redis, keyed by
// the thief, and is consumed whether or not the attempt pays off.
type Service struct {
	db       *sql.DB
	wallet   Wallet
	ledger   Ledger
	bus      *event.Bus
	vault    string
	cooldown time.Duration

	roll     func() bool
	fraction func(lo, hi float64) float64
	claim    func(key string, ttl time.Duration) (bool, error)
}

func New(db *sql.DB, wallet Wallet, ledger Ledger, bus *event.Bus, vault string, cooldown time.Duration) *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		db:       db,
		wallet:   wallet,
		ledger:   ledger,
		bus:      bus,
		vault:    vault,
		cooldown: cooldown,
		roll:     func() bool { return rng.Intn(100) < successPercent },
		fraction: func(lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) },
		claim:    cache.ClaimOnce,
	}
}

// Result is what the thief walked away with, or paid as a fine.
type Result struct {
	Success bool  `json:"success"`
	Amount  int64 `json:"amount"`
}

func (s *Service) Attempt(thief, target string) (*Result, error) {
	if thief == target {
		return nil, ErrSelfHeist
	}

	ok, err := s.claim("heist:"+thief, s.cooldown)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCoolingDown
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	targetWallet, err := s.walletOf(tx, target)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	thiefWallet, err := s.walletOf(tx, thief)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if targetWallet < minTargetWallet {
		tx.Rollback()
		return nil, ErrTargetTooPoor
	}
	if thiefWallet < minThiefWallet {
		tx.Rollback()
		return nil, ErrThiefTooPoor
	}

	res := &Result{Success: s.roll()}
	if res.Success {
		res.Amount = int64(float64(targetWallet) * s.fraction(0.10, 0.50))
		if err := s.wallet.Debit(tx, target, res.Amount); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := s.wallet.Credit(tx, thief, res.Amount); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := s.ledger.Debit(tx, target, res.Amount); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := s.ledger.Credit(tx, thief, res.Amount); err != nil {
			tx.Rollback()
			return nil, err
		}
	} else {
		res.Amount = int64(float64(thiefWallet) * s.fraction(0.05, 0.20))
		if err := s.wallet.Debit(tx, thief, res.Amount); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := s.ledger.Credit(tx, s.vault, res.Amount); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	label := "caught"
	if res.Success {
		label = "success"
	}
	monitoring.HeistAttempts.WithLabelValues(label).Inc()
	logger.Log.Info("heist attempted",
		zap.String("thief", thief),
		zap.String("target", target),
		zap.Bool("success", res.Success),
		zap.Int64("amount", res.Amount))

	s.bus.Publish(event.EventHeistAttempted, &Attempted{
		Thief:   thief,
		Target:  target,
		Success: res.Success,
		Amount:  res.Amount,
	})
	return res, nil
}

// Attempted is published on the bus after every resolved attempt.
type Attempted struct {
	Thief   string `json:"thief"`
	Target  string `json:"target"`
	Success bool   `json:"success"`
	Amount  int64  `json:"amount"`
}

// walletOf reads a wallet balance inside the attempt's transaction. A user
// without a row simply has nothing to take.
func (s *Service) walletOf(tx *sql.Tx, uid string) (int64, error) {
	var w int64
	err := tx.QueryRow(`SELECT wallet FROM wallets WHERE uid=?`, uid).Scan(&w)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return w, err
}

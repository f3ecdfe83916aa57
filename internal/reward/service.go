package reward

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bj-platform/internal/cache"
	"bj-platform/internal/event"
)

var ErrCoolingDown = errors.New("reward already claimed, try again later")

type Wallet interface {
	Credit(tx *sql.Tx, uid string, amount int64) error
}

// Service hands out the periodic free-coin claim. The cooldown lives in
// redis so restarts do not reset it.
type Service struct {
	db       *sql.DB
	wallet   Wallet
	bus      *event.Bus
	amount   int64
	cooldown time.Duration
}

func New(db *sql.DB, wallet Wallet, bus *event.Bus, amount int64, cooldown time.Duration) *Service {
	return &Service{db: db, wallet: wallet, bus: bus, amount: amount, cooldown: cooldown}
}

type Claimed struct {
	UID    string `json:"uid"`
	Amount int64  `json:"amount"`
}

func (s *Service) Claim(uid string) (int64, error) {
	ok, err := cache.ClaimOnce(fmt.Sprintf("reward:%s", uid), s.cooldown)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrCoolingDown
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	if err := s.wallet.Credit(tx, uid, s.amount); err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.bus.Publish(event.EventRewardClaimed, &Claimed{UID: uid, Amount: s.amount})
	return s.amount, nil
}

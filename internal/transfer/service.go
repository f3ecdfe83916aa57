package transfer

import (
	"database/sql"
	"errors"
	"time"

	"bj-platform/internal/event"
)

var (
	ErrSelfTransfer  = errors.New("cannot send to self")
	ErrInvalidAmount = errors.New("amount must be positive")
)

type Wallet interface {
	Debit(tx *sql.Tx, uid string, amount int64) error
	Credit(tx *sql.Tx, uid string, amount int64) error
}

type Ledger interface {
	Debit(tx *sql.Tx, account string, amount int64) error
	Credit(tx *sql.Tx, account string, amount int64) error
}

type Service struct {
	db     *sql.DB
	wallet Wallet
	ledger Ledger
	bus    *event.Bus
}

func New(db *sql.DB, wallet Wallet, ledger Ledger, bus *event.Bus) *Service {
	return &Service{db: db, wallet: wallet, ledger: ledger, bus: bus}
}

type Completed struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// Send moves amount from one user's wallet to another's atomically and
// records the transfer.
func (s *Service) Send(from, to string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if from == to {
		return ErrSelfTransfer
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if err := s.wallet.Debit(tx, from, amount); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.wallet.Credit(tx, to, amount); err != nil {
		tx.Rollback()
		return err
	}

	if err := s.ledger.Debit(tx, from, amount); err != nil {
		tx.Rollback()
		return err
	}
	if err := s.ledger.Credit(tx, to, amount); err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Exec(`
	INSERT INTO transfers(from_uid,to_uid,amount,status,created_at)
	VALUES (?,?,?,?,?)
	`, from, to, amount, "completed", time.Now().Unix())
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.bus.Publish(event.EventTransferCompleted, &Completed{From: from, To: to, Amount: amount})
	return nil
}

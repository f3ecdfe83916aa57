package bank

import (
	"database/sql"
	"errors"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Service moves money between a user's spending wallet and their bank
// balance. Banked money cannot be bet or transferred until withdrawn.
type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// Deposit moves amount from wallet to bank.
func (s *Service) Deposit(uid string, amount int64) error {
	return s.move(uid, amount, "wallet", "bank")
}

// Withdraw moves amount from bank to wallet.
func (s *Service) Withdraw(uid string, amount int64) error {
	return s.move(uid, amount, "bank", "wallet")
}

func (s *Service) move(uid string, amount int64, from, to string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	res, err := tx.Exec(`
	UPDATE wallets SET `+from+` = `+from+` - ?, `+to+` = `+to+` + ?
	WHERE uid=? AND `+from+` >= ?
	`, amount, amount, uid, amount)
	if err != nil {
		tx.Rollback()
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if n == 0 {
		tx.Rollback()
		return ErrInsufficientFunds
	}

	return tx.Commit()
}

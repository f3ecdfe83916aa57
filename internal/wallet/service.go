package wallet

import (
	"database/sql"
	"errors"

	"bj-platform/internal/monitoring"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrUnknownAccount    = errors.New("unknown account")
)

// Service owns the wallets table. Each user row has two balances: the spending
// wallet and the bank. Games and transfers only ever touch the wallet column.
type Service struct {
	db       *sql.DB
	starting int64
}

func New(db *sql.DB, startingBalance int64) *Service {
	return &Service{db: db, starting: startingBalance}
}

func (s *Service) Begin() (*sql.Tx, error) {
	return s.db.Begin()
}

// ensure creates the user's row on first contact, seeded with the starting
// balance. Safe to call repeatedly.
func (s *Service) ensure(tx *sql.Tx, uid string) error {
	_, err := tx.Exec(`
	INSERT INTO wallets(uid, wallet, bank)
	VALUES (?, ?, 0)
	ON CONFLICT(uid) DO NOTHING
	`, uid, s.starting)
	return err
}

// Balance returns the spending-wallet balance, creating the account if needed.
func (s *Service) Balance(uid string) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	if err := s.ensure(tx, uid); err != nil {
		tx.Rollback()
		return 0, err
	}
	var bal int64
	if err := tx.QueryRow(`SELECT wallet FROM wallets WHERE uid=?`, uid).Scan(&bal); err != nil {
		tx.Rollback()
		return 0, err
	}
	return bal, tx.Commit()
}

// Balances returns both the wallet and bank balance.
func (s *Service) Balances(uid string) (wallet, bank int64, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, 0, err
	}
	if err := s.ensure(tx, uid); err != nil {
		tx.Rollback()
		return 0, 0, err
	}
	if err := tx.QueryRow(`SELECT wallet, bank FROM wallets WHERE uid=?`, uid).Scan(&wallet, &bank); err != nil {
		tx.Rollback()
		return 0, 0, err
	}
	return wallet, bank, tx.Commit()
}

// Debit removes amount from the spending wallet, failing if funds are short.
func (s *Service) Debit(tx *sql.Tx, uid string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if err := s.ensure(tx, uid); err != nil {
		return err
	}

	res, err := tx.Exec(`
	UPDATE wallets SET wallet = wallet - ?
	WHERE uid=? AND wallet >= ?
	`, amount, uid, amount)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientFunds
	}

	monitoring.WalletUpdates.Inc()
	return nil
}

// Credit adds amount to the spending wallet.
func (s *Service) Credit(tx *sql.Tx, uid string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if err := s.ensure(tx, uid); err != nil {
		return err
	}

	_, err := tx.Exec(`UPDATE wallets SET wallet = wallet + ? WHERE uid=?`, amount, uid)
	if err != nil {
		return err
	}

	monitoring.WalletUpdates.Inc()
	return nil
}

// WealthEntry is one row of the rich list, ranked by wallet plus bank.
type WealthEntry struct {
	UID    string `json:"uid"`
	Wallet int64  `json:"wallet"`
	Bank   int64  `json:"bank"`
	Total  int64  `json:"total"`
}

// Top returns the n wealthiest users by combined wallet and bank balance.
func (s *Service) Top(n int) ([]WealthEntry, error) {
	rows, err := s.db.Query(`
	SELECT uid, wallet, bank, wallet + bank AS total
	FROM wallets ORDER BY total DESC, uid LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WealthEntry
	for rows.Next() {
		var e WealthEntry
		if err := rows.Scan(&e.UID, &e.Wallet, &e.Bank, &e.Total); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Adjust applies a signed delta to one of the two accounts. Used by the admin
// surface; a negative delta may push the balance below zero on purpose.
func (s *Service) Adjust(uid string, delta int64, account string) error {
	var column string
	switch account {
	case "wallet":
		column = "wallet"
	case "bank":
		column = "bank"
	default:
		return ErrUnknownAccount
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := s.ensure(tx, uid); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`UPDATE wallets SET `+column+` = `+column+` + ? WHERE uid=?`, delta, uid); err != nil {
		tx.Rollback()
		return err
	}

	monitoring.WalletUpdates.Inc()
	return tx.Commit()
}

package ledger

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Service writes append-only ledger entries. Every balance movement that
// matters for bookkeeping (escrow, payout, vault forfeiture, transfer) gets
// a row here inside the same transaction that moved the money.
type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// Debit records money leaving an account.
func (s *Service) Debit(tx *sql.Tx, account string, amount int64) error {
	return s.record(tx, account, amount, 0)
}

// Credit records money entering an account.
func (s *Service) Credit(tx *sql.Tx, account string, amount int64) error {
	return s.record(tx, account, 0, amount)
}

func (s *Service) record(tx *sql.Tx, account string, debit, credit int64) error {
	ref := uuid.New().String()
	ts := time.Now().Unix()

	_, err := tx.Exec(`
	INSERT INTO ledger(ref,account,debit,credit,ts)
	VALUES (?,?,?,?,?)
	`, ref, account, debit, credit, ts)

	return err
}

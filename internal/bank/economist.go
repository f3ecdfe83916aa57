package bank

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"bj-platform/internal/event"
	"bj-platform/internal/logger"
	"bj-platform/internal/monitoring"
)

type Ledger interface {
	Credit(tx *sql.Tx, account string, amount int64) error
}

// Economist runs the periodic economic cycle: banked money accrues interest
// and a wealth tax on total holdings is collected into the vault. The tax
// comes out of the wallet first, then the bank, so total wealth always
// covers it.
type Economist struct {
	db       *sql.DB
	ledger   Ledger
	bus      *event.Bus
	vault    string
	interest float64
	tax      float64
	interval time.Duration
}

func NewEconomist(db *sql.DB, ledger Ledger, bus *event.Bus, vault string, interest, tax float64, interval time.Duration) *Economist {
	return &Economist{
		db:       db,
		ledger:   ledger,
		bus:      bus,
		vault:    vault,
		interest: interest,
		tax:      tax,
		interval: interval,
	}
}

// CycleResult summarizes one completed cycle; published on the bus.
type CycleResult struct {
	Users        int   `json:"users"`
	InterestPaid int64 `json:"interest_paid"`
	TaxCollected int64 `json:"tax_collected"`
}

// RunCycle applies interest and tax to every account in one transaction.
func (e *Economist) RunCycle() (CycleResult, error) {
	var res CycleResult

	tx, err := e.db.Begin()
	if err != nil {
		return res, err
	}

	type account struct {
		uid          string
		wallet, bank int64
	}
	rows, err := tx.Query(`SELECT uid, wallet, bank FROM wallets`)
	if err != nil {
		tx.Rollback()
		return res, err
	}
	var accounts []account
	for rows.Next() {
		var a account
		if err := rows.Scan(&a.uid, &a.wallet, &a.bank); err != nil {
			rows.Close()
			tx.Rollback()
			return res, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		tx.Rollback()
		return res, err
	}
	rows.Close()

	for _, a := range accounts {
		interest := int64(float64(a.bank) * e.interest)
		tax := int64(float64(a.wallet+a.bank) * e.tax)

		bank := a.bank + interest
		wallet := a.wallet
		if wallet >= tax {
			wallet -= tax
		} else {
			bank -= tax - wallet
			wallet = 0
		}

		if _, err := tx.Exec(`UPDATE wallets SET wallet=?, bank=? WHERE uid=?`, wallet, bank, a.uid); err != nil {
			tx.Rollback()
			return res, err
		}

		res.Users++
		res.InterestPaid += interest
		res.TaxCollected += tax
	}

	if res.TaxCollected > 0 {
		if err := e.ledger.Credit(tx, e.vault, res.TaxCollected); err != nil {
			tx.Rollback()
			return res, err
		}
	}
	if err := tx.Commit(); err != nil {
		return res, err
	}

	monitoring.EconomicCycles.Inc()
	logger.Log.Info("economic cycle complete",
		zap.Int("users", res.Users),
		zap.Int64("interest_paid", res.InterestPaid),
		zap.Int64("tax_collected", res.TaxCollected))

	e.bus.Publish(event.EventEconomicCycle, &res)
	return res, nil
}

func (e *Economist) Start(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := e.RunCycle(); err != nil {
				logger.Log.Error("economic cycle failed", zap.Error(err))
			}
		}
	}
}

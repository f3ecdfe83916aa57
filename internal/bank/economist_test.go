package bank

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "bj-platform/internal/db"
	"bj-platform/internal/event"
	"bj-platform/internal/ledger"
	"bj-platform/internal/logger"
	"bj-platform/internal/wallet"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestRunCycleAppliesInterestAndTax(t *testing.T) {
	dbh, err := dbpkg.Init(filepath.Join(t.TempDir(), "economy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { dbh.Close() })

	w := wallet.New(dbh, 500)
	for _, uid := range []string{"alice", "bob"} {
		_, err := w.Balance(uid)
		require.NoError(t, err)
	}
	// alice: wallet 300, bank 1000. bob: wallet 5, bank 1000.
	require.NoError(t, w.Adjust("alice", -200, "wallet"))
	require.NoError(t, w.Adjust("alice", 1000, "bank"))
	require.NoError(t, w.Adjust("bob", -495, "wallet"))
	require.NoError(t, w.Adjust("bob", 1000, "bank"))

	e := NewEconomist(dbh, ledger.New(dbh), event.NewBus(), "vault", 0.02, 0.01, time.Hour)

	res, err := e.RunCycle()
	require.NoError(t, err)
	assert.Equal(t, 2, res.Users)
	assert.Equal(t, int64(40), res.InterestPaid)
	// alice pays 1% of 1300, bob 1% of 1005 truncated.
	assert.Equal(t, int64(23), res.TaxCollected)

	// alice: interest 20 on the bank, tax 13 out of the wallet.
	wal, bank, err := w.Balances("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(287), wal)
	assert.Equal(t, int64(1020), bank)

	// bob's wallet only covers half the tax; the rest comes from the bank.
	wal, bank, err = w.Balances("bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), wal)
	assert.Equal(t, int64(1015), bank)

	var vault int64
	require.NoError(t, dbh.QueryRow(`
	SELECT COALESCE(SUM(credit),0) FROM ledger WHERE account='vault'
	`).Scan(&vault))
	assert.Equal(t, int64(23), vault)
}

func TestRunCycleOnEmptyTable(t *testing.T) {
	dbh, err := dbpkg.Init(filepath.Join(t.TempDir(), "economy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { dbh.Close() })

	e := NewEconomist(dbh, ledger.New(dbh), event.NewBus(), "vault", 0.02, 0.01, time.Hour)

	res, err := e.RunCycle()
	require.NoError(t, err)
	assert.Equal(t, 0, res.Users)
	assert.Equal(t, int64(0), res.TaxCollected)
}

package bank

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "bj-platform/internal/db"
	"bj-platform/internal/wallet"
)

func newTestBank(t *testing.T) (*Service, *wallet.Service) {
	t.Helper()

	dbh, err := dbpkg.Init(filepath.Join(t.TempDir(), "bank.db"))
	require.NoError(t, err)
	t.Cleanup(func() { dbh.Close() })

	w := wallet.New(dbh, 500)
	_, err = w.Balance("alice")
	require.NoError(t, err)

	return New(dbh), w
}

func TestDepositAndWithdraw(t *testing.T) {
	b, w := newTestBank(t)

	require.NoError(t, b.Deposit("alice", 200))
	wal, bank, err := w.Balances("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(300), wal)
	assert.Equal(t, int64(200), bank)

	require.NoError(t, b.Withdraw("alice", 150))
	wal, bank, _ = w.Balances("alice")
	assert.Equal(t, int64(450), wal)
	assert.Equal(t, int64(50), bank)
}

func TestMoveGuards(t *testing.T) {
	b, w := newTestBank(t)

	assert.ErrorIs(t, b.Deposit("alice", 0), ErrInvalidAmount)
	assert.ErrorIs(t, b.Deposit("alice", 600), ErrInsufficientFunds)
	assert.ErrorIs(t, b.Withdraw("alice", 1), ErrInsufficientFunds)

	wal, bank, _ := w.Balances("alice")
	assert.Equal(t, int64(500), wal)
	assert.Equal(t, int64(0), bank)
}

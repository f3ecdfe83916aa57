package wallet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "bj-platform/internal/db"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	dbh, err := dbpkg.Init(filepath.Join(t.TempDir(), "wallet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { dbh.Close() })

	return New(dbh, 500)
}

func TestBalanceSeedsNewAccounts(t *testing.T) {
	s := newTestService(t)

	bal, err := s.Balance("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(500), bal)

	// The seed happens once.
	bal, err = s.Balance("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(500), bal)
}

func TestDebitGuardsFunds(t *testing.T) {
	s := newTestService(t)

	tx, err := s.Begin()
	require.NoError(t, err)
	assert.ErrorIs(t, s.Debit(tx, "alice", 600), ErrInsufficientFunds)
	assert.ErrorIs(t, s.Debit(tx, "alice", 0), ErrInvalidAmount)
	require.NoError(t, s.Debit(tx, "alice", 200))
	require.NoError(t, tx.Commit())

	bal, _ := s.Balance("alice")
	assert.Equal(t, int64(300), bal)
}

func TestCreditAndRollback(t *testing.T) {
	s := newTestService(t)

	tx, err := s.Begin()
	require.NoError(t, err)
	require.NoError(t, s.Credit(tx, "alice", 100))
	require.NoError(t, tx.Rollback())

	// A rolled-back credit leaves no trace.
	bal, _ := s.Balance("alice")
	assert.Equal(t, int64(500), bal)

	tx, _ = s.Begin()
	require.NoError(t, s.Credit(tx, "alice", 100))
	require.NoError(t, tx.Commit())

	bal, _ = s.Balance("alice")
	assert.Equal(t, int64(600), bal)
}

func TestTopRanksByCombinedWealth(t *testing.T) {
	s := newTestService(t)

	for _, uid := range []string{"alice", "bob", "carol"} {
		_, err := s.Balance(uid)
		require.NoError(t, err)
	}
	// Bank holdings count toward the ranking too.
	require.NoError(t, s.Adjust("bob", 700, "bank"))
	require.NoError(t, s.Adjust("carol", -200, "wallet"))

	top, err := s.Top(2)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "bob", top[0].UID)
	assert.Equal(t, int64(1200), top[0].Total)
	assert.Equal(t, "alice", top[1].UID)
	assert.Equal(t, int64(500), top[1].Total)
}

func TestAdjustTouchesEitherColumn(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.Adjust("alice", 250, "bank"))
	require.NoError(t, s.Adjust("alice", -100, "wallet"))
	assert.ErrorIs(t, s.Adjust("alice", 1, "vault"), ErrUnknownAccount)

	w, b, err := s.Balances("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(400), w)
	assert.Equal(t, int64(250), b)
}

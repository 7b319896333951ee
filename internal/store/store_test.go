package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passbook-dev/passbook/internal/account"
	"github.com/passbook-dev/passbook/internal/credential"
	"github.com/passbook-dev/passbook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedAccounts(t *testing.T) map[string]*account.Account {
	t.Helper()
	hash, err := credential.Hash("pw")
	require.NoError(t, err)

	a := account.New("ACC1", "Ada", model.TypeSavings, hash)
	require.NoError(t, a.Deposit(dec("100.50")))
	require.NoError(t, a.Withdraw(dec("20.25")))
	require.NoError(t, a.DebitTransfer(dec("30"), "ACC2"))

	b := account.New("ACC2", "Grace", model.TypeCurrent, nil)
	require.NoError(t, b.CreditTransfer(dec("30"), "ACC1"))

	return map[string]*account.Account{"ACC1": a, "ACC2": b}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	require.NoError(t, s.Save(seedAccounts(t)))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)

	a := got["ACC1"]
	require.NotNil(t, a)
	assert.True(t, a.Balance().Equal(dec("50.25")), "balance = %s", a.Balance())
	assert.Equal(t, "Ada", a.Details().HolderName)
	assert.Equal(t, model.TypeSavings, a.Details().Type)
	assert.True(t, a.VerifyCredential("pw"))
	assert.False(t, a.VerifyCredential("wrong"))

	log := a.History()
	require.Len(t, log, 3)
	assert.Equal(t, model.KindDeposit, log[0].Kind)
	assert.Equal(t, model.KindTransferOut, log[2].Kind)
	assert.Equal(t, "ACC2", log[2].Counterparty)
	assert.True(t, log[2].BalanceAfter.Equal(dec("50.25")))

	b := got["ACC2"]
	require.NotNil(t, b)
	assert.False(t, b.HasCredential())
	require.Len(t, b.History(), 1)
	assert.Equal(t, model.KindTransferIn, b.History()[0].Kind)
}

func TestLoad_NoPriorState(t *testing.T) {
	s := New(t.TempDir())

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_CorruptAccountsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.csv")
	require.NoError(t, os.WriteFile(path, []byte("not,a,valid\nledger"), 0o644))

	got, err := New(dir).Load()
	require.NoError(t, err, "corrupt state must not surface an error")
	assert.Empty(t, got)
}

func TestLoad_CorruptTransactionsFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Save(seedAccounts(t)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte("garbage"), 0o644))

	// Accounts without their logs would violate the balance-equals-
	// log-sum invariant, so the whole load degrades to empty.
	got, err := s.Load()
	require.NoError(t, err, "corrupt state must not surface an error")
	assert.Empty(t, got)
}

func TestLoad_MissingTransactionsFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Save(seedAccounts(t)))
	require.NoError(t, os.Remove(filepath.Join(dir, "transactions.csv")))

	// Save always writes both files; one missing is corrupt state.
	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave_Overwrites(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Save(seedAccounts(t)))

	solo := account.New("ACC9", "Alan", model.TypeSavings, nil)
	require.NoError(t, s.Save(map[string]*account.Account{"ACC9": solo}))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotNil(t, got["ACC9"])
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, New(dir).Save(seedAccounts(t)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"accounts.csv", "transactions.csv"}, names)
}

func TestSave_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir)
	require.NoError(t, s.Save(map[string]*account.Account{}))

	_, err := os.Stat(filepath.Join(dir, "accounts.csv"))
	require.NoError(t, err)
}

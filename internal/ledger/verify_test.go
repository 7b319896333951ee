package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passbook-dev/passbook/internal/account"
	"github.com/passbook-dev/passbook/internal/model"
)

func tx(kind model.TxKind, amount, after, counterparty string) model.Transaction {
	return model.Transaction{
		Time:         time.Now().UTC(),
		Kind:         kind,
		Amount:       dec(amount),
		BalanceAfter: dec(after),
		Counterparty: counterparty,
	}
}

func fromTxs(number, balance string, txs ...model.Transaction) *account.Account {
	return account.FromSnapshot(account.Snapshot{
		Number:       number,
		HolderName:   "Test",
		Type:         model.TypeSavings,
		Balance:      dec(balance),
		Transactions: txs,
	})
}

func TestCheck_CleanState(t *testing.T) {
	svc, store := openLedger(t)
	src, err := svc.CreateAccount("Ada", model.TypeSavings, dec("100"), "")
	require.NoError(t, err)
	dst, err := svc.CreateAccount("Grace", model.TypeCurrent, decimal.Zero, "")
	require.NoError(t, err)
	require.NoError(t, svc.Transfer(src, dst, dec("25")))

	errs, err := CheckStore(store)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestCheck_EmptyLedger(t *testing.T) {
	assert.Empty(t, Check(map[string]*account.Account{}))
}

func TestCheck_NonPositiveAmount(t *testing.T) {
	acct := fromTxs("ACC1", "0",
		tx(model.KindDeposit, "0", "0", ""),
	)
	errs := Check(map[string]*account.Account{"ACC1": acct})
	require.NotEmpty(t, errs)
	assert.Equal(t, 1, errs[0].Invariant)
}

func TestCheck_BrokenBalanceChain(t *testing.T) {
	acct := fromTxs("ACC1", "70",
		tx(model.KindDeposit, "100", "100", ""),
		tx(model.KindWithdrawal, "30", "80", ""), // should be 70
	)
	errs := Check(map[string]*account.Account{"ACC1": acct})
	require.NotEmpty(t, errs)

	invariants := make(map[int]bool)
	for _, e := range errs {
		invariants[e.Invariant] = true
	}
	assert.True(t, invariants[2], "chain break must be reported")
	assert.True(t, invariants[3], "balance 70 != resynced log total 80")
}

func TestCheck_BalanceMismatch(t *testing.T) {
	acct := fromTxs("ACC1", "999",
		tx(model.KindDeposit, "100", "100", ""),
	)
	errs := Check(map[string]*account.Account{"ACC1": acct})
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Invariant)
	assert.Contains(t, errs[0].Error(), "ACC1")
}

func TestCheck_CounterpartyRules(t *testing.T) {
	acct := fromTxs("ACC1", "150",
		tx(model.KindDeposit, "100", "100", "ACC9"), // deposit must not carry one
		tx(model.KindTransferIn, "50", "150", ""),   // transfer must carry one
	)
	errs := Check(map[string]*account.Account{"ACC1": acct})
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, 4, e.Invariant)
	}
}

func TestCheck_NegativeBalance(t *testing.T) {
	acct := fromTxs("ACC1", "-10",
		tx(model.KindWithdrawal, "10", "-10", ""),
	)
	errs := Check(map[string]*account.Account{"ACC1": acct})

	invariants := make(map[int]bool)
	for _, e := range errs {
		invariants[e.Invariant] = true
	}
	assert.True(t, invariants[5])
}

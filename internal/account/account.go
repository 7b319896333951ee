// Package account implements a single passbook account: a balance plus
// an append-only transaction log. The balance and log are private;
// every mutation goes through a method that validates, adjusts the
// balance, and appends a record in one step, so the two can never
// disagree.
package account

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/passbook-dev/passbook/internal/credential"
	"github.com/passbook-dev/passbook/internal/model"
)

// Account is a holder's named balance and its transaction log.
type Account struct {
	number         string
	holderName     string
	accountType    model.AccountType
	balance        decimal.Decimal
	log            []model.Transaction
	credentialHash []byte
}

// New creates an account with a zero balance and an empty log.
// credentialHash may be nil for an uncredentialed account.
func New(number, holderName string, accountType model.AccountType, credentialHash []byte) *Account {
	return &Account{
		number:         number,
		holderName:     holderName,
		accountType:    accountType,
		credentialHash: credentialHash,
	}
}

// Number returns the account's immutable identifier.
func (a *Account) Number() string {
	return a.number
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// HasCredential reports whether read access requires a secret.
func (a *Account) HasCredential() bool {
	return len(a.credentialHash) > 0
}

// VerifyCredential reports whether secret grants access.
func (a *Account) VerifyCredential(secret string) bool {
	return credential.Verify(a.credentialHash, secret)
}

// Deposit credits amount and records a deposit transaction.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit of %s: %w", amount, model.ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	a.record(model.KindDeposit, amount, "")
	return nil
}

// Withdraw debits amount and records a withdrawal transaction.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("withdrawal of %s: %w", amount, model.ErrInvalidAmount)
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("withdrawal of %s from balance %s: %w", amount, a.balance, model.ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	a.record(model.KindWithdrawal, amount, "")
	return nil
}

// DebitTransfer is the source side of a transfer: it debits amount and
// records a transfer_out carrying the target's number. The ledger is
// responsible for pairing it with a CreditTransfer on the target.
func (a *Account) DebitTransfer(amount decimal.Decimal, toNumber string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("transfer of %s: %w", amount, model.ErrInvalidAmount)
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("transfer of %s from balance %s: %w", amount, a.balance, model.ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	a.record(model.KindTransferOut, amount, toNumber)
	return nil
}

// CreditTransfer is the target side of a transfer: it credits amount
// and records a transfer_in carrying the source's number.
func (a *Account) CreditTransfer(amount decimal.Decimal, fromNumber string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("transfer of %s: %w", amount, model.ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	a.record(model.KindTransferIn, amount, fromNumber)
	return nil
}

func (a *Account) record(kind model.TxKind, amount decimal.Decimal, counterparty string) {
	a.log = append(a.log, model.Transaction{
		Time:         time.Now().UTC(),
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: a.balance,
		Counterparty: counterparty,
	})
}

// Details returns a snapshot of the account's identifying state.
func (a *Account) Details() model.Details {
	return model.Details{
		HolderName: a.holderName,
		Number:     a.number,
		Type:       a.accountType,
		Balance:    a.balance,
	}
}

// History returns a copy of the transaction log in insertion order.
func (a *Account) History() []model.Transaction {
	out := make([]model.Transaction, len(a.log))
	copy(out, a.log)
	return out
}

// Statistics recomputes summary figures from the log. Transfers in
// count as deposits, transfers out as withdrawals.
func (a *Account) Statistics() model.Statistics {
	stats := model.Statistics{TotalTransactions: len(a.log)}

	var deposits, withdrawals int64
	for _, tx := range a.log {
		if tx.Kind.Inbound() {
			stats.TotalDeposits = stats.TotalDeposits.Add(tx.Amount)
			deposits++
		} else {
			stats.TotalWithdrawals = stats.TotalWithdrawals.Add(tx.Amount)
			withdrawals++
		}
	}
	if deposits > 0 {
		stats.AverageDeposit = stats.TotalDeposits.Div(decimal.NewFromInt(deposits))
	}
	if withdrawals > 0 {
		stats.AverageWithdrawal = stats.TotalWithdrawals.Div(decimal.NewFromInt(withdrawals))
	}
	return stats
}

// Clone returns a deep copy. The ledger mutates clones and commits
// them only after persistence succeeds.
func (a *Account) Clone() *Account {
	cp := *a
	cp.log = make([]model.Transaction, len(a.log))
	copy(cp.log, a.log)
	if a.credentialHash != nil {
		cp.credentialHash = append([]byte(nil), a.credentialHash...)
	}
	return &cp
}

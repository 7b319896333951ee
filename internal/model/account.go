package model

import "github.com/shopspring/decimal"

// AccountType classifies an account.
type AccountType string

const (
	TypeSavings AccountType = "savings"
	TypeCurrent AccountType = "current"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == TypeSavings || t == TypeCurrent
}

// Details is a read-only snapshot of an account's identifying state.
type Details struct {
	HolderName string
	Number     string
	Type       AccountType
	Balance    decimal.Decimal
}

// Statistics summarizes an account's transaction log. Averages are
// zero when the respective set of transactions is empty.
type Statistics struct {
	TotalDeposits     decimal.Decimal
	TotalWithdrawals  decimal.Decimal
	AverageDeposit    decimal.Decimal
	AverageWithdrawal decimal.Decimal
	TotalTransactions int
}

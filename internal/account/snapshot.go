package account

import (
	"github.com/shopspring/decimal"

	"github.com/passbook-dev/passbook/internal/model"
)

// Snapshot is the plain-data form of an account, used by the storage
// layer. It carries no behavior and is safe to serialize.
type Snapshot struct {
	Number         string
	HolderName     string
	Type           model.AccountType
	Balance        decimal.Decimal
	CredentialHash []byte
	Transactions   []model.Transaction
}

// Snapshot exports the account's full state.
func (a *Account) Snapshot() Snapshot {
	return Snapshot{
		Number:         a.number,
		HolderName:     a.holderName,
		Type:           a.accountType,
		Balance:        a.balance,
		CredentialHash: append([]byte(nil), a.credentialHash...),
		Transactions:   a.History(),
	}
}

// FromSnapshot rebuilds an account from stored state.
func FromSnapshot(s Snapshot) *Account {
	a := New(s.Number, s.HolderName, s.Type, s.CredentialHash)
	a.balance = s.Balance
	a.log = make([]model.Transaction, len(s.Transactions))
	copy(a.log, s.Transactions)
	return a
}

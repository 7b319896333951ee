package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxKind identifies what a transaction did to the balance.
type TxKind string

const (
	KindDeposit     TxKind = "deposit"
	KindWithdrawal  TxKind = "withdrawal"
	KindTransferOut TxKind = "transfer_out"
	KindTransferIn  TxKind = "transfer_in"
)

// Inbound reports whether the kind credits the account.
func (k TxKind) Inbound() bool {
	return k == KindDeposit || k == KindTransferIn
}

// Transfer reports whether the kind is one side of a transfer.
func (k TxKind) Transfer() bool {
	return k == KindTransferOut || k == KindTransferIn
}

// Transaction is one immutable row in an account's log.
type Transaction struct {
	Time         time.Time
	Kind         TxKind
	Amount       decimal.Decimal // always positive
	BalanceAfter decimal.Decimal
	Counterparty string // other account's number, transfer kinds only
}

package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/passbook-dev/passbook/internal/account"
	"github.com/passbook-dev/passbook/internal/model"
)

// AccountsHeader is the CSV header for accounts.csv.
const AccountsHeader = "account_number,holder_name,account_type,balance,credential_hash"

// TransactionsHeader is the CSV header for transactions.csv.
const TransactionsHeader = "account_number,timestamp,kind,amount,balance_after,counterparty"

const (
	acctNumFields = 5
	colAcctNumber = 0
	colHolder     = 1
	colType       = 2
	colBalance    = 3
	colCredential = 4
)

const (
	txNumFields    = 6
	colTxNumber    = 0
	colTxTime      = 1
	colTxKind      = 2
	colTxAmount    = 3
	colTxAfter     = 4
	colTxCounterpt = 5
)

const timeFormat = time.RFC3339Nano

// AccountRow is a Snapshot minus its transactions; rows in
// transactions.csv are joined back on by account number.
type AccountRow struct {
	Number         string
	HolderName     string
	Type           model.AccountType
	Balance        decimal.Decimal
	CredentialHash []byte
}

// ReadAccounts reads accounts.csv.
func ReadAccounts(r io.Reader) ([]AccountRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = acctNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var rows []AccountRow
	for i, rec := range records[1:] {
		row, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteAccounts writes accounts.csv, header included.
func WriteAccounts(w io.Writer, snaps []account.Snapshot) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(AccountsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, snap := range snaps {
		if err := cw.Write(MarshalAccount(snap)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadTransactions reads transactions.csv, returning logs keyed by
// account number in file order.
func ReadTransactions(r io.Reader) (map[string][]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = txNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return map[string][]model.Transaction{}, nil
	}

	logs := make(map[string][]model.Transaction)
	for i, rec := range records[1:] {
		number, tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		logs[number] = append(logs[number], tx)
	}
	return logs, nil
}

// WriteTransactions writes transactions.csv for the given snapshots,
// preserving each account's log order.
func WriteTransactions(w io.Writer, snaps []account.Snapshot) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, snap := range snaps {
		for i, tx := range snap.Transactions {
			if err := cw.Write(MarshalTransaction(snap.Number, tx)); err != nil {
				return fmt.Errorf("writing %s row %d: %w", snap.Number, i, err)
			}
		}
	}
	return cw.Error()
}

// MarshalAccount converts a snapshot to an accounts.csv row.
func MarshalAccount(snap account.Snapshot) []string {
	row := make([]string, acctNumFields)
	row[colAcctNumber] = snap.Number
	row[colHolder] = snap.HolderName
	row[colType] = string(snap.Type)
	row[colBalance] = snap.Balance.String()
	row[colCredential] = string(snap.CredentialHash)
	return row
}

// UnmarshalAccount converts an accounts.csv row back.
func UnmarshalAccount(record []string) (AccountRow, error) {
	if len(record) != acctNumFields {
		return AccountRow{}, fmt.Errorf("expected %d fields, got %d", acctNumFields, len(record))
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return AccountRow{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	at := model.AccountType(record[colType])
	if !at.Valid() {
		return AccountRow{}, fmt.Errorf("unknown account type %q", record[colType])
	}

	var hash []byte
	if record[colCredential] != "" {
		hash = []byte(record[colCredential])
	}

	return AccountRow{
		Number:         record[colAcctNumber],
		HolderName:     record[colHolder],
		Type:           at,
		Balance:        balance,
		CredentialHash: hash,
	}, nil
}

// MarshalTransaction converts one log entry to a transactions.csv row.
func MarshalTransaction(number string, tx model.Transaction) []string {
	row := make([]string, txNumFields)
	row[colTxNumber] = number
	row[colTxTime] = tx.Time.Format(timeFormat)
	row[colTxKind] = string(tx.Kind)
	row[colTxAmount] = tx.Amount.String()
	row[colTxAfter] = tx.BalanceAfter.String()
	row[colTxCounterpt] = tx.Counterparty
	return row
}

// UnmarshalTransaction converts a transactions.csv row back.
func UnmarshalTransaction(record []string) (string, model.Transaction, error) {
	if len(record) != txNumFields {
		return "", model.Transaction{}, fmt.Errorf("expected %d fields, got %d", txNumFields, len(record))
	}

	ts, err := time.Parse(timeFormat, record[colTxTime])
	if err != nil {
		return "", model.Transaction{}, fmt.Errorf("parsing timestamp %q: %w", record[colTxTime], err)
	}
	amount, err := decimal.NewFromString(record[colTxAmount])
	if err != nil {
		return "", model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colTxAmount], err)
	}
	after, err := decimal.NewFromString(record[colTxAfter])
	if err != nil {
		return "", model.Transaction{}, fmt.Errorf("parsing balance_after %q: %w", record[colTxAfter], err)
	}

	return record[colTxNumber], model.Transaction{
		Time:         ts,
		Kind:         model.TxKind(record[colTxKind]),
		Amount:       amount,
		BalanceAfter: after,
		Counterparty: record[colTxCounterpt],
	}, nil
}

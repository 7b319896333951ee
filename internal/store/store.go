// Package store persists ledger state as two CSV files in a data
// directory: accounts.csv (one row per account) and transactions.csv
// (one row per log entry, joined on account number). Saves go through
// temp files renamed into place, so a crash while writing leaves the
// previous state intact.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/passbook-dev/passbook/internal/account"
	"github.com/passbook-dev/passbook/internal/model"
)

const (
	accountsFile     = "accounts.csv"
	transactionsFile = "transactions.csv"
)

// FileStore reads and writes ledger state under a directory.
type FileStore struct {
	dir string
}

// New creates a FileStore rooted at dir.
func New(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the data directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Load reads the ledger state. Missing or unreadable state yields an
// empty map rather than an error; a fresh ledger starts from nothing.
// The two files stand or fall together: accounts without their logs
// would break the balance-equals-log-sum invariant, so a broken
// transactions.csv empties the whole load, not just the logs.
func (s *FileStore) Load() (map[string]*account.Account, error) {
	accounts := make(map[string]*account.Account)

	af, err := os.Open(filepath.Join(s.dir, accountsFile))
	if err != nil {
		return accounts, nil
	}
	defer af.Close()

	rows, err := ReadAccounts(af)
	if err != nil {
		return accounts, nil
	}

	txLogs, err := s.loadTransactions()
	if err != nil {
		return accounts, nil
	}

	for _, row := range rows {
		accounts[row.Number] = account.FromSnapshot(account.Snapshot{
			Number:         row.Number,
			HolderName:     row.HolderName,
			Type:           row.Type,
			Balance:        row.Balance,
			CredentialHash: row.CredentialHash,
			Transactions:   txLogs[row.Number],
		})
	}
	return accounts, nil
}

// loadTransactions reads transactions.csv. Save always writes the file
// alongside accounts.csv, so a missing or unparsable log counts as
// corrupt state.
func (s *FileStore) loadTransactions() (map[string][]model.Transaction, error) {
	tf, err := os.Open(filepath.Join(s.dir, transactionsFile))
	if err != nil {
		return nil, err
	}
	defer tf.Close()

	return ReadTransactions(tf)
}

// Save writes the full ledger state. Both files are written to temp
// files first and only then renamed into place, so a crash while
// writing leaves the previous state intact. The two renames are each
// atomic but not jointly: a crash between them can pair new balances
// with old logs. That window is rename-sized, and verify (Check)
// detects the mismatch on the next load.
func (s *FileStore) Save(accounts map[string]*account.Account) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	snaps := make([]account.Snapshot, 0, len(accounts))
	for _, acct := range accounts {
		snaps = append(snaps, acct.Snapshot())
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Number < snaps[j].Number })

	acctTmp, err := s.writeTemp(accountsFile, func(f *os.File) error {
		return WriteAccounts(f, snaps)
	})
	if err != nil {
		return err
	}
	txTmp, err := s.writeTemp(transactionsFile, func(f *os.File) error {
		return WriteTransactions(f, snaps)
	})
	if err != nil {
		os.Remove(acctTmp)
		return err
	}

	if err := os.Rename(acctTmp, filepath.Join(s.dir, accountsFile)); err != nil {
		os.Remove(acctTmp)
		os.Remove(txTmp)
		return fmt.Errorf("replacing %s: %w", accountsFile, err)
	}
	if err := os.Rename(txTmp, filepath.Join(s.dir, transactionsFile)); err != nil {
		os.Remove(txTmp)
		return fmt.Errorf("replacing %s: %w", transactionsFile, err)
	}
	return nil
}

// writeTemp writes name's content to a temp file and returns its path.
func (s *FileStore) writeTemp(name string, write func(*os.File) error) (string, error) {
	tmp := filepath.Join(s.dir, name) + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", tmp, err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	return tmp, nil
}

// Package memory provides an in-memory ledger store for tests and
// ephemeral runs. State is copied on the way in and out so callers
// never alias the store's own map.
package memory

import "github.com/passbook-dev/passbook/internal/account"

// Store keeps ledger state in memory.
type Store struct {
	accounts map[string]*account.Account
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{accounts: make(map[string]*account.Account)}
}

// Load returns a deep copy of the stored state.
func (s *Store) Load() (map[string]*account.Account, error) {
	out := make(map[string]*account.Account, len(s.accounts))
	for n, a := range s.accounts {
		out[n] = a.Clone()
	}
	return out, nil
}

// Save replaces the stored state with a deep copy of accounts.
func (s *Store) Save(accounts map[string]*account.Account) error {
	next := make(map[string]*account.Account, len(accounts))
	for n, a := range accounts {
		next[n] = a.Clone()
	}
	s.accounts = next
	return nil
}

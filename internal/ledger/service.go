// Package ledger is the account registry and transfer engine. It owns
// the number-to-account mapping, orchestrates both sides of a
// transfer, and persists through an injected Store after every
// mutation.
//
// The ledger is single-actor: operations are synchronous and
// run-to-completion, with no internal locking. A multi-actor variant
// would need ledger-wide mutual exclusion around every operation.
package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/passbook-dev/passbook/internal/account"
	"github.com/passbook-dev/passbook/internal/credential"
	"github.com/passbook-dev/passbook/internal/id"
	"github.com/passbook-dev/passbook/internal/model"
)

// Store persists ledger state. Load is called once at construction and
// returns an empty map when no usable prior state exists. Save is
// called synchronously after every successful mutation.
type Store interface {
	Load() (map[string]*account.Account, error)
	Save(accounts map[string]*account.Account) error
}

// Service is the ledger. Construct with Open.
type Service struct {
	store    Store
	accounts map[string]*account.Account
}

// Open loads prior state from store and returns a ready ledger.
func Open(store Store) (*Service, error) {
	accounts, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	if accounts == nil {
		accounts = make(map[string]*account.Account)
	}
	return &Service{store: store, accounts: accounts}, nil
}

// CreateAccount registers a new account and returns its number. A
// non-zero initial balance is recorded as a deposit transaction. A
// non-empty secret is stored as a bcrypt hash. The account exists only
// once the store has accepted it.
func (s *Service) CreateAccount(holderName string, accountType model.AccountType, initial decimal.Decimal, secret string) (string, error) {
	if holderName == "" {
		return "", fmt.Errorf("holder name is required: %w", model.ErrInvalidInput)
	}
	if !accountType.Valid() {
		return "", fmt.Errorf("account type %q: %w", accountType, model.ErrInvalidInput)
	}
	if initial.IsNegative() {
		return "", fmt.Errorf("initial balance %s: %w", initial, model.ErrInvalidInput)
	}

	hash, err := credential.Hash(secret)
	if err != nil {
		return "", err
	}

	number := s.freshNumber()
	acct := account.New(number, holderName, accountType, hash)
	if initial.IsPositive() {
		if err := acct.Deposit(initial); err != nil {
			return "", err
		}
	}

	if err := s.persistWith(acct); err != nil {
		return "", err
	}
	s.accounts[number] = acct
	return number, nil
}

// freshNumber generates an account number not present in the registry.
// Collisions are already next to impossible; the loop makes them so.
func (s *Service) freshNumber() string {
	for {
		n := id.NewAccountNumber()
		if _, taken := s.accounts[n]; !taken {
			return n
		}
	}
}

// GetAccount resolves number, enforcing the account's credential if it
// has one. This is the only credentialed path into the ledger. The
// returned account is a detached copy: read from it freely, but
// mutations only count when made through the ledger.
func (s *Service) GetAccount(number, secret string) (*account.Account, error) {
	acct, err := s.resolve(number)
	if err != nil {
		return nil, err
	}
	if !acct.VerifyCredential(secret) {
		return nil, fmt.Errorf("account %s: %w", number, model.ErrUnauthorized)
	}
	return acct.Clone(), nil
}

func (s *Service) resolve(number string) (*account.Account, error) {
	acct, ok := s.accounts[number]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", number, model.ErrNotFound)
	}
	return acct, nil
}

// Deposit credits amount to the account and persists.
func (s *Service) Deposit(number string, amount decimal.Decimal) error {
	acct, err := s.resolve(number)
	if err != nil {
		return err
	}
	clone := acct.Clone()
	if err := clone.Deposit(amount); err != nil {
		return err
	}
	if err := s.persistWith(clone); err != nil {
		return err
	}
	s.accounts[number] = clone
	return nil
}

// Withdraw debits amount from the account and persists.
func (s *Service) Withdraw(number string, amount decimal.Decimal) error {
	acct, err := s.resolve(number)
	if err != nil {
		return err
	}
	clone := acct.Clone()
	if err := clone.Withdraw(amount); err != nil {
		return err
	}
	if err := s.persistWith(clone); err != nil {
		return err
	}
	s.accounts[number] = clone
	return nil
}

// Transfer moves amount between two accounts. The debit and credit are
// applied to clones and committed only after the store accepts the new
// state, so either both transaction records exist or neither does.
// Transfers from an account to itself are rejected.
func (s *Service) Transfer(fromNumber, toNumber string, amount decimal.Decimal) error {
	if fromNumber == toNumber {
		return fmt.Errorf("transfer %s -> %s: %w", fromNumber, toNumber, model.ErrSameAccount)
	}

	from, err := s.resolve(fromNumber)
	if err != nil {
		return err
	}
	to, err := s.resolve(toNumber)
	if err != nil {
		return err
	}

	fromClone := from.Clone()
	toClone := to.Clone()
	if err := fromClone.DebitTransfer(amount, toNumber); err != nil {
		return err
	}
	if err := toClone.CreditTransfer(amount, fromNumber); err != nil {
		return err
	}

	if err := s.persistWith(fromClone, toClone); err != nil {
		return err
	}
	s.accounts[fromNumber] = fromClone
	s.accounts[toNumber] = toClone
	return nil
}

// AccountDetails returns the account's details snapshot.
func (s *Service) AccountDetails(number string) (model.Details, error) {
	acct, err := s.resolve(number)
	if err != nil {
		return model.Details{}, err
	}
	return acct.Details(), nil
}

// TransactionHistory returns the account's log in insertion order.
func (s *Service) TransactionHistory(number string) ([]model.Transaction, error) {
	acct, err := s.resolve(number)
	if err != nil {
		return nil, err
	}
	return acct.History(), nil
}

// Statistics returns summary figures computed from the account's log.
func (s *Service) Statistics(number string) (model.Statistics, error) {
	acct, err := s.resolve(number)
	if err != nil {
		return model.Statistics{}, err
	}
	return acct.Statistics(), nil
}

// Numbers returns all account numbers, sorted.
func (s *Service) Numbers() []string {
	out := make([]string, 0, len(s.accounts))
	for n := range s.accounts {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// persistWith saves the current registry with the given accounts
// substituted in. The registry itself is not touched; callers commit
// the substitutes only after persistWith succeeds.
func (s *Service) persistWith(updated ...*account.Account) error {
	next := make(map[string]*account.Account, len(s.accounts)+len(updated))
	for n, a := range s.accounts {
		next[n] = a
	}
	for _, a := range updated {
		next[a.Number()] = a
	}
	if err := s.store.Save(next); err != nil {
		return fmt.Errorf("%w: %v", model.ErrPersistence, err)
	}
	return nil
}

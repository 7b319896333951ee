package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/passbook-dev/passbook/internal/account"
)

// ValidationError describes a single invariant violation found in
// stored ledger state.
type ValidationError struct {
	Invariant   int
	Number      string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Number, e.Description)
}

// Check enforces the ledger's structural invariants on a set of
// accounts:
//
//  1. every transaction amount is strictly positive;
//  2. each BalanceAfter equals the previous one adjusted by the
//     transaction, starting from zero;
//  3. the account balance equals the final BalanceAfter;
//  4. transfer records carry a counterparty, others do not;
//  5. no BalanceAfter is negative.
func Check(accounts map[string]*account.Account) []ValidationError {
	var errs []ValidationError

	numbers := make([]string, 0, len(accounts))
	for n := range accounts {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)

	for _, number := range numbers {
		acct := accounts[number]
		running := decimal.Zero

		for i, tx := range acct.History() {
			// Invariant 1: positive amounts.
			if !tx.Amount.IsPositive() {
				errs = append(errs, ValidationError{
					Invariant:   1,
					Number:      number,
					Description: fmt.Sprintf("transaction %d has non-positive amount %s", i, tx.Amount),
				})
			}

			// Invariant 2: BalanceAfter chain.
			if tx.Kind.Inbound() {
				running = running.Add(tx.Amount)
			} else {
				running = running.Sub(tx.Amount)
			}
			if !tx.BalanceAfter.Equal(running) {
				errs = append(errs, ValidationError{
					Invariant:   2,
					Number:      number,
					Description: fmt.Sprintf("transaction %d records balance %s, expected %s", i, tx.BalanceAfter, running),
				})
				// Resync so one break does not cascade.
				running = tx.BalanceAfter
			}

			// Invariant 4: counterparty only on transfers.
			hasCounterparty := tx.Counterparty != ""
			if tx.Kind.Transfer() != hasCounterparty {
				errs = append(errs, ValidationError{
					Invariant:   4,
					Number:      number,
					Description: fmt.Sprintf("transaction %d (%s) counterparty mismatch", i, tx.Kind),
				})
			}

			// Invariant 5: never negative.
			if tx.BalanceAfter.IsNegative() {
				errs = append(errs, ValidationError{
					Invariant:   5,
					Number:      number,
					Description: fmt.Sprintf("transaction %d leaves negative balance %s", i, tx.BalanceAfter),
				})
			}
		}

		// Invariant 3: balance matches the log.
		if !acct.Balance().Equal(running) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Number:      number,
				Description: fmt.Sprintf("balance %s does not match log total %s", acct.Balance(), running),
			})
		}
	}

	return errs
}

// CheckStore loads a store and verifies it.
func CheckStore(store Store) ([]ValidationError, error) {
	accounts, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading ledger for verification: %w", err)
	}
	return Check(accounts), nil
}

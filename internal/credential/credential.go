// Package credential handles account secrets. Secrets are stored only
// as bcrypt hashes; the rest of the system sees an opaque byte slice
// and an equality check.
package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of secret. An empty secret hashes to
// nil, meaning no credential is set.
func Hash(secret string) ([]byte, error) {
	if secret == "" {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing credential: %w", err)
	}
	return hash, nil
}

// Verify reports whether secret matches hash. A nil/empty hash means
// the account is not credentialed and any secret matches.
func Verify(hash []byte, secret string) bool {
	if len(hash) == 0 {
		return true
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(secret)) == nil
}

package id

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prefix is the leading tag on every account number.
const Prefix = "ACC"

const (
	timestampFormat = "20060102150405"
	entropyLen      = 8
)

// NewAccountNumber returns an account number like "ACC20250114093055D41D8CD9".
// The timestamp keeps numbers human-orderable; the UUID-derived suffix
// makes same-second creations distinct.
func NewAccountNumber() string {
	ts := time.Now().UTC().Format(timestampFormat)
	entropy := strings.ToUpper(uuid.NewString()[:entropyLen])
	return fmt.Sprintf("%s%s%s", Prefix, ts, entropy)
}

// Valid reports whether s has the shape of an account number.
func Valid(s string) bool {
	if !strings.HasPrefix(s, Prefix) {
		return false
	}
	rest := s[len(Prefix):]
	if len(rest) != len(timestampFormat)+entropyLen {
		return false
	}
	if _, err := time.Parse(timestampFormat, rest[:len(timestampFormat)]); err != nil {
		return false
	}
	for _, r := range rest[len(timestampFormat):] {
		isDigit := r >= '0' && r <= '9'
		isHex := r >= 'A' && r <= 'F'
		if !isDigit && !isHex {
			return false
		}
	}
	return true
}

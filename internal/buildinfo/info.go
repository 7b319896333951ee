// Package buildinfo carries version metadata injected at build time.
package buildinfo

// Set via -ldflags "-X github.com/passbook-dev/passbook/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

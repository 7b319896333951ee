package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("/var/lib/passbook")
	cfg.Git.AutoCommit = true
	cfg.Git.AuthorName = "Ada"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Ledger.DataDir, got.Ledger.DataDir)
	assert.Equal(t, cfg.Defaults.AccountType, got.Defaults.AccountType)
	assert.True(t, got.Git.AutoCommit)
	assert.Equal(t, "Ada", got.Git.AuthorName)
	assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
}

func TestDefaults(t *testing.T) {
	cfg := Default(".")

	assert.Equal(t, ".", cfg.Ledger.DataDir)
	assert.Equal(t, "savings", cfg.Defaults.AccountType)
	assert.False(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Passbook", cfg.Git.AuthorName)
	assert.Equal(t, "passbook@localhost", cfg.Git.AuthorEmail)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvDataDir, "/override/data")

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("/configured/data")))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/override/data", got.Ledger.DataDir)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("data")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "data_dir: data")
	assert.Contains(t, contents, "account_type: savings")
	assert.Contains(t, contents, "auto_commit: false")
}

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/passbook-dev/passbook/internal/config"
	"github.com/passbook-dev/passbook/internal/gitops"
	"github.com/passbook-dev/passbook/internal/ledger"
	"github.com/passbook-dev/passbook/internal/store"
)

// env is the resolved working state shared by all commands: the
// passbook root, its config, the file store, and an opened ledger.
type env struct {
	root   string
	cfg    *config.Config
	store  *store.FileStore
	ledger *ledger.Service
}

// openEnv resolves dir, loads .env and passbook.yaml (falling back to
// defaults when absent), and opens the ledger from the data dir.
func openEnv(dir string) (*env, error) {
	_ = godotenv.Load()

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default(".")
		cfg.ApplyEnv()
	} else if err != nil {
		return nil, err
	}

	dataDir := cfg.Ledger.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(root, dataDir)
	}

	st := store.New(dataDir)
	svc, err := ledger.Open(st)
	if err != nil {
		return nil, err
	}

	return &env{root: root, cfg: cfg, store: st, ledger: svc}, nil
}

// autoCommit versions the data directory after a successful mutation
// when git.auto_commit is enabled. Failures warn rather than fail the
// operation: the ledger state itself is already persisted.
func (e *env) autoCommit(message string) {
	if !e.cfg.Git.AutoCommit || !gitops.IsRepo(e.root) {
		return
	}
	if _, err := gitops.CommitAll(e.root, message, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail); err != nil {
		fmt.Fprintf(os.Stderr, "warning: git commit failed: %v\n", err)
	}
}

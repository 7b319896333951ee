package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/account"
	"github.com/passbook-dev/passbook/internal/config"
	"github.com/passbook-dev/passbook/internal/gitops"
	"github.com/passbook-dev/passbook/internal/store"
)

func newInitCommand() *cobra.Command {
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new passbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, useGit)
		},
	}

	cmd.Flags().BoolVar(&useGit, "git", false, "version the data directory with git")

	return cmd
}

func runInit(dir string, useGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default(".")
	cfg.Git.AutoCommit = useGit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Empty but loadable state files.
	if err := store.New(dir).Save(map[string]*account.Account{}); err != nil {
		return fmt.Errorf("writing initial state: %w", err)
	}

	gitignore := "*.tmp\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if useGit {
		if err := gitops.Init(dir); err != nil {
			return err
		}
		hash, err := gitops.CommitAll(dir, "init: new passbook", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized passbook at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Printf("Initialized passbook at %s\n", dir)
	return nil
}

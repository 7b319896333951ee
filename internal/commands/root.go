package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "passbook",
		Short:   "Personal banking ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newOpenCommand())
	rootCmd.AddCommand(newDepositCommand())
	rootCmd.AddCommand(newWithdrawCommand())
	rootCmd.AddCommand(newTransferCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newVerifyCommand())

	return rootCmd
}

package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/model"
)

func newOpenCommand() *cobra.Command {
	var holder string
	var accountType string
	var balance string
	var password string
	var dir string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}

			at := accountType
			if at == "" {
				at = e.cfg.Defaults.AccountType
			}

			initial := decimal.Zero
			if balance != "" {
				initial, err = decimal.NewFromString(balance)
				if err != nil {
					return fmt.Errorf("parsing balance %q: %w", balance, err)
				}
			}

			number, err := e.ledger.CreateAccount(holder, model.AccountType(at), initial, password)
			if err != nil {
				return err
			}

			e.autoCommit("open " + number)
			fmt.Printf("Account created: %s\n", number)
			return nil
		},
	}

	cmd.Flags().StringVar(&holder, "holder", "", "account holder's name (required)")
	_ = cmd.MarkFlagRequired("holder")
	cmd.Flags().StringVar(&accountType, "type", "", "account type (savings or current)")
	cmd.Flags().StringVar(&balance, "balance", "", "initial balance")
	cmd.Flags().StringVar(&password, "password", "", "protect the account with a password")
	cmd.Flags().StringVar(&dir, "dir", ".", "passbook directory")

	return cmd
}

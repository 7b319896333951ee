package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/account"
)

func newShowCommand() *cobra.Command {
	var password string
	var dir string

	cmd := &cobra.Command{
		Use:   "show <account>",
		Short: "Show account details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := authenticate(dir, args[0], password)
			if err != nil {
				return err
			}

			details := acct.Details()
			fmt.Printf("Holder Name:     %s\n", details.HolderName)
			fmt.Printf("Account Number:  %s\n", details.Number)
			fmt.Printf("Account Type:    %s\n", details.Type)
			fmt.Printf("Current Balance: $%s\n", details.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password, if set")
	cmd.Flags().StringVar(&dir, "dir", ".", "passbook directory")
	return cmd
}

func newHistoryCommand() *cobra.Command {
	var password string
	var dir string

	cmd := &cobra.Command{
		Use:   "history <account>",
		Short: "Show transaction history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := authenticate(dir, args[0], password)
			if err != nil {
				return err
			}

			log := acct.History()
			if len(log) == 0 {
				fmt.Println("No transactions found.")
				return nil
			}

			fmt.Printf("%-20s %-14s %12s %14s  %s\n", "Date", "Type", "Amount", "Balance After", "Counterparty")
			for _, tx := range log {
				fmt.Printf("%-20s %-14s %12s %14s  %s\n",
					tx.Time.Format("2006-01-02 15:04:05"),
					tx.Kind,
					"$"+tx.Amount.StringFixed(2),
					"$"+tx.BalanceAfter.StringFixed(2),
					tx.Counterparty,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password, if set")
	cmd.Flags().StringVar(&dir, "dir", ".", "passbook directory")
	return cmd
}

func newStatsCommand() *cobra.Command {
	var password string
	var dir string

	cmd := &cobra.Command{
		Use:   "stats <account>",
		Short: "Show account summary statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, err := authenticate(dir, args[0], password)
			if err != nil {
				return err
			}

			stats := acct.Statistics()
			fmt.Printf("Total Deposits:     $%s\n", stats.TotalDeposits.StringFixed(2))
			fmt.Printf("Total Withdrawals:  $%s\n", stats.TotalWithdrawals.StringFixed(2))
			fmt.Printf("Average Deposit:    $%s\n", stats.AverageDeposit.StringFixed(2))
			fmt.Printf("Average Withdrawal: $%s\n", stats.AverageWithdrawal.StringFixed(2))
			fmt.Printf("Total Transactions: %d\n", stats.TotalTransactions)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "account password, if set")
	cmd.Flags().StringVar(&dir, "dir", ".", "passbook directory")
	return cmd
}

// authenticate opens the ledger and resolves the account through the
// credentialed path.
func authenticate(dir, number, password string) (*account.Account, error) {
	e, err := openEnv(dir)
	if err != nil {
		return nil, err
	}
	return e.ledger.GetAccount(number, password)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}

			numbers := e.ledger.Numbers()
			if len(numbers) == 0 {
				fmt.Println("No accounts found.")
				return nil
			}

			fmt.Printf("%-28s %-20s %-8s %14s\n", "Account", "Holder", "Type", "Balance")
			for _, number := range numbers {
				details, err := e.ledger.AccountDetails(number)
				if err != nil {
					return err
				}
				fmt.Printf("%-28s %-20s %-8s %14s\n",
					details.Number,
					details.HolderName,
					details.Type,
					"$"+details.Balance.StringFixed(2),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "passbook directory")
	return cmd
}

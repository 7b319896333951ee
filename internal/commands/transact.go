package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newDepositCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "deposit <account> <amount>",
		Short: "Deposit money into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, amount, err := openWithAmount(dir, args[1])
			if err != nil {
				return err
			}
			if err := e.ledger.Deposit(args[0], amount); err != nil {
				return err
			}
			e.autoCommit(fmt.Sprintf("deposit %s %s", args[0], amount.StringFixed(2)))
			return printBalance(e, args[0])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "passbook directory")
	return cmd
}

func newWithdrawCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "withdraw <account> <amount>",
		Short: "Withdraw money from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, amount, err := openWithAmount(dir, args[1])
			if err != nil {
				return err
			}
			if err := e.ledger.Withdraw(args[0], amount); err != nil {
				return err
			}
			e.autoCommit(fmt.Sprintf("withdraw %s %s", args[0], amount.StringFixed(2)))
			return printBalance(e, args[0])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "passbook directory")
	return cmd
}

func newTransferCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "transfer <from> <to> <amount>",
		Short: "Transfer money between accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, amount, err := openWithAmount(dir, args[2])
			if err != nil {
				return err
			}
			if err := e.ledger.Transfer(args[0], args[1], amount); err != nil {
				return err
			}
			e.autoCommit(fmt.Sprintf("transfer %s -> %s %s", args[0], args[1], amount.StringFixed(2)))
			return printBalance(e, args[0])
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "passbook directory")
	return cmd
}

func openWithAmount(dir, raw string) (*env, decimal.Decimal, error) {
	e, err := openEnv(dir)
	if err != nil {
		return nil, decimal.Zero, err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	return e, amount, nil
}

func printBalance(e *env, number string) error {
	details, err := e.ledger.AccountDetails(number)
	if err != nil {
		return err
	}
	fmt.Printf("New balance: $%s\n", details.Balance.StringFixed(2))
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/ledger"
)

func newVerifyCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check stored ledger state against its invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}

			errs, err := ledger.CheckStore(e.store)
			if err != nil {
				return err
			}
			if len(errs) == 0 {
				fmt.Println("OK: ledger state is consistent")
				return nil
			}

			for _, ve := range errs {
				fmt.Println(ve.Error())
			}
			return fmt.Errorf("%d invariant violation(s) found", len(errs))
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "passbook directory")
	return cmd
}

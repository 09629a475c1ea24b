package main

import (
	"errors"
	"fmt"

	"acquiring/internal/services/feestructure"
	"acquiring/internal/validation"

	"github.com/spf13/cobra"
)

var errInvalid = errors.New("fee structure is invalid")

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a fee structure file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadStructure(args[0])
			if err != nil {
				return err
			}

			res := validation.ValidateFeeStructure(in.Draft())
			out := cmd.OutOrStdout()
			for _, w := range feestructure.TierWarnings(in) {
				fmt.Fprintf(out, "%s: warning: %s\n", args[0], w)
			}
			if res.Valid {
				fmt.Fprintf(out, "%s: valid\n", args[0])
				return nil
			}

			fmt.Fprintf(out, "%s: %d error(s)\n", args[0], len(res.Errors))
			for _, msg := range res.Errors {
				fmt.Fprintf(out, "  - %s\n", msg)
			}
			return errInvalid
		},
	}
}

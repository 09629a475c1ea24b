package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"acquiring/internal/services/fee"
	"acquiring/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func quoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote [file]",
		Short: "Compute the fee of one transaction under a fee structure file",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuote,
	}

	cmd.Flags().String("amount", "", "Transaction amount (required)")
	cmd.Flags().String("volume", "0", "Cumulative volume used for tier lookup")
	cmd.Flags().String("as-of", "", "Evaluation time in RFC 3339 (default now)")
	cmd.Flags().String("currency", "", "Transaction currency (default the structure's)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runQuote(cmd *cobra.Command, args []string) error {
	in, err := loadStructure(args[0])
	if err != nil {
		return err
	}
	if res := validation.ValidateFeeStructure(in.Draft()); !res.Valid {
		return fmt.Errorf("%w: %s", errInvalid, strings.Join(res.Errors, "; "))
	}

	rawAmount, _ := cmd.Flags().GetString("amount")
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("invalid --amount %q: %w", rawAmount, err)
	}

	rawVolume, _ := cmd.Flags().GetString("volume")
	volume, err := decimal.NewFromString(rawVolume)
	if err != nil {
		return fmt.Errorf("invalid --volume %q: %w", rawVolume, err)
	}

	asOf := time.Now().UTC()
	if rawAsOf, _ := cmd.Flags().GetString("as-of"); rawAsOf != "" {
		if asOf, err = time.Parse(time.RFC3339, rawAsOf); err != nil {
			return fmt.Errorf("invalid --as-of %q: %w", rawAsOf, err)
		}
	}

	currency, _ := cmd.Flags().GetString("currency")

	result, err := fee.NewCalculator().Compute(in.Draft().Normalized(), fee.Input{
		Amount:           amount,
		Currency:         strings.ToUpper(currency),
		CumulativeVolume: volume,
		AsOf:             asOf,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SchwenderOne/roscher4gpt5/internal/calculator"
	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

func settleCmd() *cobra.Command {
	var (
		date   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Record the suggested settlement",
		Long: `Record the transfer that clears the current balance as a settlement
transaction. Nothing is recorded when nobody owes anything.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := openHousehold(cmd.Context())
			if err != nil {
				return err
			}
			defer h.Close()

			on := h.today
			if date != "" {
				if on, err = models.ParseDate(date); err != nil {
					return err
				}
			}

			txs, err := h.ledger(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			s := calculator.SuggestSettlement(h.members, calculator.ComputeNetBalances(h.members, txs))
			printSuggestion(out, s)
			if s == nil || dryRun {
				return nil
			}

			record := calculator.BuildSettlementRecord(s.From, s.To, s.Amount, on)
			if err := h.store.CreateTransaction(cmd.Context(), &record); err != nil {
				return fmt.Errorf("failed to record settlement: %w", err)
			}
			fmt.Fprintf(out, "Recorded settlement %s on %s.\n", record.ID, on)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "settlement date as YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only print the suggestion")
	return cmd
}

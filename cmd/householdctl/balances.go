package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SchwenderOne/roscher4gpt5/internal/calculator"
	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage"
)

// ledger loads every transaction.
func (h *household) ledger(cmd *cobra.Command) ([]models.Transaction, error) {
	txs, err := h.store.ListTransactions(cmd.Context(), storage.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, *t)
	}
	return out, nil
}

func balancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show what each member has paid, owes and is owed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := openHousehold(cmd.Context())
			if err != nil {
				return err
			}
			defer h.Close()

			txs, err := h.ledger(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			summary := calculator.Summarize(h.members, txs)
			printBalances(out, summary)

			net := calculator.ComputeNetBalances(h.members, txs)
			fmt.Fprintln(out)
			printSuggestion(out, calculator.SuggestSettlement(h.members, net))
			return nil
		},
	}
}

func printBalances(out io.Writer, summary []calculator.MemberBalance) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
		headerStyle.Render("Member"),
		headerStyle.Render("Paid"),
		headerStyle.Render("Share"),
		headerStyle.Render("Net"))
	for _, b := range summary {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			b.MemberName,
			b.TotalPaid.StringFixed(calculator.CentPlaces),
			b.TotalOwed.StringFixed(calculator.CentPlaces),
			b.NetBalance.StringFixed(calculator.CentPlaces))
	}
}

func printSuggestion(out io.Writer, s *models.Settlement) {
	if s == nil {
		fmt.Fprintln(out, dimStyle.Render("All settled."))
		return
	}
	fmt.Fprintf(out, "%s pays %s %s\n", s.From, s.To, s.Amount.StringFixed(calculator.CentPlaces))
}

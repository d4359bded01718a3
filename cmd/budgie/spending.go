package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budgielabs/budgie/internal/cli"
)

func spendingCmd() *cobra.Command {
	var periodFlag string

	cmd := &cobra.Command{
		Use:   "spending",
		Short: "Show spending by category for a period",
		Long:  `Display expense totals per category for the period, largest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := initClient()
			if err != nil {
				return err
			}

			period, err := periodFromFlag(periodFlag)
			if err != nil {
				return err
			}

			entries, err := client.SpendingByCategory(ctx, period)
			if err != nil {
				return fmt.Errorf("failed to get spending: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No spending recorded for the %s period.", period)))
				return nil
			}

			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].TotalSpent.GreaterThan(entries[j].TotalSpent)
			})

			total := decimal.Zero
			for _, e := range entries {
				total = total.Add(e.TotalSpent)
			}

			currency := defaultCurrency(ctx, client)

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Spending (%s)", period)))

			// Create table writer
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			// Header
			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Category"),
				headerStyle.Render("Spent"),
				headerStyle.Render("Share"),
				headerStyle.Render("Transactions"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 14),
				strings.Repeat("-", 7),
				strings.Repeat("-", 12))

			for _, e := range entries {
				share := 0.0
				if total.IsPositive() {
					share, _ = e.TotalSpent.Div(total).Float64()
				}
				fmt.Fprintf(w, "%s\t%s\t%.1f%%\t%d\n",
					e.CategoryName,
					cli.Money(e.TotalSpent, currency),
					share*100,
					e.TransactionCount)
			}

			fmt.Fprintf(w, "\t\t\t\n")
			fmt.Fprintf(w, "%s\t%s\t\t\n",
				headerStyle.Render("Total"),
				cli.Money(total, currency))

			return nil
		},
	}

	cmd.Flags().StringVar(&periodFlag, "period", "", "Budget period (weekly, monthly, yearly; default: monthly)")

	return cmd
}

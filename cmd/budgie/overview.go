package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/budgielabs/budgie/internal/cli"
)

func overviewCmd() *cobra.Command {
	var periodFlag string

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show budget progress for a period",
		Long: `Display each budgeted category with its budget, what has been spent
against it this period, and how much remains.`,
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

			entries, err := client.BudgetOverview(ctx, period)
			if err != nil {
				return fmt.Errorf("failed to get budget overview: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No budgets for the %s period. Use 'budgie budgets set' to create one.", period)))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Budget overview (%s)", period)))

			// Create table writer
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			// Header
			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("Category"),
				headerStyle.Render("Budget"),
				headerStyle.Render("Spent"),
				headerStyle.Render("Remaining"),
				headerStyle.Render("Used"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 14),
				strings.Repeat("-", 14),
				strings.Repeat("-", 14),
				strings.Repeat("-", 10))

			for _, e := range entries {
				used := fmt.Sprintf("%.1f%%", e.PercentageUsed)
				switch {
				case e.IsOverBudget:
					used = cli.ErrorStyle.Render(used + " OVER")
				case e.PercentageUsed >= 80:
					used = cli.WarningStyle.Render(used)
				}

				remaining := cli.Money(e.RemainingAmount, e.Currency)
				if e.IsOverBudget {
					remaining = cli.ExpenseStyle.Render(remaining)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.CategoryName,
					cli.Money(e.BudgetAmount, e.Currency),
					cli.Money(e.SpentAmount, e.Currency),
					remaining,
					used)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&periodFlag, "period", "", "Budget period (weekly, monthly, yearly; default: monthly)")

	return cmd
}

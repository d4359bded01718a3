package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/budgielabs/budgie/internal/cli"
	"github.com/budgielabs/budgie/internal/model"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage budgets",
		Long:  `List, set, and delete per-category spending budgets.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	var periodFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budgets",
		Long:  `Display budgets, optionally filtered to a single period.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := initClient()
			if err != nil {
				return err
			}

			var budgets []model.Budget
			if periodFlag != "" {
				period, err := model.ParsePeriod(periodFlag)
				if err != nil {
					return err
				}
				budgets, err = client.BudgetsByPeriod(ctx, period)
				if err != nil {
					return fmt.Errorf("failed to get budgets: %w", err)
				}
			} else {
				budgets, err = client.Budgets(ctx)
				if err != nil {
					return fmt.Errorf("failed to get budgets: %w", err)
				}
			}

			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets found. Use 'budgie budgets set' to create one."))
				return nil
			}

			// Create table writer
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			// Header
			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Category"),
				headerStyle.Render("Period"),
				headerStyle.Render("Amount"),
				headerStyle.Render("ID"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 8),
				strings.Repeat("-", 14),
				strings.Repeat("-", 36))

			for _, b := range budgets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					b.CategoryName,
					b.Period,
					cli.Money(b.Amount, b.Currency),
					cli.SubtleStyle.Render(b.ID))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&periodFlag, "period", "", "Filter by period (weekly, monthly, yearly)")

	return cmd
}

func setBudgetCmd() *cobra.Command {
	var (
		categoryFlag string
		amountFlag   string
		periodFlag   string
		currencyFlag string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a budget",
		Long: `Set a spending budget for an expense category and period. The
category may be given by ID or by name.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := initClient()
			if err != nil {
				return err
			}

			cat, err := resolveCategory(ctx, client, model.TypeExpense, categoryFlag)
			if err != nil {
				return err
			}

			period, err := periodFromFlag(periodFlag)
			if err != nil {
				return err
			}

			currency := currencyFlag
			if currency == "" {
				currency = defaultCurrency(ctx, client)
			}

			draft := model.BudgetDraft{
				CategoryID: cat.ID,
				Amount:     amountFlag,
				Currency:   currency,
				Period:     period,
			}
			req, err := draft.Validate()
			if err != nil {
				return err
			}

			budget, err := client.CreateBudget(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create budget: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Set %s budget of %s for %s", budget.Period, cli.Money(budget.Amount, budget.Currency), cat.Name)))
			fmt.Printf("  ID: %s\n", budget.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Expense category ID or name (required)")
	cmd.Flags().StringVar(&amountFlag, "amount", "", "Budget amount (required)")
	cmd.Flags().StringVar(&periodFlag, "period", "", "Budget period (weekly, monthly, yearly; default: monthly)")
	cmd.Flags().StringVar(&currencyFlag, "currency", "", "Currency code (default: service default)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func deleteBudgetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Long:  `Delete a budget by its ID. The category and its transactions are untouched.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			client, err := initClient()
			if err != nil {
				return err
			}

			if !confirmAction(fmt.Sprintf("Are you sure you want to delete budget %s?", id), force) {
				fmt.Println("Deletion cancelled.")
				return nil
			}

			if err := client.DeleteBudget(ctx, id); err != nil {
				return fmt.Errorf("failed to delete budget: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted budget %s", id)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}

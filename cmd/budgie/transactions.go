package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/budgielabs/budgie/internal/cli"
	"github.com/budgielabs/budgie/internal/model"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Manage transactions",
		Long:  `List, record, and delete income and expense transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		typeFlag string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `Display transactions newest first, optionally filtered by type.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := initClient()
			if err != nil {
				return err
			}

			var transactions []model.Transaction
			if typeFlag != "" {
				t, err := model.ParseTransactionType(typeFlag)
				if err != nil {
					return err
				}
				transactions, err = client.TransactionsByType(ctx, t)
				if err != nil {
					return fmt.Errorf("failed to get transactions: %w", err)
				}
			} else {
				transactions, err = client.Transactions(ctx)
				if err != nil {
					return fmt.Errorf("failed to get transactions: %w", err)
				}
			}

			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'budgie transactions add' to record one."))
				return nil
			}

			// Newest first
			sort.SliceStable(transactions, func(i, j int) bool {
				if !transactions[i].Date.Time().Equal(transactions[j].Date.Time()) {
					return transactions[i].Date.Time().After(transactions[j].Date.Time())
				}
				return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
			})
			if limit > 0 && len(transactions) > limit {
				transactions = transactions[:limit]
			}

			// Create table writer
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			// Header
			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("Date"),
				headerStyle.Render("Category"),
				headerStyle.Render("Description"),
				headerStyle.Render("Amount"),
				headerStyle.Render("ID"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 16),
				strings.Repeat("-", 28),
				strings.Repeat("-", 14),
				strings.Repeat("-", 36))

			for _, tx := range transactions {
				desc := tx.Description
				if desc == "" {
					desc = cli.SubtleStyle.Render("(no description)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					tx.Date.String(),
					tx.CategoryName,
					desc,
					cli.FormatMoney(tx.Amount, tx.Currency, tx.Type == model.TypeIncome),
					cli.SubtleStyle.Render(tx.ID))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "Filter by type (income, expense)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many transactions (0 = all)")

	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		amountFlag      string
		categoryFlag    string
		typeFlag        string
		dateFlag        string
		descriptionFlag string
		currencyFlag    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record an income or expense transaction. The category may be given
by ID or by name; the date defaults to today and the currency to the
service default.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, err := initClient()
			if err != nil {
				return err
			}

			t, err := model.ParseTransactionType(typeFlag)
			if err != nil {
				return err
			}

			cat, err := resolveCategory(ctx, client, t, categoryFlag)
			if err != nil {
				return err
			}

			date := model.Today()
			if dateFlag != "" {
				date, err = model.ParseDate(dateFlag)
				if err != nil {
					return err
				}
			}

			currency := currencyFlag
			if currency == "" {
				currency = defaultCurrency(ctx, client)
			}

			draft := model.TransactionDraft{
				Type:        t,
				Amount:      amountFlag,
				CategoryID:  cat.ID,
				Description: descriptionFlag,
				Currency:    currency,
				Date:        date,
			}
			req, err := draft.Validate()
			if err != nil {
				return err
			}

			tx, err := client.CreateTransaction(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Recorded %s of %s (%s)", tx.Type, cli.Money(tx.Amount, tx.Currency), cat.Name)))
			fmt.Printf("  ID: %s\n", tx.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&amountFlag, "amount", "", "Transaction amount (required)")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "Category ID or name (required)")
	cmd.Flags().StringVar(&typeFlag, "type", "expense", "Transaction type (income, expense)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Transaction date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&descriptionFlag, "description", "", "Free-form description")
	cmd.Flags().StringVar(&currencyFlag, "currency", "", "Currency code (default: service default)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction by its ID. Budget progress and spending reflect the removal.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			client, err := initClient()
			if err != nil {
				return err
			}

			if !confirmAction(fmt.Sprintf("Are you sure you want to delete transaction %s?", id), force) {
				fmt.Println("Deletion cancelled.")
				return nil
			}

			if err := client.DeleteTransaction(ctx, id); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted transaction %s", id)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}

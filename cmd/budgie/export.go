package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgielabs/budgie/internal/cli"
	"github.com/budgielabs/budgie/internal/config"
	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/sheets"
)

func exportCmd() *cobra.Command {
	var periodFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a budget report to Google Sheets",
		Long: `Write a report spreadsheet with the summary totals, every transaction,
and the budget overview for the selected period.

Authentication uses a service account key file or an OAuth2 refresh
token, configured through GOOGLE_SHEETS_* environment variables or the
sheets section of the config file.`,
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

			sheetsCfg, err := config.LoadSheetsConfig()
			if err != nil {
				return err
			}

			transactions, err := client.Transactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}

			overview, err := client.BudgetOverview(ctx, period)
			if err != nil {
				return fmt.Errorf("failed to get budget overview: %w", err)
			}

			report := &sheets.Report{
				GeneratedAt:  time.Now(),
				Currency:     defaultCurrency(ctx, client),
				Period:       period,
				Summary:      model.Summarize(transactions),
				Transactions: transactions,
				Overview:     overview,
			}

			writer, err := sheets.NewWriter(ctx, *sheetsCfg, slog.Default())
			if err != nil {
				return fmt.Errorf("failed to create sheets writer: %w", err)
			}

			if err := writer.Write(ctx, report); err != nil {
				return fmt.Errorf("failed to export report: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions and %d budget rows", len(transactions), len(overview))))
			return nil
		},
	}

	cmd.Flags().StringVar(&periodFlag, "period", "", "Budget period for the overview sheet (weekly, monthly, yearly; default: monthly)")

	return cmd
}

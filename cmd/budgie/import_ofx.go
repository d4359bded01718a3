package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budgielabs/budgie/internal/cli"
	"github.com/budgielabs/budgie/internal/model"
	"github.com/budgielabs/budgie/internal/ofx"
	"github.com/budgielabs/budgie/internal/storage"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your
bank. Statement lines are pushed to the budget service as transactions,
debits as expenses and credits as income. A local ledger remembers what
was already pushed, so re-running an import skips lines it has seen.

Examples:
  # Import a single file
  budgie import-ofx ~/Downloads/checking_jan_2026.qfx

  # Import a bank's whole export, filing debits under Groceries
  budgie import-ofx ~/Downloads/*.qfx --expense-category Groceries

  # Preview without pushing anything
  budgie import-ofx statement.ofx --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().String("expense-category", "", "Category (ID or name) for debit lines")
	cmd.Flags().String("income-category", "", "Category (ID or name) for credit lines")
	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without pushing")
	cmd.Flags().BoolP("verbose", "v", false, "Show detailed statement data")

	return cmd
}

// sourcedLine pairs a statement line with the file it came from, for the
// import ledger's bookkeeping.
type sourcedLine struct {
	file string
	line ofx.StatementLine
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	expenseCategory, _ := cmd.Flags().GetString("expense-category")
	incomeCategory, _ := cmd.Flags().GetString("income-category")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("🦜 Importing OFX files...",
		"file_count", len(allFiles),
		"dry_run", dryRun)

	ctx := cmd.Context()
	parser := ofx.NewParser()

	// Collect lines across files, deduplicating within the run
	var lines []sourcedLine
	seen := make(map[string]bool)
	fileResults := make(map[string]int)

	for _, filePath := range allFiles {
		slog.Info("Processing file", "file", filepath.Base(filePath))

		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file",
				"file", filePath,
				"error", err)
			continue
		}

		parsed, err := parser.ParseFile(ctx, f)
		f.Close()

		if err != nil {
			slog.Error("Failed to parse OFX file",
				"file", filePath,
				"error", err)
			continue
		}

		if len(parsed) == 0 {
			slog.Warn("No transactions found in file",
				"file", filepath.Base(filePath))
			continue
		}

		addedCount := 0
		for _, line := range parsed {
			hash := line.Hash()
			if !seen[hash] {
				seen[hash] = true
				lines = append(lines, sourcedLine{file: filePath, line: line})
				addedCount++
			}
		}

		fileResults[filepath.Base(filePath)] = addedCount
		slog.Info("Processed file",
			"file", filepath.Base(filePath),
			"lines_found", len(parsed),
			"added", addedCount,
			"duplicates", len(parsed)-addedCount)
	}

	if len(lines) == 0 {
		slog.Warn("No transactions found in any file")
		return nil
	}

	// Show summary
	fmt.Println("\n📁 File import summary:")
	for file, count := range fileResults {
		fmt.Printf("  - %s: %d lines\n", file, count)
	}

	statementLines := make([]ofx.StatementLine, len(lines))
	for i, sl := range lines {
		statementLines[i] = sl.line
	}
	summarizeStatement(statementLines, verbose)

	if dryRun {
		slog.Info("🔍 Dry run complete - nothing pushed")
		return nil
	}

	client, err := initClient()
	if err != nil {
		return err
	}

	ledger, err := initLedger(ctx)
	if err != nil {
		return err
	}
	defer ledger.Close()

	// Resolve target categories for the line types actually present
	flagByType := map[model.TransactionType]string{
		model.TypeExpense: expenseCategory,
		model.TypeIncome:  incomeCategory,
	}
	categoryByType := make(map[model.TransactionType]model.Category)
	for _, sl := range lines {
		if _, ok := categoryByType[sl.line.Type]; ok {
			continue
		}
		idOrName := flagByType[sl.line.Type]
		if idOrName == "" {
			return fmt.Errorf("statement contains %s lines; pass --%s-category", sl.line.Type, sl.line.Type)
		}
		cat, err := resolveCategory(ctx, client, sl.line.Type, idOrName)
		if err != nil {
			return err
		}
		categoryByType[sl.line.Type] = cat
	}

	fallbackCurrency := defaultCurrency(ctx, client)

	// Skip lines the ledger has already pushed
	var pending []sourcedLine
	alreadyImported := 0
	for _, sl := range lines {
		wasSeen, err := ledger.Seen(ctx, sl.line.Hash())
		if err != nil {
			return fmt.Errorf("failed to check import ledger: %w", err)
		}
		if wasSeen {
			alreadyImported++
			continue
		}
		pending = append(pending, sl)
	}

	if len(pending) == 0 {
		fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Nothing to do: all %d lines were imported previously.", len(lines))))
		return nil
	}

	bar := progressbar.NewOptions(len(pending),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Pushing transactions...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	pushed := 0
	skippedInvalid := 0
	for _, sl := range pending {
		draft := sl.line.Draft(categoryByType[sl.line.Type].ID)
		if draft.Currency == "" {
			draft.Currency = fallbackCurrency
		}

		req, err := draft.Validate()
		if err != nil {
			slog.Warn("Skipping invalid statement line",
				"description", sl.line.Description,
				"error", err)
			skippedInvalid++
			_ = bar.Add(1)
			continue
		}

		tx, err := client.CreateTransaction(ctx, req)
		if err != nil {
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("failed to push %q: %w", sl.line.Description, err)
		}

		if err := ledger.Record(ctx, storage.ImportRecord{
			Hash:          sl.line.Hash(),
			SourceFile:    sl.file,
			TransactionID: tx.ID,
			Description:   sl.line.Description,
		}); err != nil {
			slog.Warn("Failed to record import", "error", err)
		}

		pushed++
		_ = bar.Add(1)
	}

	message := fmt.Sprintf("Imported %d transactions", pushed)
	if alreadyImported > 0 {
		message += fmt.Sprintf(", skipped %d already imported", alreadyImported)
	}
	if skippedInvalid > 0 {
		message += fmt.Sprintf(", skipped %d invalid", skippedInvalid)
	}
	fmt.Println(cli.FormatSuccess(message))

	return nil
}

func summarizeStatement(lines []ofx.StatementLine, verbose bool) {
	var oldest, newest model.Date
	accounts := make(map[string]int)
	incomeTotal := decimal.Zero
	expenseTotal := decimal.Zero
	incomeCount := 0

	for i, line := range lines {
		if i == 0 || line.Posted.Time().Before(oldest.Time()) {
			oldest = line.Posted
		}
		if i == 0 || line.Posted.Time().After(newest.Time()) {
			newest = line.Posted
		}
		accounts[line.AccountID]++
		if line.Type == model.TypeIncome {
			incomeTotal = incomeTotal.Add(line.Amount)
			incomeCount++
		} else {
			expenseTotal = expenseTotal.Add(line.Amount)
		}
	}

	slog.Info("✅ Parsed statement lines",
		"lines", len(lines),
		"accounts", len(accounts),
		"income", incomeCount,
		"expenses", len(lines)-incomeCount)

	fmt.Printf("\n📅 Date range: %s to %s\n", oldest, newest)
	fmt.Printf("💰 Income total: %s  Expense total: %s\n",
		incomeTotal.StringFixed(2),
		expenseTotal.StringFixed(2))

	fmt.Println("\n🏦 Accounts found:")
	for acct, count := range accounts {
		fmt.Printf("  - %s (%d lines)\n", acct, count)
	}

	fmt.Println("\n📝 Sample lines (first 5):")
	for i, line := range lines {
		if i >= 5 {
			break
		}
		fmt.Printf("  %s | %s | %s\n",
			line.Posted,
			cli.SignedMoney(line.Amount, line.Currency, line.Type == model.TypeIncome),
			line.Description)
		if verbose {
			fmt.Printf("    Account: %s  FITID: %s\n", line.AccountID, line.FITID)
		}
	}
}

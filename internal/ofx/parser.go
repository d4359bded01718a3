// Package ofx parses bank OFX/QFX exports into statement lines ready to be
// pushed to the budget service.
package ofx

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/budgielabs/budgie/internal/model"
)

// StatementLine is one parsed statement transaction. The amount is always
// positive; the sign of the original amount decides the type (debits become
// expenses, credits become income). Currency comes from the statement's
// CURDEF and may be empty when the file omits it.
type StatementLine struct {
	FITID       string
	AccountID   string
	Description string
	Currency    string
	Type        model.TransactionType
	Amount      decimal.Decimal
	Posted      model.Date
}

// Hash returns a stable content hash for deduplication. It covers account,
// date, amount and description but not the FITID, so re-exports that
// renumber their transactions still deduplicate.
func (l StatementLine) Hash() string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s",
		l.AccountID,
		l.Posted.String(),
		l.Amount.StringFixed(2),
		l.Description)
	return hex.EncodeToString(h.Sum(nil))
}

// Draft converts the line into a transaction form targeting the given
// category.
func (l StatementLine) Draft(categoryID string) model.TransactionDraft {
	return model.TransactionDraft{
		Type:        l.Type,
		Amount:      l.Amount.String(),
		CategoryID:  categoryID,
		Description: l.Description,
		Currency:    l.Currency,
		Date:        l.Posted,
	}
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	// Trim any leading whitespace or blank lines before the header
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, func(match string) string {
		return strings.ToUpper(match)
	})

	// Fix missing closing angle brackets in SGML-style OFX files
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns its statement lines.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]StatementLine, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	processedContent := p.preprocessOFX(string(content))

	resp, err := ofxgo.ParseResponse(strings.NewReader(processedContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var lines []StatementLine
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			accountID := string(stmt.BankAcctFrom.AcctID)
			currency := stmt.CurDef.String()
			for _, ofxTx := range stmt.BankTranList.Transactions {
				if line, ok := p.convertTransaction(ofxTx, accountID, currency); ok {
					lines = append(lines, line)
				}
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			accountID := string(stmt.CCAcctFrom.AcctID)
			currency := stmt.CurDef.String()
			for _, ofxTx := range stmt.BankTranList.Transactions {
				if line, ok := p.convertTransaction(ofxTx, accountID, currency); ok {
					lines = append(lines, line)
				}
			}
		}
	}

	slog.Info("Parsed OFX file",
		"lines", len(lines),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return lines, nil
}

// convertTransaction maps one OFX transaction to a statement line. Debits
// (negative amounts) become expenses, credits become income. Zero-amount
// lines are skipped; the service rejects them.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction, accountID, currency string) (StatementLine, bool) {
	amount := decimal.NewFromBigRat(&ofxTx.TrnAmt.Rat, 2)
	if amount.IsZero() {
		slog.Debug("Skipping zero-amount statement line",
			"fitid", string(ofxTx.FiTID),
			"account", accountID)
		return StatementLine{}, false
	}

	txType := model.TypeIncome
	if amount.Sign() < 0 {
		txType = model.TypeExpense
	}

	return StatementLine{
		FITID:       string(ofxTx.FiTID),
		AccountID:   accountID,
		Description: p.extractDescription(ofxTx),
		Currency:    currency,
		Type:        txType,
		Amount:      amount.Abs(),
		Posted:      model.DateOf(ofxTx.DtPosted.Time),
	}, true
}

// extractDescription tries to get a clean merchant description from OFX
// data.
func (p *Parser) extractDescription(tx ofxgo.Transaction) string {
	// Prefer PAYEE if available (cleaner merchant name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := string(tx.Name)

	// Use MEMO field if NAME is generic
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}

	name = strings.TrimSpace(name)

	// Remove common processor prefixes
	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Clean up date patterns like "MM/DD" at the beginning
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

// isGenericDescription checks if a transaction name is too generic.
func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"PURCHASE",
		"PAYMENT",
		"POS TRANSACTION",
		"CARD PURCHASE",
	}

	upperName := strings.ToUpper(name)
	for _, g := range generic {
		if upperName == g {
			return true
		}
	}
	return false
}

// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/budgielabs/budgie/internal/common"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#3B82F6") // Blue
	// IncomeColor marks income amounts.
	IncomeColor = lipgloss.Color("#10B981") // Green
	// ExpenseColor marks expense amounts.
	ExpenseColor = lipgloss.Color("#EF4444") // Red
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#10B981")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#EF4444")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// IncomeStyle formats income amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// ExpenseStyle formats expense amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠"
	BudgieIcon  = "🦜"
	ChartIcon   = "📊"
	MoneyIcon   = "💰"
)

// Money renders an amount with two decimals and its currency code.
func Money(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + currency
}

// SignedMoney renders an amount with an explicit sign, positive for income
// and negative for expenses.
func SignedMoney(amount decimal.Decimal, currency string, income bool) string {
	if income {
		return "+" + Money(amount, currency)
	}
	return "-" + Money(amount, currency)
}

// FormatMoney styles an amount by direction: green income, red expenses.
func FormatMoney(amount decimal.Decimal, currency string, income bool) string {
	if income {
		return IncomeStyle.Render(SignedMoney(amount, currency, true))
	}
	return ExpenseStyle.Render(SignedMoney(amount, currency, false))
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatError renders a failure for the terminal. Transient failures are
// marked so the user knows a plain retry may succeed.
func FormatError(err error) string {
	rendered := ErrorStyle.Render(ErrorIcon + " " + err.Error())
	if common.Classify(err) == common.SeverityRetriable {
		rendered += SubtleStyle.Render(" (temporary, retry may succeed)")
	}
	return rendered
}

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(BudgieIcon + " " + title)
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}

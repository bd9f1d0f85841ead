package output

import (
	"fmt"

	"github.com/policyworth/pwgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a report result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.ReportResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil when
// the name is unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return ConsoleFormatter{}
	case "csv":
		return CSVFormatter{}
	case "json":
		return JSONFormatter{}
	default:
		return nil
	}
}

// FormatCurrency formats a decimal as a dollar amount.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal rate as a percentage.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatCount formats an integer count.
func FormatCount(n int) string {
	return fmt.Sprintf("%d", n)
}

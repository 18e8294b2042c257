package fieldbook

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount reads a numeric cell. Thousand separators ("12,500.00")
// are stripped; the decimal point is a dot.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(s, ",", "")

	return decimal.NewFromString(clean)
}

package output

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// formatRate renders a rate with one decimal place when it is not a whole
// percentage, e.g. 0.009 -> "0.9%", 0.124 -> "12.4%", 0.1 -> "10%".
func formatRate(rate decimal.Decimal) string {
	pct := rate.Mul(decimal.NewFromInt(100))
	if pct.Equal(pct.Round(0)) {
		return pct.Round(0).String() + "%"
	}
	return pct.Round(1).String() + "%"
}

// formatDueDate renders a due date as "April 15, 2025"
func formatDueDate(t time.Time) string { return t.Format("January 2, 2006") }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

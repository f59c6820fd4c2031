package decimal

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// leadingNumber matches the longest numeric prefix of an already-filtered string,
// so "12.5.3" parses as 12.5 rather than failing outright.
var leadingNumber = regexp.MustCompile(`^-?(?:\d+(?:\.\d*)?|\.\d+)`)

// FormatCurrency renders an amount as US dollars with thousands separators and the
// given number of fractional digits: 0 for whole-dollar display, 2 for cents.
// Digits come from the decimal itself, so any magnitude formats exactly.
func FormatCurrency(m Money, fractionDigits int) string {
	if fractionDigits < 0 {
		fractionDigits = 0
	}
	rounded := m.Decimal.Round(int32(fractionDigits))
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(int32(fractionDigits)), ".")
	body := groupThousands(whole)
	if frac != "" {
		body += "." + frac
	}
	if rounded.IsNegative() {
		return "-$" + body
	}
	return "$" + body
}

// groupThousands inserts separators into a run of digits. Values that fit in
// an int64 go through the locale printer.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return message.NewPrinter(language.AmericanEnglish).Sprintf("%d", n)
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPercent renders a rate such as 0.22 as a whole-number percentage ("22%").
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(hundred).Round(0).String() + "%"
}

// ParseCurrency turns user-entered text such as "$12,500.75" into an amount.
// Everything except digits, '.' and '-' is discarded. Text that still does not
// read as a number yields zero; it never fails.
func ParseCurrency(s string) Money {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	match := leadingNumber.FindString(b.String())
	if match == "" {
		return Zero()
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(match, "."))
	if err != nil {
		return Zero()
	}
	return Money{d}
}

package calculation

import (
	"testing"

	money "github.com/rpgo/safeharbor/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func usd(s string) money.Money {
	return money.NewMoneyFromDecimal(decimal.RequireFromString(s))
}

// assertMoney compares by value so 25000 and 25000.00 are equal.
func assertMoney(t *testing.T, want string, got money.Money, label string) {
	t.Helper()
	expected := decimal.RequireFromString(want)
	assert.True(t, got.Decimal.Equal(expected), "%s: expected %s, got %s", label, want, got.Decimal.String())
}

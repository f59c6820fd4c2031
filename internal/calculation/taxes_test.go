package calculation

import (
	"testing"

	"github.com/rpgo/safeharbor/internal/domain"
	money "github.com/rpgo/safeharbor/pkg/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFederalIncomeTax tests the bracket walk using 2025 tables
func TestFederalIncomeTax(t *testing.T) {
	c := Constants2025()

	tests := []struct {
		name            string
		netProfit       string
		seDeduction     string
		status          domain.FilingStatus
		expectedTaxable string
		expectedTax     string
		expectedRates   []string
		description     string
	}{
		{
			name:            "Below standard deduction",
			netProfit:       "15000",
			seDeduction:     "0",
			status:          domain.FilingStatusSingle,
			expectedTaxable: "0",
			expectedTax:     "0",
			expectedRates:   []string{},
			description:     "AGI under $15,750 leaves nothing to tax",
		},
		{
			name:            "First bracket only",
			netProfit:       "25750",
			seDeduction:     "0",
			status:          domain.FilingStatusSingle,
			expectedTaxable: "10000",
			expectedTax:     "1000",
			expectedRates:   []string{"0.1"},
			description:     "10000 * 0.10",
		},
		{
			name:            "First bracket filled exactly",
			netProfit:       "27676",
			seDeduction:     "0",
			status:          domain.FilingStatusSingle,
			expectedTaxable: "11926",
			expectedTax:     "1192.6",
			expectedRates:   []string{"0.1"},
			description:     "0..11925 inclusive holds 11926 dollars",
		},
		{
			name:            "One dollar into second bracket",
			netProfit:       "27677",
			seDeduction:     "0",
			status:          domain.FilingStatusSingle,
			expectedTaxable: "11927",
			expectedTax:     "1192.72",
			expectedRates:   []string{"0.1", "0.12"},
			description:     "11926 * 0.10 + 1 * 0.12",
		},
		{
			name:            "Scenario A single",
			netProfit:       "200000",
			seDeduction:     "13596.35",
			status:          domain.FilingStatusSingle,
			expectedTaxable: "170653.65",
			expectedTax:     "33803.736",
			expectedRates:   []string{"0.1", "0.12", "0.22", "0.24"},
			description:     "11926*0.10 + 36550*0.12 + 54875*0.22 + 67302.65*0.24",
		},
		{
			name:            "Married two brackets",
			netProfit:       "100000",
			seDeduction:     "7064.775",
			status:          domain.FilingStatusMarried,
			expectedTaxable: "61435.225",
			expectedTax:     "6895.207",
			expectedRates:   []string{"0.1", "0.12"},
			description:     "23851*0.10 + 37584.225*0.12",
		},
		{
			name:            "Top bracket single",
			netProfit:       "1015750",
			seDeduction:     "0",
			status:          domain.FilingStatusSingle,
			expectedTaxable: "1000000",
			expectedTax:     "327019.98",
			expectedRates:   []string{"0.1", "0.12", "0.22", "0.24", "0.32", "0.35", "0.37"},
			description:     "All seven brackets used",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := CalculateIncomeTax(c, usd(tt.netProfit), usd(tt.seDeduction), tt.status)
			assertMoney(t, tt.expectedTaxable, it.TaxableIncome, tt.description+" taxable income")
			assertMoney(t, tt.expectedTax, it.FederalIncomeTax, tt.description+" tax")

			require.Len(t, it.Brackets, len(tt.expectedRates))
			for i, rate := range tt.expectedRates {
				assert.Equal(t, rate, it.Brackets[i].Rate.String())
			}
		})
	}
}

func TestFederalIncomeTaxBracketDetail(t *testing.T) {
	it := CalculateIncomeTax(Constants2025(), usd("200000"), usd("13596.35"), domain.FilingStatusSingle)

	assertMoney(t, "186403.65", it.AdjustedGrossIncome, "AGI")
	assertMoney(t, "15750", it.StandardDeduction, "standard deduction")

	expected := []struct{ taxable, tax string }{
		{"11926", "1192.6"},
		{"36550", "4386"},
		{"54875", "12072.5"},
		{"67302.65", "16152.636"},
	}
	require.Len(t, it.Brackets, len(expected))
	for i, e := range expected {
		assertMoney(t, e.taxable, it.Brackets[i].TaxableAtRate, "taxable at bracket")
		assertMoney(t, e.tax, it.Brackets[i].TaxAtRate, "tax at bracket")
	}
}

func TestFederalIncomeTaxZeroTaxable(t *testing.T) {
	it := CalculateIncomeTax(Constants2025(), usd("0"), usd("0"), domain.FilingStatusMarried)

	assert.True(t, it.TaxableIncome.IsZero())
	assert.True(t, it.FederalIncomeTax.IsZero())
	assert.NotNil(t, it.Brackets)
	assert.Empty(t, it.Brackets)

	negative := CalculateIncomeTax(Constants2025(), usd("-5000"), usd("-100"), domain.FilingStatusSingle)
	assert.True(t, negative.TaxableIncome.IsZero())
	assert.Empty(t, negative.Brackets)
}

func TestFederalIncomeTaxProperties(t *testing.T) {
	c := Constants2025()

	for _, status := range domain.FilingStatuses() {
		previous := money.Zero()
		for profit := int64(0); profit <= 1500000; profit += 9973 {
			it := CalculateIncomeTax(c, money.NewMoneyFromInt(profit), money.Zero(), status)

			sum := money.Zero()
			for _, b := range it.Brackets {
				assert.True(t, b.TaxableAtRate.IsPositive(), "zero-amount bracket reported at %d", profit)
				sum = sum.Add(b.TaxableAtRate)
			}
			assert.True(t, sum.Equal(it.TaxableIncome), "%s %d: bracket amounts %s != taxable %s", status, profit, sum, it.TaxableIncome)

			for i := 1; i < len(it.Brackets); i++ {
				assert.True(t, it.Brackets[i].Rate.GreaterThan(it.Brackets[i-1].Rate), "rates must ascend")
			}

			assert.False(t, it.FederalIncomeTax.LessThan(previous), "%s: tax decreased at %d", status, profit)
			previous = it.FederalIncomeTax
		}
	}
}

package calculation

import (
	"testing"

	"github.com/rpgo/safeharbor/internal/domain"
	money "github.com/rpgo/safeharbor/pkg/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBreakEvenProfit(t *testing.T) {
	tests := []struct {
		name   string
		inputs domain.TaxInputs
	}{
		{
			name: "single under AGI threshold",
			inputs: domain.TaxInputs{
				FilingStatus: domain.FilingStatusSingle,
				PriorYearTax: usd("25000"),
				PriorYearAGI: usd("140000"),
			},
		},
		{
			name: "married high income",
			inputs: domain.TaxInputs{
				FilingStatus: domain.FilingStatusMarried,
				PriorYearTax: usd("30000"),
				PriorYearAGI: usd("151000"),
			},
		},
		{
			name: "married small prior-year tax",
			inputs: domain.TaxInputs{
				FilingStatus: domain.FilingStatusMarried,
				PriorYearTax: usd("777"),
				PriorYearAGI: usd("40000"),
			},
		},
		{
			name: "single prior-year tax with cents",
			inputs: domain.TaxInputs{
				FilingStatus: domain.FilingStatusSingle,
				PriorYearTax: usd("12345.67"),
				PriorYearAGI: usd("160000"),
			},
		},
		{
			name: "large prior-year tax",
			inputs: domain.TaxInputs{
				FilingStatus: domain.FilingStatusSingle,
				PriorYearTax: usd("400000"),
				PriorYearAGI: usd("1200000"),
			},
		},
	}

	engine := NewCalculationEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be, err := engine.CalculateBreakEvenProfit(tt.inputs)
			require.NoError(t, err)
			assert.True(t, be.Profit.IsPositive())
			assert.False(t, be.CurrentYearMinimum.LessThan(be.SafeHarborMinimum), "at the break-even profit Safe Harbor is no more expensive")

			at := tt.inputs
			at.CurrentYearProfit = be.Profit
			r := engine.Calculate(at)
			assert.False(t, r.IsCurrentYearLower)
			assertMoney(t, be.CurrentYearMinimum.Decimal.String(), r.CurrentYearAvoidanceMinimum, "current-year minimum at break-even")

			below := tt.inputs
			below.CurrentYearProfit = be.Profit.Sub(usd("0.01"))
			assert.True(t, engine.Calculate(below).IsCurrentYearLower, "one cent below break-even the current-year method wins")

			assert.True(t, be.Profit.Decimal.Equal(be.Profit.Decimal.Round(2)), "profit is a whole number of cents")
		})
	}
}

func TestCalculateBreakEvenProfit_ZeroPriorTax(t *testing.T) {
	be, err := NewCalculationEngine().CalculateBreakEvenProfit(domain.TaxInputs{
		FilingStatus: domain.FilingStatusSingle,
		PriorYearTax: money.Zero(),
		PriorYearAGI: usd("50000"),
	})
	require.NoError(t, err)
	assert.True(t, be.Profit.IsZero())
	assert.True(t, be.SafeHarborMinimum.IsZero())
}

func TestCalculateBreakEvenProfit_Unreachable(t *testing.T) {
	c := Constants2025()
	c.SafeHarbor.CurrentYearMultiplier = money.Zero().Decimal
	_, err := NewCalculationEngineWithConstants(c).CalculateBreakEvenProfit(domain.TaxInputs{
		FilingStatus: domain.FilingStatusSingle,
		PriorYearTax: usd("1000"),
		PriorYearAGI: usd("50000"),
	})
	assert.Error(t, err)
}

package integration

import (
	"testing"

	"github.com/rpgo/safeharbor/internal/calculation"
	"github.com/rpgo/safeharbor/internal/config"
	"github.com/rpgo/safeharbor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	tests := []struct {
		file         string
		required     string
		quarterly    string
		multiplier   string
		currentLower bool
		recommended  string
	}{
		{"../testdata/example_inputs.yaml", "25000", "6250", "1", false, domain.MethodSafeHarbor},
		{"../testdata/example_inputs_married.yaml", "18922.2813", "4730.570325", "1.1", true, domain.MethodCurrentYear},
	}

	parser := config.NewInputParser()
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			in, err := parser.LoadFromFile(tt.file)
			require.NoError(t, err)

			c, err := parser.ResolveConstants("", in.TaxYear)
			require.NoError(t, err)

			r := calculation.NewCalculationEngineWithConstants(c).Calculate(in.TaxInputs)
			assert.Equal(t, tt.required, r.RequiredAnnualPayment.Decimal.String())
			assert.Equal(t, tt.quarterly, r.QuarterlyPayment.Decimal.String())
			assert.Equal(t, tt.multiplier, r.SafeHarborMultiplier.String())
			assert.Equal(t, tt.currentLower, r.IsCurrentYearLower)
			assert.Equal(t, tt.recommended, r.RecommendedMethod())

			// quarterly × 4 reproduces the annual figure exactly
			sum := r.Quarters[0].Amount
			for _, q := range r.Quarters[1:] {
				sum = sum.Add(q.Amount)
			}
			assert.True(t, sum.Equal(r.RequiredAnnualPayment))

			// the explanation agrees with the result
			steps := calculation.Explain(r, c)
			last := steps[len(steps)-1]
			assert.True(t, last.Value.Equal(r.Savings.Decimal))
		})
	}
}

func TestBreakEvenAgainstExample(t *testing.T) {
	in, err := config.NewInputParser().LoadFromFile("../testdata/example_inputs.yaml")
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	be, err := engine.CalculateBreakEvenProfit(in.TaxInputs)
	require.NoError(t, err)

	// $200,000 of profit is past the point where Safe Harbor becomes cheaper
	assert.True(t, be.Profit.LessThan(in.CurrentYearProfit))
	assert.True(t, be.SafeHarborMinimum.Equal(engine.Calculate(in.TaxInputs).SafeHarborMinimum))
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	_, err := parser.Parse([]byte("filing_status: single\nprior_year_tax: -1\nprior_year_agi: 0\ncurrent_year_profit: 0\n"))
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)

	_, err = parser.ResolveConstants("", 2024)
	assert.ErrorIs(t, err, calculation.ErrUnsupportedTaxYear)
}

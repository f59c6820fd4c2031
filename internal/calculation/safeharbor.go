package calculation

import (
	"github.com/rpgo/safeharbor/internal/domain"
	money "github.com/rpgo/safeharbor/pkg/decimal"
)

// CalculateSafeHarbor returns the prior-year based minimum. The high-income
// multiplier applies only when prior-year AGI is strictly above the threshold.
func CalculateSafeHarbor(c *domain.TaxYearConstants, priorYearTax, priorYearAGI money.Money) domain.SafeHarborResult {
	rules := c.SafeHarbor
	multiplier := rules.StandardMultiplier
	highIncome := priorYearAGI.GreaterThan(rules.HighIncomeAGIThreshold)
	if highIncome {
		multiplier = rules.HighIncomeMultiplier
	}
	return domain.SafeHarborResult{
		Minimum:           priorYearTax.Mul(multiplier),
		MultiplierApplied: multiplier,
		HighIncome:        highIncome,
	}
}

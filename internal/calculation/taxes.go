package calculation

import (
	"github.com/rpgo/safeharbor/internal/domain"
	money "github.com/rpgo/safeharbor/pkg/decimal"
)

// CalculateIncomeTax calculates progressive federal income tax on net profit
// after subtracting the deductible half of SE tax and the standard deduction.
//
// Brackets are walked from the lowest. A bounded bracket absorbs at most
// Max-Min+1 dollars; the top bracket absorbs whatever remains. Only brackets
// that actually receive income appear in the detail list.
func CalculateIncomeTax(c *domain.TaxYearConstants, netProfit, seTaxDeduction money.Money, status domain.FilingStatus) domain.IncomeTaxBreakdown {
	agi := netProfit.Sub(seTaxDeduction)
	standardDed := c.StandardDeduction[status]
	taxableIncome := money.Max(money.Zero(), agi.Sub(standardDed))

	breakdown := domain.IncomeTaxBreakdown{
		AdjustedGrossIncome: agi,
		StandardDeduction:   standardDed,
		TaxableIncome:       taxableIncome,
		FederalIncomeTax:    money.Zero(),
		Brackets:            []domain.BracketDetail{},
	}

	remaining := taxableIncome
	for _, bracket := range c.Brackets[status] {
		if !remaining.IsPositive() {
			break
		}
		amount := remaining
		if !bracket.Unbounded() {
			amount = money.Min(remaining, money.NewMoneyFromDecimal(bracket.Capacity()))
		}
		if amount.IsPositive() {
			tax := amount.Mul(bracket.Rate)
			breakdown.FederalIncomeTax = breakdown.FederalIncomeTax.Add(tax)
			breakdown.Brackets = append(breakdown.Brackets, domain.BracketDetail{
				Rate:          bracket.Rate,
				TaxableAtRate: amount,
				TaxAtRate:     tax,
			})
		}
		remaining = remaining.Sub(amount)
	}

	return breakdown
}

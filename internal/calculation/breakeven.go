package calculation

import (
	"fmt"

	"github.com/rpgo/safeharbor/internal/domain"
	money "github.com/rpgo/safeharbor/pkg/decimal"
	"github.com/shopspring/decimal"
)

const maxBreakEvenDoublings = 100

var (
	two      = decimal.NewFromInt(2)
	centsPer = decimal.NewFromInt(100)
)

// BreakEvenResult is the current-year profit at which both payment methods
// require the same amount.
type BreakEvenResult struct {
	Profit             money.Money `json:"profit"`
	SafeHarborMinimum  money.Money `json:"safe_harbor_minimum"`
	CurrentYearMinimum money.Money `json:"current_year_minimum"`
}

// CalculateBreakEvenProfit finds the smallest current-year profit, to the cent,
// at which the current-year minimum reaches the Safe Harbor minimum. Below it
// the current-year method is cheaper; at or above it Safe Harbor is. The
// current-year profit in inputs is ignored.
func (ce *CalculationEngine) CalculateBreakEvenProfit(inputs domain.TaxInputs) (*BreakEvenResult, error) {
	c := ce.Constants
	target := CalculateSafeHarbor(c, inputs.PriorYearTax, inputs.PriorYearAGI).Minimum

	avoidance := func(profit money.Money) money.Money {
		se := CalculateSelfEmploymentTax(c, profit, inputs.FilingStatus)
		it := CalculateIncomeTax(c, profit, se.SETaxDeduction, inputs.FilingStatus)
		return se.TotalSETax.Add(it.FederalIncomeTax).Mul(c.SafeHarbor.CurrentYearMultiplier)
	}

	if !target.IsPositive() {
		return &BreakEvenResult{Profit: money.Zero(), SafeHarborMinimum: target, CurrentYearMinimum: avoidance(money.Zero())}, nil
	}

	// Search on whole cents. lo stays below the target, hi at or above it.
	reaches := func(cents decimal.Decimal) bool {
		return !avoidance(money.NewMoneyFromDecimal(cents.Div(centsPer))).LessThan(target)
	}
	lo := decimal.Zero
	hi := decimal.NewFromInt(100000)
	for i := 0; !reaches(hi); i++ {
		if i >= maxBreakEvenDoublings {
			return nil, fmt.Errorf("no break-even profit found for a Safe Harbor minimum of %s", target.Format())
		}
		lo = hi
		hi = hi.Mul(two)
	}
	for hi.Sub(lo).GreaterThan(decimal.NewFromInt(1)) {
		mid := lo.Add(hi).Div(two).Floor()
		if reaches(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}

	profit := money.NewMoneyFromDecimal(hi.Div(centsPer))
	ce.Logger.Debugf("break-even profit %s for safe harbor minimum %s", profit, target)
	return &BreakEvenResult{
		Profit:             profit,
		SafeHarborMinimum:  target,
		CurrentYearMinimum: avoidance(profit),
	}, nil
}

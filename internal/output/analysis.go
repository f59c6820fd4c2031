package output

import (
	"fmt"

	"github.com/rpgo/safeharbor/internal/domain"
	money "github.com/rpgo/safeharbor/pkg/decimal"
)

// Recommendation summarizes which payment method to use and what it saves.
type Recommendation struct {
	Method           string
	AnnualPayment    money.Money
	QuarterlyPayment money.Money
	Alternative      string
	AlternativeTotal money.Money
	Savings          money.Money
}

// AnalyzeResult derives the recommendation shown at the top of every report.
func AnalyzeResult(r *domain.TaxCalculationResult) Recommendation {
	rec := Recommendation{
		Method:           r.RecommendedMethod(),
		AnnualPayment:    r.RequiredAnnualPayment,
		QuarterlyPayment: r.QuarterlyPayment,
		Savings:          r.Savings,
	}
	if r.IsCurrentYearLower {
		rec.Alternative = domain.MethodSafeHarbor
		rec.AlternativeTotal = r.SafeHarborMinimum
	} else {
		rec.Alternative = domain.MethodCurrentYear
		rec.AlternativeTotal = r.CurrentYearAvoidanceMinimum
	}
	return rec
}

// Headline is a one-sentence statement of the recommendation
func (rec Recommendation) Headline() string {
	if rec.Savings.IsZero() {
		return fmt.Sprintf("Pay %s per quarter (%s). Both methods require the same amount.",
			rec.QuarterlyPayment.FormatWhole(), rec.Method)
	}
	return fmt.Sprintf("Pay %s per quarter using %s, saving %s versus %s.",
		rec.QuarterlyPayment.FormatWhole(), rec.Method, rec.Savings.FormatWhole(), rec.Alternative)
}

package calculation

import (
	"fmt"

	"github.com/rpgo/safeharbor/internal/domain"
	money "github.com/rpgo/safeharbor/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ExplanationStep is one line of the worked calculation shown to a user.
type ExplanationStep struct {
	Title   string          `json:"title"`
	Formula string          `json:"formula"`
	Value   decimal.Decimal `json:"value"`
	IsRate  bool            `json:"is_rate,omitempty"`
}

// Explain lays out every intermediate figure of a result in calculation order.
// Values are taken from the result itself, so the walk-through always agrees with
// the figures reported elsewhere.
func Explain(r *domain.TaxCalculationResult, c *domain.TaxYearConstants) []ExplanationStep {
	in := r.Inputs
	se := r.SelfEmployment
	it := r.IncomeTax
	cur := func(m money.Money) string { return m.Format() }
	pct := money.FormatPercent

	steps := []ExplanationStep{
		{
			Title:   "SE-taxable earnings",
			Formula: fmt.Sprintf("%s × %s", cur(in.CurrentYearProfit), SETaxableFactor().String()),
			Value:   se.SETaxableEarnings.Decimal,
		},
		{
			Title: "Social Security tax",
			Formula: fmt.Sprintf("min(%s, %s) × %s", cur(se.SETaxableEarnings), cur(c.SocialSecurityWageBase),
				c.SocialSecurityRate.String()),
			Value: se.SocialSecurityTax.Decimal,
		},
		{
			Title:   "Medicare tax",
			Formula: fmt.Sprintf("%s × %s", cur(se.SETaxableEarnings), c.MedicareRate.String()),
			Value:   se.MedicareTax.Decimal,
		},
		{
			Title: "Additional Medicare tax",
			Formula: fmt.Sprintf("max(0, %s − %s) × %s", cur(se.SETaxableEarnings),
				cur(c.AdditionalMedicareThreshold[in.FilingStatus]), c.AdditionalMedicareRate.String()),
			Value: se.AdditionalMedicareTax.Decimal,
		},
		{
			Title:   "Total SE tax",
			Formula: fmt.Sprintf("%s + %s + %s", cur(se.SocialSecurityTax), cur(se.MedicareTax), cur(se.AdditionalMedicareTax)),
			Value:   se.TotalSETax.Decimal,
		},
		{
			Title:   "SE tax deduction",
			Formula: fmt.Sprintf("%s × %s", cur(se.TotalSETax), c.SETaxDeductionFraction.String()),
			Value:   se.SETaxDeduction.Decimal,
		},
		{
			Title:   "Adjusted gross income",
			Formula: fmt.Sprintf("%s − %s", cur(in.CurrentYearProfit), cur(se.SETaxDeduction)),
			Value:   it.AdjustedGrossIncome.Decimal,
		},
		{
			Title:   "Taxable income",
			Formula: fmt.Sprintf("max(0, %s − %s standard deduction)", cur(it.AdjustedGrossIncome), cur(it.StandardDeduction)),
			Value:   it.TaxableIncome.Decimal,
		},
	}

	for _, b := range it.Brackets {
		steps = append(steps, ExplanationStep{
			Title:   fmt.Sprintf("Tax at %s", pct(b.Rate)),
			Formula: fmt.Sprintf("%s × %s", cur(b.TaxableAtRate), b.Rate.String()),
			Value:   b.TaxAtRate.Decimal,
		})
	}

	multiplierReason := fmt.Sprintf("prior-year AGI %s ≤ %s", cur(in.PriorYearAGI), cur(c.SafeHarbor.HighIncomeAGIThreshold))
	if in.PriorYearAGI.GreaterThan(c.SafeHarbor.HighIncomeAGIThreshold) {
		multiplierReason = fmt.Sprintf("prior-year AGI %s > %s", cur(in.PriorYearAGI), cur(c.SafeHarbor.HighIncomeAGIThreshold))
	}

	required := "Safe Harbor minimum"
	if r.IsCurrentYearLower {
		required = "current-year minimum"
	}

	steps = append(steps,
		ExplanationStep{
			Title:   "Federal income tax",
			Formula: fmt.Sprintf("sum of %d bracket(s)", len(it.Brackets)),
			Value:   it.FederalIncomeTax.Decimal,
		},
		ExplanationStep{
			Title:   "Current-year total tax",
			Formula: fmt.Sprintf("%s + %s", cur(se.TotalSETax), cur(it.FederalIncomeTax)),
			Value:   r.CurrentYearTotalTax.Decimal,
		},
		ExplanationStep{
			Title:   "90% of current-year tax",
			Formula: fmt.Sprintf("%s × %s", cur(r.CurrentYearTotalTax), c.SafeHarbor.CurrentYearMultiplier.String()),
			Value:   r.CurrentYearAvoidanceMinimum.Decimal,
		},
		ExplanationStep{
			Title:   "Safe Harbor multiplier",
			Formula: multiplierReason,
			Value:   r.SafeHarborMultiplier,
			IsRate:  true,
		},
		ExplanationStep{
			Title:   "Safe Harbor minimum",
			Formula: fmt.Sprintf("%s × %s", cur(in.PriorYearTax), r.SafeHarborMultiplier.String()),
			Value:   r.SafeHarborMinimum.Decimal,
		},
		ExplanationStep{
			Title:   "Required annual payment",
			Formula: fmt.Sprintf("min(%s, %s) = %s", cur(r.SafeHarborMinimum), cur(r.CurrentYearAvoidanceMinimum), required),
			Value:   r.RequiredAnnualPayment.Decimal,
		},
		ExplanationStep{
			Title:   "Quarterly payment",
			Formula: fmt.Sprintf("%s ÷ 4", cur(r.RequiredAnnualPayment)),
			Value:   r.QuarterlyPayment.Decimal,
		},
		ExplanationStep{
			Title:   "Savings",
			Formula: fmt.Sprintf("|%s − %s|", cur(r.SafeHarborMinimum), cur(r.CurrentYearAvoidanceMinimum)),
			Value:   r.Savings.Decimal,
		},
	)
	return steps
}

package calculation

import (
	"github.com/rpgo/safeharbor/internal/domain"
	money "github.com/rpgo/safeharbor/pkg/decimal"
)

// CalculationEngine runs the estimated-tax pipeline against one tax-year table.
// It holds no per-call state and may be shared between goroutines.
type CalculationEngine struct {
	Constants *domain.TaxYearConstants
	Logger    Logger
}

// NewCalculationEngine creates a calculation engine for the default tax year
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithConstants(Constants2025())
}

// NewCalculationEngineWithConstants creates a calculation engine bound to the given table
func NewCalculationEngineWithConstants(c *domain.TaxYearConstants) *CalculationEngine {
	return &CalculationEngine{
		Constants: c,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate computes SE tax, income tax and both payment minimums, and selects
// the lesser as the required annual payment.
func (ce *CalculationEngine) Calculate(inputs domain.TaxInputs) *domain.TaxCalculationResult {
	c := ce.Constants

	se := CalculateSelfEmploymentTax(c, inputs.CurrentYearProfit, inputs.FilingStatus)
	income := CalculateIncomeTax(c, inputs.CurrentYearProfit, se.SETaxDeduction, inputs.FilingStatus)

	currentYearTotal := se.TotalSETax.Add(income.FederalIncomeTax)
	avoidanceMinimum := currentYearTotal.Mul(c.SafeHarbor.CurrentYearMultiplier)

	sh := CalculateSafeHarbor(c, inputs.PriorYearTax, inputs.PriorYearAGI)

	required := money.Min(sh.Minimum, avoidanceMinimum)
	quarterly := required.Quarterly()
	isCurrentYearLower := avoidanceMinimum.LessThan(sh.Minimum)

	ce.Logger.Debugf("tax year %d: se=%s income=%s current=%s safe_harbor=%s (x%s) required=%s",
		c.Year, se.TotalSETax, income.FederalIncomeTax, avoidanceMinimum, sh.Minimum, sh.MultiplierApplied, required)

	quarters := make([]domain.QuarterlyPayment, 0, len(c.DueDates))
	for _, d := range c.DueDates {
		quarters = append(quarters, domain.QuarterlyPayment{Quarter: d.Quarter, DueDate: d.DueDate, Amount: quarterly})
	}

	return &domain.TaxCalculationResult{
		TaxYear:                     c.Year,
		Inputs:                      inputs,
		SelfEmployment:              se,
		IncomeTax:                   income,
		CurrentYearTotalTax:         currentYearTotal,
		CurrentYearAvoidanceMinimum: avoidanceMinimum,
		SafeHarborMultiplier:        sh.MultiplierApplied,
		SafeHarborMinimum:           sh.Minimum,
		RequiredAnnualPayment:       required,
		QuarterlyPayment:            quarterly,
		IsCurrentYearLower:          isCurrentYearLower,
		Savings:                     sh.Minimum.Sub(avoidanceMinimum).Abs(),
		Quarters:                    quarters,
	}
}

// CalculateTaxes runs a calculation with the 2025 table and no logging.
func CalculateTaxes(inputs domain.TaxInputs) *domain.TaxCalculationResult {
	return NewCalculationEngine().Calculate(inputs)
}

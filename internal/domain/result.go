package domain

import (
	"time"

	money "github.com/rpgo/safeharbor/pkg/decimal"
	"github.com/shopspring/decimal"
)

// SelfEmploymentTaxBreakdown holds the components of self-employment tax
type SelfEmploymentTaxBreakdown struct {
	SETaxableEarnings     money.Money `json:"se_taxable_earnings"`
	SocialSecurityTax     money.Money `json:"social_security_tax"`
	MedicareTax           money.Money `json:"medicare_tax"`
	AdditionalMedicareTax money.Money `json:"additional_medicare_tax"`
	TotalSETax            money.Money `json:"total_se_tax"`
	SETaxDeduction        money.Money `json:"se_tax_deduction"` // deductible half of TotalSETax
}

// BracketDetail is the slice of taxable income taxed at one marginal rate
type BracketDetail struct {
	Rate          decimal.Decimal `json:"rate"`
	TaxableAtRate money.Money     `json:"taxable_at_rate"`
	TaxAtRate     money.Money     `json:"tax_at_rate"`
}

// IncomeTaxBreakdown holds the progressive federal income tax computation
type IncomeTaxBreakdown struct {
	AdjustedGrossIncome money.Money     `json:"adjusted_gross_income"`
	StandardDeduction   money.Money     `json:"standard_deduction"`
	TaxableIncome       money.Money     `json:"taxable_income"`
	FederalIncomeTax    money.Money     `json:"federal_income_tax"`
	Brackets            []BracketDetail `json:"brackets"` // ascending rate, non-zero amounts only
}

// SafeHarborResult is the prior-year based minimum payment
type SafeHarborResult struct {
	Minimum           money.Money     `json:"minimum"`
	MultiplierApplied decimal.Decimal `json:"multiplier_applied"`
	HighIncome        bool            `json:"high_income"`
}

// QuarterlyPayment is one installment of the required annual payment
type QuarterlyPayment struct {
	Quarter string      `json:"quarter"`
	DueDate time.Time   `json:"due_date"`
	Amount  money.Money `json:"amount"`
}

// TaxCalculationResult is the full outcome of one calculation. It is built fresh
// on every call and never modified afterwards.
type TaxCalculationResult struct {
	TaxYear int       `json:"tax_year"`
	Inputs  TaxInputs `json:"inputs"`

	SelfEmployment SelfEmploymentTaxBreakdown `json:"self_employment"`
	IncomeTax      IncomeTaxBreakdown         `json:"income_tax"`

	CurrentYearTotalTax         money.Money `json:"current_year_total_tax"`
	CurrentYearAvoidanceMinimum money.Money `json:"current_year_avoidance_minimum"`

	SafeHarborMultiplier decimal.Decimal `json:"safe_harbor_multiplier"`
	SafeHarborMinimum    money.Money     `json:"safe_harbor_minimum"`

	RequiredAnnualPayment money.Money `json:"required_annual_payment"`
	QuarterlyPayment      money.Money `json:"quarterly_payment"`
	IsCurrentYearLower    bool        `json:"is_current_year_lower"`
	Savings               money.Money `json:"savings"`

	Quarters []QuarterlyPayment `json:"quarters"`
}

const (
	MethodSafeHarbor  = "Safe Harbor (prior year)"
	MethodCurrentYear = "90% of current year"
)

// RecommendedMethod names the cheaper of the two payment methods. Ties go to Safe Harbor.
func (r *TaxCalculationResult) RecommendedMethod() string {
	if r.IsCurrentYearLower {
		return MethodCurrentYear
	}
	return MethodSafeHarbor
}

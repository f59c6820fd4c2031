package domain

import (
	"errors"
	"fmt"
	"time"

	money "github.com/rpgo/safeharbor/pkg/decimal"
	"github.com/shopspring/decimal"
)

// TaxBracket represents one federal income tax bracket. Both bounds are inclusive.
type TaxBracket struct {
	Min  decimal.Decimal  `yaml:"min" json:"min"`
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"` // nil for the top bracket
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the bracket has no upper limit
func (b TaxBracket) Unbounded() bool {
	return b.Max == nil
}

// Capacity is the number of dollars the bracket can absorb. Only meaningful
// for bounded brackets.
func (b TaxBracket) Capacity() decimal.Decimal {
	if b.Max == nil {
		return decimal.Zero
	}
	return b.Max.Sub(b.Min).Add(decimal.NewFromInt(1))
}

// SafeHarborRules holds the multipliers used to derive the prior-year minimum
type SafeHarborRules struct {
	HighIncomeAGIThreshold money.Money     `yaml:"high_income_agi_threshold" json:"high_income_agi_threshold"`
	HighIncomeMultiplier   decimal.Decimal `yaml:"high_income_multiplier" json:"high_income_multiplier"`
	StandardMultiplier     decimal.Decimal `yaml:"standard_multiplier" json:"standard_multiplier"`
	CurrentYearMultiplier  decimal.Decimal `yaml:"current_year_multiplier" json:"current_year_multiplier"`
}

// QuarterDueDate is the deadline of one estimated payment installment
type QuarterDueDate struct {
	Quarter string    `yaml:"quarter" json:"quarter"`
	DueDate time.Time `yaml:"due_date" json:"due_date"`
}

// TaxYearConstants contains every tax-law parameter for a single tax year.
// Values are read-only once built and can be shared between goroutines.
type TaxYearConstants struct {
	Year int `yaml:"year" json:"year"`

	StandardDeduction map[FilingStatus]money.Money `yaml:"standard_deduction" json:"standard_deduction"`

	// Self-employment tax
	SocialSecurityWageBase      money.Money                  `yaml:"social_security_wage_base" json:"social_security_wage_base"`
	SocialSecurityRate          decimal.Decimal              `yaml:"social_security_rate" json:"social_security_rate"`
	MedicareRate                decimal.Decimal              `yaml:"medicare_rate" json:"medicare_rate"`
	AdditionalMedicareRate      decimal.Decimal              `yaml:"additional_medicare_rate" json:"additional_medicare_rate"`
	AdditionalMedicareThreshold map[FilingStatus]money.Money `yaml:"additional_medicare_threshold" json:"additional_medicare_threshold"`
	SETaxDeductionFraction      decimal.Decimal              `yaml:"se_tax_deduction_fraction" json:"se_tax_deduction_fraction"`

	SafeHarbor SafeHarborRules `yaml:"safe_harbor" json:"safe_harbor"`

	Brackets map[FilingStatus][]TaxBracket `yaml:"brackets" json:"brackets"`

	DueDates []QuarterDueDate `yaml:"due_dates" json:"due_dates"`
}

// Validate checks the structural invariants of the table: every filing status has a
// deduction, a threshold and a bracket table; brackets start at zero, are contiguous,
// have strictly increasing rates and end with an unbounded bracket; there are four
// due dates in chronological order.
func (c *TaxYearConstants) Validate() error {
	var errs []error
	for _, fs := range FilingStatuses() {
		if _, ok := c.StandardDeduction[fs]; !ok {
			errs = append(errs, fmt.Errorf("missing standard deduction for %s", fs))
		}
		if _, ok := c.AdditionalMedicareThreshold[fs]; !ok {
			errs = append(errs, fmt.Errorf("missing additional medicare threshold for %s", fs))
		}
		if err := validateBrackets(c.Brackets[fs]); err != nil {
			errs = append(errs, fmt.Errorf("brackets for %s: %w", fs, err))
		}
	}
	if !c.SocialSecurityWageBase.IsPositive() {
		errs = append(errs, errors.New("social security wage base must be positive"))
	}
	if len(c.DueDates) != 4 {
		errs = append(errs, fmt.Errorf("expected 4 due dates, got %d", len(c.DueDates)))
	} else {
		for i := 1; i < len(c.DueDates); i++ {
			if !c.DueDates[i].DueDate.After(c.DueDates[i-1].DueDate) {
				errs = append(errs, fmt.Errorf("due date %s is not after %s", c.DueDates[i].Quarter, c.DueDates[i-1].Quarter))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConstants, errors.Join(errs...))
	}
	return nil
}

func validateBrackets(brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return errors.New("no brackets")
	}
	if !brackets[0].Min.IsZero() {
		return errors.New("first bracket must start at 0")
	}
	for i, b := range brackets {
		last := i == len(brackets)-1
		if b.Unbounded() != last {
			return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
		}
		if !last && b.Max.LessThan(b.Min) {
			return fmt.Errorf("bracket %d: max below min", i)
		}
		if i == 0 {
			continue
		}
		prev := brackets[i-1]
		if !b.Min.Equal(prev.Max.Add(decimal.NewFromInt(1))) {
			return fmt.Errorf("bracket %d: not contiguous with previous bracket", i)
		}
		if !b.Rate.GreaterThan(prev.Rate) {
			return fmt.Errorf("bracket %d: rate must increase", i)
		}
	}
	return nil
}

package calculation

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rpgo/safeharbor/internal/domain"
	"github.com/rpgo/safeharbor/pkg/dateutil"
	money "github.com/rpgo/safeharbor/pkg/decimal"
	"github.com/shopspring/decimal"
)

// TAX YEAR TABLES:
//
// Only 2025 ships. The table is rebuilt on every call so callers may modify
// their copy (tests do) without affecting anyone else.
//
// 1. Standard deduction: $15,750 single / $31,500 married filing jointly
// 2. SE tax: 12.4% Social Security up to the $176,100 wage base, 2.9% Medicare,
//    0.9% additional Medicare above $200,000 single / $250,000 MFJ
// 3. Safe Harbor: 110% of prior-year tax when prior-year AGI exceeds $150,000,
//    otherwise 100%; the current-year alternative is 90%
// 4. Estimated payment due dates: Apr 15, Jun 16, Sep 15, Jan 15 of the next year

var seTaxableFactor = decimal.RequireFromString("0.9235")

// SETaxableFactor is the statutory share of net profit subject to SE tax (92.35%).
// It is fixed by law and not part of the per-year table.
func SETaxableFactor() decimal.Decimal {
	return seTaxableFactor
}

// ErrUnsupportedTaxYear is returned when no table exists for the requested year.
var ErrUnsupportedTaxYear = errors.New("unsupported tax year")

// DefaultTaxYear is the year used when none is configured
const DefaultTaxYear = 2025

var tables = map[int]func() *domain.TaxYearConstants{
	2025: Constants2025,
}

// SupportedYears lists the tax years with a built-in table
func SupportedYears() []int {
	years := make([]int, 0, len(tables))
	for y := range tables {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ConstantsForYear returns a fresh copy of the built-in table for the given year.
func ConstantsForYear(year int) (*domain.TaxYearConstants, error) {
	build, ok := tables[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d (supported: %v)", ErrUnsupportedTaxYear, year, SupportedYears())
	}
	return build(), nil
}

// Constants2025 builds the 2025 federal table
func Constants2025() *domain.TaxYearConstants {
	return &domain.TaxYearConstants{
		Year: 2025,
		StandardDeduction: map[domain.FilingStatus]money.Money{
			domain.FilingStatusSingle:  money.NewMoneyFromInt(15750),
			domain.FilingStatusMarried: money.NewMoneyFromInt(31500),
		},
		SocialSecurityWageBase: money.NewMoneyFromInt(176100),
		SocialSecurityRate:     decimal.NewFromFloat(0.124),
		MedicareRate:           decimal.NewFromFloat(0.029),
		AdditionalMedicareRate: decimal.NewFromFloat(0.009),
		AdditionalMedicareThreshold: map[domain.FilingStatus]money.Money{
			domain.FilingStatusSingle:  money.NewMoneyFromInt(200000),
			domain.FilingStatusMarried: money.NewMoneyFromInt(250000),
		},
		SETaxDeductionFraction: decimal.NewFromFloat(0.5),
		SafeHarbor: domain.SafeHarborRules{
			HighIncomeAGIThreshold: money.NewMoneyFromInt(150000),
			HighIncomeMultiplier:   decimal.NewFromFloat(1.1),
			StandardMultiplier:     decimal.NewFromFloat(1.0),
			CurrentYearMultiplier:  decimal.NewFromFloat(0.9),
		},
		Brackets: map[domain.FilingStatus][]domain.TaxBracket{
			domain.FilingStatusSingle: {
				bracket(0, 11925, 0.10),
				bracket(11926, 48475, 0.12),
				bracket(48476, 103350, 0.22),
				bracket(103351, 197300, 0.24),
				bracket(197301, 250525, 0.32),
				bracket(250526, 626350, 0.35),
				topBracket(626351, 0.37),
			},
			domain.FilingStatusMarried: {
				bracket(0, 23850, 0.10),
				bracket(23851, 96950, 0.12),
				bracket(96951, 206700, 0.22),
				bracket(206701, 394600, 0.24),
				bracket(394601, 501050, 0.32),
				bracket(501051, 751600, 0.35),
				topBracket(751601, 0.37),
			},
		},
		DueDates: EstimatedTaxDueDates(2025),
	}
}

func bracket(min, max int64, rate float64) domain.TaxBracket {
	upper := decimal.NewFromInt(max)
	return domain.TaxBracket{Min: decimal.NewFromInt(min), Max: &upper, Rate: decimal.NewFromFloat(rate)}
}

func topBracket(min int64, rate float64) domain.TaxBracket {
	return domain.TaxBracket{Min: decimal.NewFromInt(min), Rate: decimal.NewFromFloat(rate)}
}

// EstimatedTaxDueDates returns the four installment dates for a tax year:
// April 15, June 15 and September 15 of the year and January 15 of the next,
// each moved to the following Monday when it falls on a weekend.
func EstimatedTaxDueDates(year int) []domain.QuarterDueDate {
	statutory := []struct {
		quarter string
		year    int
		month   time.Month
	}{
		{"Q1", year, time.April},
		{"Q2", year, time.June},
		{"Q3", year, time.September},
		{"Q4", year + 1, time.January},
	}
	dates := make([]domain.QuarterDueDate, 0, len(statutory))
	for _, s := range statutory {
		dates = append(dates, domain.QuarterDueDate{
			Quarter: s.quarter,
			DueDate: dateutil.NextBusinessDay(dateutil.Date(s.year, s.month, 15)),
		})
	}
	return dates
}

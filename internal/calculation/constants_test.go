package calculation

import (
	"testing"

	"github.com/rpgo/safeharbor/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants2025Valid(t *testing.T) {
	c := Constants2025()
	require.NoError(t, c.Validate())

	assertMoney(t, "15750", c.StandardDeduction[domain.FilingStatusSingle], "single deduction")
	assertMoney(t, "31500", c.StandardDeduction[domain.FilingStatusMarried], "married deduction")
	assertMoney(t, "176100", c.SocialSecurityWageBase, "wage base")
	assertMoney(t, "150000", c.SafeHarbor.HighIncomeAGIThreshold, "safe harbor threshold")
	assert.Equal(t, "0.9235", SETaxableFactor().String())

	for _, status := range domain.FilingStatuses() {
		brackets := c.Brackets[status]
		require.Len(t, brackets, 7)
		assert.True(t, brackets[len(brackets)-1].Unbounded())
		assert.Equal(t, "0.37", brackets[len(brackets)-1].Rate.String())
	}
}

func TestConstantsAreIndependentCopies(t *testing.T) {
	a := Constants2025()
	a.StandardDeduction[domain.FilingStatusSingle] = usd("1")
	a.Brackets[domain.FilingStatusSingle][0].Rate = a.Brackets[domain.FilingStatusSingle][6].Rate

	b := Constants2025()
	assertMoney(t, "15750", b.StandardDeduction[domain.FilingStatusSingle], "fresh table")
	assert.Equal(t, "0.1", b.Brackets[domain.FilingStatusSingle][0].Rate.String())
}

func TestSETaxableFactorIsFixed(t *testing.T) {
	f := SETaxableFactor()
	f = f.Add(decimal.NewFromInt(1))
	assert.Equal(t, "1.9235", f.String())
	assert.Equal(t, "0.9235", SETaxableFactor().String())

	se := CalculateSelfEmploymentTax(Constants2025(), usd("100000"), domain.FilingStatusSingle)
	assertMoney(t, "92350", se.SETaxableEarnings, "earnings use the statutory factor")
}

func TestConstantsForYear(t *testing.T) {
	c, err := ConstantsForYear(2025)
	require.NoError(t, err)
	assert.Equal(t, 2025, c.Year)

	_, err = ConstantsForYear(1999)
	assert.ErrorIs(t, err, ErrUnsupportedTaxYear)

	assert.Equal(t, []int{2025}, SupportedYears())
}

func TestConstantsValidateDetectsBrokenTables(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.TaxYearConstants)
	}{
		{"gap between brackets", func(c *domain.TaxYearConstants) {
			c.Brackets[domain.FilingStatusSingle][1].Min = c.Brackets[domain.FilingStatusSingle][1].Min.Add(usd("5").Decimal)
		}},
		{"non increasing rate", func(c *domain.TaxYearConstants) {
			c.Brackets[domain.FilingStatusMarried][2].Rate = c.Brackets[domain.FilingStatusMarried][1].Rate
		}},
		{"bounded top bracket", func(c *domain.TaxYearConstants) {
			top := usd("99999999").Decimal
			c.Brackets[domain.FilingStatusSingle][6].Max = &top
		}},
		{"missing filing status", func(c *domain.TaxYearConstants) {
			delete(c.StandardDeduction, domain.FilingStatusMarried)
		}},
		{"three due dates", func(c *domain.TaxYearConstants) {
			c.DueDates = c.DueDates[:3]
		}},
		{"due dates out of order", func(c *domain.TaxYearConstants) {
			c.DueDates[0], c.DueDates[1] = c.DueDates[1], c.DueDates[0]
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Constants2025()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), domain.ErrInvalidConstants)
		})
	}
}

func TestEstimatedTaxDueDates(t *testing.T) {
	dates := EstimatedTaxDueDates(2025)
	require.Len(t, dates, 4)
	want := []string{"2025-04-15", "2025-06-16", "2025-09-15", "2026-01-15"}
	for i, d := range dates {
		assert.Equal(t, want[i], d.DueDate.Format("2006-01-02"), d.Quarter)
	}
	assert.Equal(t, "Q4", dates[3].Quarter)

	// 2026: September 15 is a Tuesday, January 15 2027 a Friday
	assert.Equal(t, "2026-09-15", EstimatedTaxDueDates(2026)[2].DueDate.Format("2006-01-02"))
}

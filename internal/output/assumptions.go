package output

import (
	"fmt"

	"github.com/rpgo/safeharbor/internal/domain"
	money "github.com/rpgo/safeharbor/pkg/decimal"
)

// GenerateAssumptions lists the tax-law figures a result depends on, for the
// given filing status, as rendered in the detailed outputs.
func GenerateAssumptions(c *domain.TaxYearConstants, status domain.FilingStatus) []string {
	sh := c.SafeHarbor
	return []string{
		fmt.Sprintf("Tax year %d federal tables, filing status %s", c.Year, status.Label()),
		fmt.Sprintf("Standard deduction: %s", c.StandardDeduction[status].FormatWhole()),
		fmt.Sprintf("Social Security: %s up to the %s wage base; Medicare: %s",
			formatRate(c.SocialSecurityRate), c.SocialSecurityWageBase.FormatWhole(), formatRate(c.MedicareRate)),
		fmt.Sprintf("Additional Medicare: %s above %s",
			formatRate(c.AdditionalMedicareRate), c.AdditionalMedicareThreshold[status].FormatWhole()),
		fmt.Sprintf("Safe Harbor: %s of prior-year tax when prior-year AGI exceeds %s, otherwise %s",
			money.FormatPercent(sh.HighIncomeMultiplier), sh.HighIncomeAGIThreshold.FormatWhole(), money.FormatPercent(sh.StandardMultiplier)),
		fmt.Sprintf("Current-year method: %s of this year's projected tax", money.FormatPercent(sh.CurrentYearMultiplier)),
		"State and local taxes, credits and other income are not included",
	}
}

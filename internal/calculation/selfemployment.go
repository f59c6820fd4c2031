package calculation

import (
	"github.com/rpgo/safeharbor/internal/domain"
	money "github.com/rpgo/safeharbor/pkg/decimal"
)

// CalculateSelfEmploymentTax derives Social Security, Medicare and additional
// Medicare tax on self-employment earnings (92.35% of net profit).
// Negative profit is not rejected; it produces non-positive components.
func CalculateSelfEmploymentTax(c *domain.TaxYearConstants, netProfit money.Money, status domain.FilingStatus) domain.SelfEmploymentTaxBreakdown {
	earnings := netProfit.Mul(seTaxableFactor)

	// Social Security is capped at the wage base
	ssTax := money.Min(earnings, c.SocialSecurityWageBase).Mul(c.SocialSecurityRate)

	// Medicare has no cap
	medicareTax := earnings.Mul(c.MedicareRate)

	// Additional Medicare only on the excess over the threshold
	excess := money.Max(money.Zero(), earnings.Sub(c.AdditionalMedicareThreshold[status]))
	additionalTax := excess.Mul(c.AdditionalMedicareRate)

	total := ssTax.Add(medicareTax).Add(additionalTax)

	return domain.SelfEmploymentTaxBreakdown{
		SETaxableEarnings:     earnings,
		SocialSecurityTax:     ssTax,
		MedicareTax:           medicareTax,
		AdditionalMedicareTax: additionalTax,
		TotalSETax:            total,
		SETaxDeduction:        total.Mul(c.SETaxDeductionFraction),
	}
}

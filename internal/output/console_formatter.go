package output

import (
	"bytes"
	"fmt"
	"strings"
)

// ConsoleFormatter prints the payment plan and the figures behind it.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result
	in := r.Inputs

	fmt.Fprintf(&buf, "%d ESTIMATED TAX PAYMENT PLAN\n", r.TaxYear)
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Filing Status:        %s\n", in.FilingStatus.Label())
	fmt.Fprintf(&buf, "Prior Year Tax:       %s\n", in.PriorYearTax.FormatWhole())
	fmt.Fprintf(&buf, "Prior Year AGI:       %s\n", in.PriorYearAGI.FormatWhole())
	fmt.Fprintf(&buf, "Current Year Profit:  %s\n", in.CurrentYearProfit.FormatWhole())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SELF-EMPLOYMENT TAX")
	fmt.Fprintln(&buf, strings.Repeat("-", 32))
	se := r.SelfEmployment
	fmt.Fprintf(&buf, "  SE-Taxable Earnings:     %s\n", se.SETaxableEarnings.Format())
	fmt.Fprintf(&buf, "  Social Security:         %s\n", se.SocialSecurityTax.Format())
	fmt.Fprintf(&buf, "  Medicare:                %s\n", se.MedicareTax.Format())
	fmt.Fprintf(&buf, "  Additional Medicare:     %s\n", se.AdditionalMedicareTax.Format())
	fmt.Fprintf(&buf, "  Total SE Tax:            %s\n", se.TotalSETax.Format())
	fmt.Fprintf(&buf, "  Deductible Half:         %s\n", se.SETaxDeduction.Format())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "FEDERAL INCOME TAX")
	fmt.Fprintln(&buf, strings.Repeat("-", 32))
	it := r.IncomeTax
	fmt.Fprintf(&buf, "  Adjusted Gross Income:   %s\n", it.AdjustedGrossIncome.Format())
	fmt.Fprintf(&buf, "  Standard Deduction:      %s\n", it.StandardDeduction.Format())
	fmt.Fprintf(&buf, "  Taxable Income:          %s\n", it.TaxableIncome.Format())
	for _, b := range it.Brackets {
		fmt.Fprintf(&buf, "    %-4s on %-16s %s\n", formatRate(b.Rate), b.TaxableAtRate.Format(), b.TaxAtRate.Format())
	}
	fmt.Fprintf(&buf, "  Income Tax:              %s\n", it.FederalIncomeTax.Format())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "MINIMUM PAYMENT COMPARISON")
	fmt.Fprintln(&buf, strings.Repeat("-", 32))
	fmt.Fprintf(&buf, "  Current Year Total Tax:  %s\n", r.CurrentYearTotalTax.Format())
	fmt.Fprintf(&buf, "  %-24s %s\n", formatRate(report.Constants.SafeHarbor.CurrentYearMultiplier)+" of Current Year:", r.CurrentYearAvoidanceMinimum.Format())
	fmt.Fprintf(&buf, "  Safe Harbor (%s):      %s\n", formatRate(r.SafeHarborMultiplier), r.SafeHarborMinimum.Format())
	fmt.Fprintln(&buf)

	rec := AnalyzeResult(r)
	fmt.Fprintf(&buf, "Recommended: %s\n", rec.Method)
	fmt.Fprintf(&buf, "Required Annual Payment: %s\n", rec.AnnualPayment.FormatWhole())
	fmt.Fprintf(&buf, "Quarterly Payment:       %s\n", rec.QuarterlyPayment.FormatWhole())
	fmt.Fprintf(&buf, "Savings vs %s: %s\n", rec.Alternative, rec.Savings.FormatWhole())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PAYMENT SCHEDULE")
	for _, q := range r.Quarters {
		fmt.Fprintf(&buf, "  %s  %-20s %s\n", q.Quarter, formatDueDate(q.DueDate), q.Amount.FormatWhole())
	}
	return buf.Bytes(), nil
}

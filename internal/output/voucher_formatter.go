package output

import (
	"bytes"
	"fmt"
	"strings"
)

// VoucherFormatter renders a financial summary followed by one payment voucher
// per quarter, with whole-dollar amounts.
type VoucherFormatter struct{}

func (v VoucherFormatter) Name() string { return "vouchers" }

const voucherWidth = 60

func (v VoucherFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result
	rec := AnalyzeResult(r)

	fmt.Fprintf(&buf, "%d ESTIMATED TAX FINANCIAL SUMMARY\n", r.TaxYear)
	fmt.Fprintln(&buf, strings.Repeat("=", voucherWidth))
	fmt.Fprintf(&buf, "Filing Status:            %s\n", r.Inputs.FilingStatus.Label())
	fmt.Fprintf(&buf, "Current Year Profit:      %s\n", r.Inputs.CurrentYearProfit.FormatWhole())
	fmt.Fprintf(&buf, "Projected Total Tax:      %s\n", r.CurrentYearTotalTax.FormatWhole())
	fmt.Fprintf(&buf, "Method:                   %s\n", rec.Method)
	fmt.Fprintf(&buf, "Required Annual Payment:  %s\n", rec.AnnualPayment.FormatWhole())
	fmt.Fprintf(&buf, "Savings:                  %s\n", rec.Savings.FormatWhole())

	for _, q := range r.Quarters {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "+"+strings.Repeat("-", voucherWidth-2)+"+")
		voucherLine(&buf, fmt.Sprintf("Form 1040-ES  %d  Payment Voucher %s", r.TaxYear, strings.TrimPrefix(q.Quarter, "Q")))
		voucherLine(&buf, "")
		voucherLine(&buf, "Due date:  "+formatDueDate(q.DueDate))
		voucherLine(&buf, "Amount of estimated tax you are paying:  "+q.Amount.FormatWhole())
		voucherLine(&buf, "")
		voucherLine(&buf, "Make check payable to \"United States Treasury\"")
		fmt.Fprintln(&buf, "+"+strings.Repeat("-", voucherWidth-2)+"+")
	}
	return buf.Bytes(), nil
}

func voucherLine(buf *bytes.Buffer, text string) {
	fmt.Fprintf(buf, "| %-*s |\n", voucherWidth-4, text)
}

package output

import (
	"bytes"
	"fmt"
	"strings"

	money "github.com/rpgo/safeharbor/pkg/decimal"
)

// ExplainFormatter prints the step-by-step calculation with each formula.
type ExplainFormatter struct{}

func (e ExplainFormatter) Name() string { return "explain" }

func (e ExplainFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "HOW YOUR %d SAFE HARBOR PAYMENT WAS CALCULATED\n", r.TaxYear)
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(report.Constants, r.Inputs.FilingStatus) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, step := range report.Steps() {
		value := money.NewMoneyFromDecimal(step.Value).Format()
		if step.IsRate {
			value = formatRate(step.Value)
		}
		fmt.Fprintf(&buf, "%2d. %s\n", i+1, step.Title)
		fmt.Fprintf(&buf, "    %s\n", step.Formula)
		fmt.Fprintf(&buf, "    = %s\n", value)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintln(&buf, AnalyzeResult(r).Headline())
	return buf.Bytes(), nil
}

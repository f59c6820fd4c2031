package output

import (
	"bytes"
	"encoding/csv"
)

// CSVSummarizer implements the summary CSV output (one row per figure).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	r := report.Result
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Field", "Value"}); err != nil {
		return nil, err
	}
	rows := [][]string{
		{"TaxYear", intToString(r.TaxYear)},
		{"FilingStatus", string(r.Inputs.FilingStatus)},
		{"PriorYearTax", r.Inputs.PriorYearTax.String()},
		{"PriorYearAGI", r.Inputs.PriorYearAGI.String()},
		{"CurrentYearProfit", r.Inputs.CurrentYearProfit.String()},
		{"SETaxableEarnings", r.SelfEmployment.SETaxableEarnings.String()},
		{"TotalSETax", r.SelfEmployment.TotalSETax.String()},
		{"SETaxDeduction", r.SelfEmployment.SETaxDeduction.String()},
		{"TaxableIncome", r.IncomeTax.TaxableIncome.String()},
		{"FederalIncomeTax", r.IncomeTax.FederalIncomeTax.String()},
		{"CurrentYearTotalTax", r.CurrentYearTotalTax.String()},
		{"CurrentYearAvoidanceMinimum", r.CurrentYearAvoidanceMinimum.String()},
		{"SafeHarborMultiplier", r.SafeHarborMultiplier.String()},
		{"SafeHarborMinimum", r.SafeHarborMinimum.String()},
		{"RequiredAnnualPayment", r.RequiredAnnualPayment.String()},
		{"QuarterlyPayment", r.QuarterlyPayment.String()},
		{"IsCurrentYearLower", boolToString(r.IsCurrentYearLower)},
		{"Savings", r.Savings.String()},
		{"RecommendedMethod", r.RecommendedMethod()},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package output

import (
	"bytes"
	"encoding/csv"
)

// CSVDetailedExporter writes one row per bracket and per quarterly installment.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *Report) ([]byte, error) {
	r := report.Result
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Section", "Label", "Rate", "Base", "Amount", "DueDate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	se := r.SelfEmployment
	seRows := []struct {
		label string
		rate  string
		base  string
		amt   string
	}{
		{"SocialSecurity", report.Constants.SocialSecurityRate.String(), se.SETaxableEarnings.String(), se.SocialSecurityTax.String()},
		{"Medicare", report.Constants.MedicareRate.String(), se.SETaxableEarnings.String(), se.MedicareTax.String()},
		{"AdditionalMedicare", report.Constants.AdditionalMedicareRate.String(), se.SETaxableEarnings.String(), se.AdditionalMedicareTax.String()},
	}
	for _, row := range seRows {
		if err := w.Write([]string{"SelfEmployment", row.label, row.rate, row.base, row.amt, ""}); err != nil {
			return nil, err
		}
	}
	for _, b := range r.IncomeTax.Brackets {
		row := []string{"IncomeTax", "Bracket", b.Rate.String(), b.TaxableAtRate.String(), b.TaxAtRate.String(), ""}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	for _, q := range r.Quarters {
		row := []string{"Payment", q.Quarter, "", "", q.Amount.String(), q.DueDate.Format("2006-01-02")}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/safeharbor/internal/calculation"
	"github.com/rpgo/safeharbor/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Report bundles a calculation result with the table it was computed from.
// Formatters need the table for due dates, rates and the explanation.
type Report struct {
	Result    *domain.TaxCalculationResult
	Constants *domain.TaxYearConstants
}

// NewReport creates a report for a result
func NewReport(result *domain.TaxCalculationResult, constants *domain.TaxYearConstants) *Report {
	return &Report{Result: result, Constants: constants}
}

// Steps returns the worked explanation of the result
func (r *Report) Steps() []calculation.ExplanationStep {
	return calculation.Explain(r.Result, r.Constants)
}

// GenerateReport renders report in the named format to w.
func GenerateReport(w io.Writer, report *Report, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

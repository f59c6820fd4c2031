package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/safeharbor/internal/calculation"
	money "github.com/rpgo/safeharbor/pkg/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    func(m money.Money) string { return m.Format() },
	"whole":   func(m money.Money) string { return m.FormatWhole() },
	"rate":    formatRate,
	"dueDate": formatDueDate,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*Report
		Recommendation Recommendation
		Steps          []calculation.ExplanationStep
		Assumptions    []string
	}{
		Report:         report,
		Recommendation: AnalyzeResult(report.Result),
		Steps:          report.Steps(),
		Assumptions:    GenerateAssumptions(report.Constants, report.Result.Inputs.FilingStatus),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

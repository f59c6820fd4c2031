package output

import (
	"encoding/json"

	"github.com/rpgo/safeharbor/internal/calculation"
	"github.com/rpgo/safeharbor/internal/domain"
)

// JSONFormatter serializes the result, its explanation and the recommendation as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

// jsonReport is the document produced by JSONFormatter and served by the HTTP API.
type jsonReport struct {
	*domain.TaxCalculationResult
	RecommendedMethod string                        `json:"recommended_method"`
	Explanation       []calculation.ExplanationStep `json:"explanation"`
}

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	return json.MarshalIndent(NewJSONDocument(report), "", "  ")
}

// NewJSONDocument builds the JSON form of a report
func NewJSONDocument(report *Report) any {
	return jsonReport{
		TaxCalculationResult: report.Result,
		RecommendedMethod:    report.Result.RecommendedMethod(),
		Explanation:          report.Steps(),
	}
}

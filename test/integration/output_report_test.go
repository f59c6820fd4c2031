package integration

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rpgo/safeharbor/internal/calculation"
	"github.com/rpgo/safeharbor/internal/config"
	"github.com/rpgo/safeharbor/internal/domain"
	"github.com/rpgo/safeharbor/internal/output"
	"github.com/rpgo/safeharbor/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadReport(t *testing.T, file string) *output.Report {
	t.Helper()
	in, err := config.NewInputParser().LoadFromFile(file)
	require.NoError(t, err)
	c := calculation.Constants2025()
	return output.NewReport(calculation.NewCalculationEngineWithConstants(c).Calculate(in.TaxInputs), c)
}

func TestEveryFormatRenders(t *testing.T) {
	for _, file := range []string{"../testdata/example_inputs.yaml", "../testdata/example_inputs_married.yaml"} {
		report := loadReport(t, file)
		for _, name := range output.AvailableFormatterNames() {
			var buf bytes.Buffer
			require.NoError(t, output.GenerateReport(&buf, report, name), "%s %s", file, name)
			assert.NotEmpty(t, buf.String(), "%s %s", file, name)
		}
	}
}

func TestSaveConstants_WritesLoadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constants.yaml")
	require.NoError(t, config.SaveConstants(calculation.Constants2025(), path))

	parser := config.NewInputParser()
	c, err := parser.ResolveConstants(path, 0)
	require.NoError(t, err)

	report := loadReport(t, "../testdata/example_inputs.yaml")
	again := calculation.NewCalculationEngineWithConstants(c).Calculate(report.Result.Inputs)
	assert.True(t, again.RequiredAnnualPayment.Equal(report.Result.RequiredAnnualPayment))
}

func TestSavedInputsReproduceTheReport(t *testing.T) {
	s := store.NewFileStore(filepath.Join(t.TempDir(), "inputs.yaml"))
	report := loadReport(t, "../testdata/example_inputs_married.yaml")
	in := report.Result.Inputs

	require.NoError(t, store.SaveInputs(s, domain.RawInputs{
		FilingStatus:      string(in.FilingStatus),
		PriorYearTax:      in.PriorYearTax.FormatWhole(),
		PriorYearAGI:      in.PriorYearAGI.FormatWhole(),
		CurrentYearProfit: in.CurrentYearProfit.FormatWhole(),
	}))

	loaded, err := store.LoadInputs(s)
	require.NoError(t, err)
	again := calculation.NewCalculationEngine().Calculate(loaded)
	assert.True(t, again.QuarterlyPayment.Equal(report.Result.QuarterlyPayment))
}

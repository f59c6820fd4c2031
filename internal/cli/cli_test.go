package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/safeharbor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes one command line against a fresh CLI with its own store file.
func run(t *testing.T, storePath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := NewCLI(Options{Output: &out})
	c.SetArgs(append([]string{"--store", storePath, "--log-level", "error"}, args...))
	err := c.Execute()
	return out.String(), err
}

func tempStore(t *testing.T) string {
	return filepath.Join(t.TempDir(), "inputs.yaml")
}

var scenarioFlags = []string{"--filing-status", "single", "--prior-tax", "$25,000", "--prior-agi", "140000", "--profit", "200,000"}

func TestCalculateWithFlagsJSON(t *testing.T) {
	out, err := run(t, tempStore(t), append([]string{"calculate", "--format", "json"}, scenarioFlags...)...)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "25000", doc["required_annual_payment"])
	assert.Equal(t, domain.MethodSafeHarbor, doc["recommended_method"])
}

func TestCalculateFromInputFile(t *testing.T) {
	out, err := run(t, tempStore(t), "calculate", "--input", filepath.Join("..", "config", "testdata", "inputs_married.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Married Filing Jointly")
	assert.Contains(t, out, "Recommended: 90% of current year")
	assert.Contains(t, out, "Quarterly Payment:       $4,731")
}

func TestCalculateRejectsBadInputs(t *testing.T) {
	_, err := run(t, tempStore(t), "calculate", "--filing-status", "widow", "--prior-tax", "1")
	assert.ErrorIs(t, err, domain.ErrUnknownFilingStatus)

	_, err = run(t, tempStore(t), "calculate")
	assert.ErrorIs(t, err, ErrNoInputs)

	_, err = run(t, tempStore(t), append([]string{"calculate", "--format", "xml"}, scenarioFlags...)...)
	assert.Error(t, err)
}

func TestSavedInputsAreReused(t *testing.T) {
	path := tempStore(t)

	out, err := run(t, path, append([]string{"inputs", "save"}, scenarioFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Inputs saved")

	out, err = run(t, path, "inputs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Prior Year Tax:       $25,000")

	out, err = run(t, path, "calculate", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "RequiredAnnualPayment,25000.00")

	// a single flag overrides one saved value
	out, err = run(t, path, "calculate", "--format", "csv", "--prior-tax", "10000")
	require.NoError(t, err)
	assert.Contains(t, out, "RequiredAnnualPayment,10000.00")

	_, err = run(t, path, "inputs", "clear")
	require.NoError(t, err)
	out, err = run(t, path, "inputs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved inputs")
}

func TestCalculateSaveFlag(t *testing.T) {
	path := tempStore(t)
	_, err := run(t, path, append([]string{"calculate", "--save", "--format", "json"}, scenarioFlags...)...)
	require.NoError(t, err)

	out, err := run(t, path, "explain")
	require.NoError(t, err)
	assert.Contains(t, out, "Safe Harbor multiplier")
	assert.Contains(t, out, "Pay $6,250 per quarter")
}

func TestVouchersCommand(t *testing.T) {
	out, err := run(t, tempStore(t), append([]string{"vouchers"}, scenarioFlags...)...)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "Payment Voucher"))
	assert.Contains(t, out, "January 15, 2026")
}

func TestCalculateOutDir(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, tempStore(t), append([]string{"calculate", "--format", "html", "--out", dir}, scenarioFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	matches, err := filepath.Glob(filepath.Join(dir, "safeharbor_2025_*.html"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestConstantsCommand(t *testing.T) {
	out, err := run(t, tempStore(t), "constants", "--format", "json")
	require.NoError(t, err)
	var c domain.TaxYearConstants
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, 2025, c.Year)

	file := filepath.Join(t.TempDir(), "constants.yaml")
	_, err = run(t, tempStore(t), "constants", "--write", file)
	require.NoError(t, err)
	_, err = os.Stat(file)
	require.NoError(t, err)

	out, err = run(t, tempStore(t), append([]string{"--constants", file, "calculate", "--format", "csv"}, scenarioFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "RequiredAnnualPayment,25000.00")
}

func TestUnsupportedTaxYear(t *testing.T) {
	_, err := run(t, tempStore(t), append([]string{"--tax-year", "1999", "calculate"}, scenarioFlags...)...)
	assert.Error(t, err)
}

func TestBreakEvenCommand(t *testing.T) {
	out, err := run(t, tempStore(t), "breakeven", "--filing-status", "single", "--prior-tax", "25000", "--prior-agi", "140000")
	require.NoError(t, err)
	assert.Contains(t, out, "Safe Harbor Minimum:   $25,000")
	assert.Contains(t, out, "Break-even Profit:")

	out, err = run(t, tempStore(t), "breakeven", "--format", "json", "--input", filepath.Join("..", "config", "testdata", "inputs_married.yaml"))
	require.NoError(t, err)
	var be map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &be))
	assert.Equal(t, "33000", be["safe_harbor_minimum"])
	assert.NotEmpty(t, be["profit"])
}

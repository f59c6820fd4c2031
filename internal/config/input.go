package config

import (
	"fmt"
	"os"

	"github.com/rpgo/safeharbor/internal/calculation"
	"github.com/rpgo/safeharbor/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputFile is the on-disk form of a calculation request
type InputFile struct {
	TaxYear          int `yaml:"tax_year,omitempty"`
	domain.TaxInputs `yaml:",inline"`
}

// InputParser handles parsing of input and constants files
type InputParser struct {
	Logger calculation.Logger
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Logger: calculation.NopLogger{}}
}

// LoadFromFile loads calculation inputs from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*InputFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates YAML input data
func (ip *InputParser) Parse(data []byte) (*InputFile, error) {
	var in InputFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	status, err := domain.ParseFilingStatus(string(in.FilingStatus))
	if err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	in.FilingStatus = status

	if err := ip.ValidateInputs(in.TaxInputs); err != nil {
		return nil, err
	}
	return &in, nil
}

// ValidateInputs rejects inputs the calculation is not meaningful for.
// Negative current-year profit is only logged.
func (ip *InputParser) ValidateInputs(in domain.TaxInputs) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	if in.CurrentYearProfit.IsNegative() {
		ip.Logger.Warnf("current year profit %s is negative; SE and income tax will be non-positive", in.CurrentYearProfit)
	}
	return nil
}

// LoadConstantsFromFile loads a tax-year table from YAML and checks its invariants
func (ip *InputParser) LoadConstantsFromFile(filename string) (*domain.TaxYearConstants, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var c domain.TaxYearConstants
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("constants file %s: %w", filename, err)
	}
	return &c, nil
}

// SaveConstants writes a tax-year table as YAML
func SaveConstants(c *domain.TaxYearConstants, filename string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// ResolveConstants picks the table for a run: an explicit file wins over the
// built-in table for the requested year.
func (ip *InputParser) ResolveConstants(constantsFile string, year int) (*domain.TaxYearConstants, error) {
	if constantsFile != "" {
		return ip.LoadConstantsFromFile(constantsFile)
	}
	if year == 0 {
		year = calculation.DefaultTaxYear
	}
	return calculation.ConstantsForYear(year)
}

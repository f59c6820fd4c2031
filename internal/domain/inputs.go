package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	money "github.com/rpgo/safeharbor/pkg/decimal"
	"github.com/shopspring/decimal"
)

// TaxInputs are the four figures a filer supplies for one calculation.
// Amounts are whole US dollars.
type TaxInputs struct {
	FilingStatus      FilingStatus `yaml:"filing_status" json:"filing_status"`
	PriorYearTax      money.Money  `yaml:"prior_year_tax" json:"prior_year_tax"`
	PriorYearAGI      money.Money  `yaml:"prior_year_agi" json:"prior_year_agi"`
	CurrentYearProfit money.Money  `yaml:"current_year_profit" json:"current_year_profit"`
}

// Validate applies the checks made at the input boundary (files, CLI flags, HTTP).
// The calculators themselves accept any value. A negative current-year profit is
// allowed here; callers may warn about it.
func (in TaxInputs) Validate() error {
	var errs []error
	if !in.FilingStatus.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownFilingStatus, in.FilingStatus))
	}
	if in.PriorYearTax.IsNegative() {
		errs = append(errs, fmt.Errorf("prior year tax: %w", ErrNegativeAmount))
	}
	if in.PriorYearAGI.IsNegative() {
		errs = append(errs, fmt.Errorf("prior year AGI: %w", ErrNegativeAmount))
	}
	return errors.Join(errs...)
}

// RawInputs are the four inputs as a user typed them. Amount strings are
// parsed leniently: anything that is not a number becomes zero.
type RawInputs struct {
	FilingStatus      string `yaml:"filing_status" json:"filing_status"`
	PriorYearTax      string `yaml:"prior_year_tax" json:"prior_year_tax"`
	PriorYearAGI      string `yaml:"prior_year_agi" json:"prior_year_agi"`
	CurrentYearProfit string `yaml:"current_year_profit" json:"current_year_profit"`
}

// Parse converts raw strings into validated TaxInputs
func (r RawInputs) Parse() (TaxInputs, error) {
	status, err := ParseFilingStatus(r.FilingStatus)
	if err != nil {
		return TaxInputs{}, err
	}
	in := TaxInputs{
		FilingStatus:      status,
		PriorYearTax:      money.ParseCurrency(r.PriorYearTax),
		PriorYearAGI:      money.ParseCurrency(r.PriorYearAGI),
		CurrentYearProfit: money.ParseCurrency(r.CurrentYearProfit),
	}
	if err := in.Validate(); err != nil {
		return TaxInputs{}, err
	}
	return in, nil
}

// UnmarshalJSON accepts each amount as a JSON string ("$25,000") or a JSON
// number (25000). Unknown fields are rejected.
func (r *RawInputs) UnmarshalJSON(data []byte) error {
	var wire struct {
		FilingStatus      string     `json:"filing_status"`
		PriorYearTax      jsonAmount `json:"prior_year_tax"`
		PriorYearAGI      jsonAmount `json:"prior_year_agi"`
		CurrentYearProfit jsonAmount `json:"current_year_profit"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&wire); err != nil {
		return err
	}
	*r = RawInputs{
		FilingStatus:      wire.FilingStatus,
		PriorYearTax:      string(wire.PriorYearTax),
		PriorYearAGI:      string(wire.PriorYearAGI),
		CurrentYearProfit: string(wire.CurrentYearProfit),
	}
	return nil
}

type jsonAmount string

func (a *jsonAmount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = jsonAmount(s)
		return nil
	}
	// numbers may use exponent form, which ParseCurrency would mangle
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("amount must be a string or a number, got %s", data)
	}
	*a = jsonAmount(d.String())
	return nil
}

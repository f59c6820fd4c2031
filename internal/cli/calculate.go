package cli

import (
	"errors"
	"fmt"

	"github.com/rpgo/safeharbor/internal/calculation"
	"github.com/rpgo/safeharbor/internal/domain"
	"github.com/rpgo/safeharbor/internal/output"
	"github.com/rpgo/safeharbor/internal/store"
	"github.com/spf13/cobra"
)

// ErrNoInputs is returned when neither a file, flags nor saved inputs were supplied
var ErrNoInputs = errors.New("no inputs: use --input, the amount flags, or 'safeharbor inputs save'")

type CalculateCmd struct {
	cli *CLI

	inputFile   string
	format      string
	fixedFormat string
	outDir      string
	save        bool
	raw         domain.RawInputs
}

// NewCalculateCmd builds "calculate" and its fixed-format variants ("explain", "vouchers").
func NewCalculateCmd(cli *CLI, use, fixedFormat string) *cobra.Command {
	cc := &CalculateCmd{cli: cli, fixedFormat: fixedFormat}
	short := "Calculate the required quarterly estimated tax payment"
	switch fixedFormat {
	case "explain":
		short = "Show every step of the calculation"
	case "vouchers":
		short = "Print the financial summary and four quarterly payment vouchers"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE:  cc.run,
	}

	f := cmd.Flags()
	f.StringVarP(&cc.inputFile, "input", "i", "", "YAML file with filing_status, prior_year_tax, prior_year_agi, current_year_profit")
	addInputFlags(cmd, &cc.raw)
	if fixedFormat == "" {
		f.StringVarP(&cc.format, "format", "f", "", "Output format: console, explain, json, csv, detailed-csv, html, vouchers")
	}
	f.StringVar(&cc.outDir, "out", "", "Write the report to a timestamped file in this directory instead of stdout")
	f.BoolVar(&cc.save, "save", false, "Save the inputs for later runs")
	cmd.MarkFlagsMutuallyExclusive("input", "filing-status")

	return cmd
}

func addInputFlags(cmd *cobra.Command, raw *domain.RawInputs) {
	f := cmd.Flags()
	f.StringVar(&raw.FilingStatus, "filing-status", "", "single or married (filing jointly)")
	f.StringVar(&raw.PriorYearTax, "prior-tax", "", "Total tax on last year's return, e.g. 25000 or $25,000")
	f.StringVar(&raw.PriorYearAGI, "prior-agi", "", "Last year's adjusted gross income")
	f.StringVar(&raw.CurrentYearProfit, "profit", "", "Expected net self-employment profit this year")
}

// mergeInputFlags overlays the flags the user set on top of base
func mergeInputFlags(cmd *cobra.Command, base, flags domain.RawInputs) (domain.RawInputs, bool) {
	changed := false
	pairs := []struct {
		name string
		dst  *string
		src  string
	}{
		{"filing-status", &base.FilingStatus, flags.FilingStatus},
		{"prior-tax", &base.PriorYearTax, flags.PriorYearTax},
		{"prior-agi", &base.PriorYearAGI, flags.PriorYearAGI},
		{"profit", &base.CurrentYearProfit, flags.CurrentYearProfit},
	}
	for _, p := range pairs {
		if cmd.Flags().Changed(p.name) {
			*p.dst = p.src
			changed = true
		}
	}
	return base, changed
}

func (cc *CalculateCmd) run(cmd *cobra.Command, args []string) error {
	inputs, constants, err := cc.resolveInputs(cmd)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngineWithConstants(constants)
	engine.SetLogger(cc.cli.logger.Sugar())
	report := output.NewReport(engine.Calculate(inputs), constants)

	format := cc.fixedFormat
	if format == "" {
		format = cc.format
	}
	if format == "" {
		format = cc.cli.settings.Output.Format
	}

	if cc.outDir != "" {
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
		}
		path, err := output.WriteFormatted(f, report, cc.outDir)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}
	return output.GenerateReport(cmd.OutOrStdout(), report, format)
}

func (cc *CalculateCmd) resolveInputs(cmd *cobra.Command) (domain.TaxInputs, *domain.TaxYearConstants, error) {
	constants := cc.cli.constants

	if cc.inputFile != "" {
		in, err := cc.cli.parser.LoadFromFile(cc.inputFile)
		if err != nil {
			return domain.TaxInputs{}, nil, err
		}
		if in.TaxYear != 0 && in.TaxYear != constants.Year {
			if cc.cli.settings.ConstantsFile != "" {
				return domain.TaxInputs{}, nil, fmt.Errorf("input file is for tax year %d but the constants file is for %d", in.TaxYear, constants.Year)
			}
			if constants, err = calculation.ConstantsForYear(in.TaxYear); err != nil {
				return domain.TaxInputs{}, nil, err
			}
		}
		return in.TaxInputs, constants, nil
	}

	saved, err := store.LoadRawInputs(cc.cli.store)
	haveSaved := err == nil
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return domain.TaxInputs{}, nil, err
	}
	raw, changed := mergeInputFlags(cmd, saved, cc.raw)
	if !haveSaved && !changed {
		return domain.TaxInputs{}, nil, ErrNoInputs
	}

	inputs, err := raw.Parse()
	if err != nil {
		return domain.TaxInputs{}, nil, fmt.Errorf("input validation failed: %w", err)
	}
	if err := cc.cli.parser.ValidateInputs(inputs); err != nil {
		return domain.TaxInputs{}, nil, err
	}
	if cc.save {
		if err := store.SaveInputs(cc.cli.store, raw); err != nil {
			return domain.TaxInputs{}, nil, err
		}
	}
	return inputs, constants, nil
}

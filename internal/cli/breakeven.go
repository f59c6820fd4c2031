package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rpgo/safeharbor/internal/calculation"
	"github.com/rpgo/safeharbor/internal/domain"
	"github.com/spf13/cobra"
)

// NewBreakEvenCmd reports the profit at which Safe Harbor becomes the cheaper method.
func NewBreakEvenCmd(cli *CLI) *cobra.Command {
	cc := &CalculateCmd{cli: cli}
	var format string
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Find the current-year profit at which both payment methods cost the same",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, constants, err := cc.resolveInputs(cmd)
			if err != nil {
				return err
			}
			engine := calculation.NewCalculationEngineWithConstants(constants)
			engine.SetLogger(cli.logger.Sugar())
			be, err := engine.CalculateBreakEvenProfit(inputs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(be)
			case "", "console", "text":
			default:
				return fmt.Errorf("unsupported breakeven format %q: use console or json", format)
			}

			fmt.Fprintf(out, "Safe Harbor Minimum:   %s\n", be.SafeHarborMinimum.FormatWhole())
			fmt.Fprintf(out, "Break-even Profit:     %s\n", be.Profit.Format())
			if be.Profit.IsZero() {
				fmt.Fprintln(out, "No prior-year tax: Safe Harbor requires nothing at any profit.")
				return nil
			}
			fmt.Fprintf(out, "Below %s, paying %s is cheaper. At or above it, %s is.\n", be.Profit.FormatWhole(), domain.MethodCurrentYear, domain.MethodSafeHarbor)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&cc.inputFile, "input", "i", "", "YAML input file; current_year_profit is ignored")
	addInputFlags(cmd, &cc.raw)
	f.StringVarP(&format, "format", "f", "console", "Output format: console or json")
	cmd.MarkFlagsMutuallyExclusive("input", "filing-status")
	return cmd
}

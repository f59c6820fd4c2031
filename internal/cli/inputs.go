package cli

import (
	"errors"
	"fmt"

	"github.com/rpgo/safeharbor/internal/domain"
	"github.com/rpgo/safeharbor/internal/store"
	"github.com/spf13/cobra"
)

// NewInputsCmd manages the saved inputs used when calculate runs without flags.
func NewInputsCmd(cli *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inputs",
		Short: "Save, show or clear remembered inputs",
	}
	cmd.AddCommand(newInputsSaveCmd(cli), newInputsShowCmd(cli), newInputsClearCmd(cli))
	return cmd
}

func newInputsSaveCmd(cli *CLI) *cobra.Command {
	var raw domain.RawInputs
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Remember inputs for later runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := store.LoadRawInputs(cli.store)
			if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
				return err
			}
			merged, changed := mergeInputFlags(cmd, saved, raw)
			if !changed {
				return fmt.Errorf("nothing to save: set at least one of --filing-status, --prior-tax, --prior-agi, --profit")
			}
			if _, err := merged.Parse(); err != nil {
				return fmt.Errorf("input validation failed: %w", err)
			}
			if err := store.SaveInputs(cli.store, merged); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Inputs saved")
			return nil
		},
	}
	addInputFlags(cmd, &raw)
	return cmd
}

func newInputsShowCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := store.LoadRawInputs(cli.store)
			if errors.Is(err, store.ErrKeyNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved inputs")
				return nil
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Filing Status:        %s\n", raw.FilingStatus)
			fmt.Fprintf(out, "Prior Year Tax:       %s\n", raw.PriorYearTax)
			fmt.Fprintf(out, "Prior Year AGI:       %s\n", raw.PriorYearAGI)
			fmt.Fprintf(out, "Current Year Profit:  %s\n", raw.CurrentYearProfit)
			return nil
		},
	}
}

func newInputsClearCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the saved inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.ClearInputs(cli.store); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved inputs cleared")
			return nil
		},
	}
}

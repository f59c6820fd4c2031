package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rpgo/safeharbor/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ConstantsCmd struct {
	cli    *CLI
	format string
	write  string
}

// NewConstantsCmd prints or exports the active tax-year table.
func NewConstantsCmd(cli *CLI) *cobra.Command {
	cc := &ConstantsCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Print the tax-year table in use",
		Args:  cobra.NoArgs,
		RunE:  cc.run,
	}
	cmd.Flags().StringVarP(&cc.format, "format", "f", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVar(&cc.write, "write", "", "Write the table as YAML to this file (a starting point for --constants)")
	return cmd
}

func (cc *ConstantsCmd) run(cmd *cobra.Command, args []string) error {
	c := cc.cli.constants
	if cc.write != "" {
		if err := config.SaveConstants(c, cc.write); err != nil {
			return fmt.Errorf("failed to write constants: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Tax year %d table written to %s\n", c.Year, cc.write)
		return nil
	}

	var (
		data []byte
		err  error
	)
	switch cc.format {
	case "yaml", "yml":
		data, err = yaml.Marshal(c)
	case "json":
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported constants format %q: use yaml or json", cc.format)
	}
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

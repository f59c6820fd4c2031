// Package cli wires the safeharbor command tree.
package cli

import (
	"io"
	"os"

	"github.com/rpgo/safeharbor/internal/config"
	"github.com/rpgo/safeharbor/internal/domain"
	"github.com/rpgo/safeharbor/internal/logging"
	"github.com/rpgo/safeharbor/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
	out     io.Writer

	// set by persistent flags
	configPath    string
	logLevel      string
	constantsFile string
	taxYear       int
	storePath     string

	// built before any subcommand runs
	settings  *config.Settings
	logger    *zap.Logger
	constants *domain.TaxYearConstants
	store     store.Store
	parser    *config.InputParser
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	cli := &CLI{out: opts.Output}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args, for tests
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "safeharbor",
		Short:         "Federal estimated-tax calculator for self-employed filers",
		Long:          "Computes the minimum quarterly estimated tax payment using the Safe Harbor rule or 90% of current-year tax, whichever is lower.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cli.logger != nil {
				_ = cli.logger.Sync()
			}
		},
	}
	cmd.SetOut(cli.out)

	pf := cmd.PersistentFlags()
	pf.StringVar(&cli.configPath, "config", "", "Settings file (default ./safeharbor.yaml if present)")
	pf.StringVar(&cli.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&cli.constantsFile, "constants", "", "YAML tax-year table to use instead of the built-in one")
	pf.IntVar(&cli.taxYear, "tax-year", 0, "Tax year of the built-in table")
	pf.StringVar(&cli.storePath, "store", "", "File holding saved inputs")

	cmd.AddCommand(NewCalculateCmd(cli, "calculate", ""))
	cmd.AddCommand(NewCalculateCmd(cli, "explain", "explain"))
	cmd.AddCommand(NewCalculateCmd(cli, "vouchers", "vouchers"))
	cmd.AddCommand(NewBreakEvenCmd(cli))
	cmd.AddCommand(NewInputsCmd(cli))
	cmd.AddCommand(NewConstantsCmd(cli))
	cmd.AddCommand(NewServeCmd(cli))

	return cmd
}

// setup loads settings and builds the shared collaborators. Flags win over
// settings.
func (cli *CLI) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(cli.configPath)
	if err != nil {
		return err
	}
	if cli.constantsFile != "" {
		settings.ConstantsFile = cli.constantsFile
	}
	if cli.taxYear != 0 {
		settings.TaxYear = cli.taxYear
	}
	if cli.storePath != "" {
		settings.Store.Path = cli.storePath
	}
	cli.settings = settings

	logger, err := logging.New(settings.Logging, cli.logLevel)
	if err != nil {
		return err
	}
	cli.logger = logger
	cli.parser = &config.InputParser{Logger: logger.Sugar()}

	constants, err := cli.parser.ResolveConstants(settings.ConstantsFile, settings.TaxYear)
	if err != nil {
		return err
	}
	cli.constants = constants
	cli.store = store.NewFileStore(settings.Store.Path)

	logger.Debug("configured",
		zap.Int("tax_year", constants.Year),
		zap.String("constants_file", settings.ConstantsFile),
		zap.String("store", settings.Store.Path),
	)
	return nil
}

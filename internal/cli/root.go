package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/ileap/internal/config"
	"github.com/rshade/ileap/internal/logging"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root command of the ileap CLI. It loads the
// configuration, sets up logging and tracing, and registers the
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "ileap",
		Short: "iLEAP logistics emissions and PACT product footprints",
		Long: `ileap converts iLEAP logistics emissions data (shipment footprints, transport
and hub operation categories) into PACT v2 product footprints, publishes the
JSON Schemas of the data model, and generates demo data.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file merged over the loaded configuration")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .ileap/config.yaml")
	cmd.AddCommand(
		NewConvertCmd(), NewSchemaCmd(), NewValidateCmd(), NewDemoCmd(),
		NewSummaryCmd(), NewPfIDCmd(), newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Convert a TOC into a product footprint
  ileap convert --input toc.json --company-name "ACME" --company-urn urn:acme:logistics

  # Write the published JSON Schemas
  ileap schema --dir ./schemas

  # Validate a footprint against its schema
  ileap validate --schema pcf-toc --input footprint.json

  # Generate demo data and summarize it
  ileap demo --size 5 --seed 42 --output table

  # Check a footprint id
  ileap pfid 3f9b8d4e-6a55-4b1e-9d0c-8a2f5b7c1e42`

// loadConfig builds the configuration of this invocation: global file,
// project overlay, then the --config overlay.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()
	projectFlag, _ := cmd.Flags().GetString("project-dir")
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	cfg := config.NewWithProjectDir(ctx, config.ResolveProjectDir(ctx, projectFlag, cwd))

	if overlay, _ := cmd.Flags().GetString("config"); overlay != "" {
		if err := config.ShallowMergeYAML(cfg, overlay); err != nil {
			return fmt.Errorf("loading --config: %w", err)
		}
	}
	config.SetGlobalConfig(cfg)
	return nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}

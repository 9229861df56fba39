package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/ileap/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Long: `Validates the configuration in effect for this invocation: the global file,
the project overlay and any --config overlay, after environment overrides.

This includes:
- Company URN syntax
- Characterization factors (AR5, AR6, no duplicates)
- Output format and precision
- Logging level and format
- Demo size and batch settings`,
		Example: `  # Validate current configuration
  ileap config validate

  # Validate and show detailed information
  ileap config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if err := cfg.Validate(); err != nil {
				return &ExitError{Code: ExitCodeInvalid, Err: fmt.Errorf("configuration validation failed: %w", err)}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
			if verbose {
				printVerboseDetails(cmd.OutOrStdout(), cfg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func printVerboseDetails(w io.Writer, cfg *config.Config) {
	factors := make([]string, len(cfg.Mapping.CharacterizationFactors))
	for i, f := range cfg.Mapping.CharacterizationFactors {
		factors[i] = string(f)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration details:")
	fmt.Fprintf(w, "  Config file: %s\n", cfg.ConfigPath())
	fmt.Fprintf(w, "  Company: %s (%s)\n", cfg.Company.Name, cfg.Company.URN)
	fmt.Fprintf(w, "  Characterization factors: %s\n", strings.Join(factors, ", "))
	fmt.Fprintf(w, "  Output format: %s\n", cfg.Output.DefaultFormat)
	fmt.Fprintf(w, "  Output precision: %d\n", cfg.Output.Precision)
	fmt.Fprintf(w, "  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		fmt.Fprintf(w, "  Log file: %s\n", cfg.Logging.File)
	}
	fmt.Fprintf(w, "  Batch: size %d, concurrency %d\n", cfg.Batch.Size, cfg.Batch.Concurrency)
}

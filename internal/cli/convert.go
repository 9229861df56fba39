package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/ileap/internal/batch"
	"github.com/rshade/ileap/internal/config"
	"github.com/rshade/ileap/internal/logging"
	"github.com/rshade/ileap/pkg/ileap"
	"github.com/rshade/ileap/pkg/pact"
)

type convertFlags struct {
	input       string
	companyName string
	companyURN  string
	factors     []string
	output      string
	batchSize   int
	concurrency int
}

// NewConvertCmd creates the convert command, which maps iLEAP payloads to
// PACT product footprints.
func NewConvertCmd() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert iLEAP payloads into PACT product footprints",
		Long: `Reads a ShipmentFootprint, TOC or HOC, or a JSON array mixing them, and prints
the matching PACT ProductFootprint with the payload as its data model
extension. An array input prints an array in the same order.

Company and characterization factors default to the configuration.`,
		Example: `  # Convert a TOC
  ileap convert --input toc.json --company-name ACME --company-urn urn:acme:logistics

  # Convert many payloads from stdin using AR5 and AR6, as YAML
  cat payloads.json | ileap convert --factor AR5 --factor AR6 --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", stdinPath, "payload file, - for stdin")
	cmd.Flags().StringVar(&flags.companyName, "company-name", "", "reporting company name")
	cmd.Flags().StringVar(&flags.companyURN, "company-urn", "", "reporting company URN")
	cmd.Flags().StringSliceVar(&flags.factors, "factor", nil, "IPCC characterization factors (AR5, AR6)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: json, yaml or table")
	cmd.Flags().IntVar(&flags.batchSize, "batch-size", 0, "payloads per batch")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", 0, "batches converted in parallel")

	return cmd
}

func runConvert(cmd *cobra.Command, flags convertFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	data, err := readInput(cmd, flags.input)
	if err != nil {
		return err
	}
	payloads, err := ileap.DecodePayloads(data)
	if err != nil {
		return invalidInput(fmt.Errorf("decoding payloads: %w", err))
	}
	if len(payloads) == 0 {
		return invalidInput(errors.New("no payloads in input"))
	}

	req := batch.Request{
		CompanyName: stringFlagOr(cmd, "company-name", flags.companyName, cfg.Company.Name),
		CompanyURN:  stringFlagOr(cmd, "company-urn", flags.companyURN, cfg.Company.URN),
		Factors:     characterizationFactors(cmd, flags.factors),
	}
	opts := batch.Options{
		BatchSize:   intFlagOr(cmd, "batch-size", flags.batchSize, cfg.Batch.Size),
		Concurrency: intFlagOr(cmd, "concurrency", flags.concurrency, cfg.Batch.Concurrency),
		Logger:      *log,
		OnProgress: func(s batch.ProgressSnapshot) {
			log.Debug().Ctx(ctx).
				Int("processed", s.ProcessedItems).
				Int("total", s.TotalItems).
				Msg("conversion progress")
		},
	}

	footprints, err := batch.ConvertAll(ctx, payloads, req, opts)
	if err != nil {
		return invalidInput(err)
	}

	format := stringFlagOr(cmd, "output", flags.output, cfg.Output.DefaultFormat)
	if format == config.FormatTable {
		return renderSummary(cmd.OutOrStdout(), footprints, cfg.Output.Precision)
	}
	if isJSONArray(data) {
		return writeOutput(cmd.OutOrStdout(), format, footprints)
	}
	return writeOutput(cmd.OutOrStdout(), format, footprints[0])
}

// invalidInput marks validation failures with ExitCodeInvalid.
func invalidInput(err error) error {
	if errors.Is(err, pact.ErrValidation) || errors.Is(err, ileap.ErrUnknownPayload) {
		return &ExitError{Code: ExitCodeInvalid, Err: err}
	}
	return err
}

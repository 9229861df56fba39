package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/ileap/internal/config"
	"github.com/rshade/ileap/internal/demodata"
	"github.com/rshade/ileap/internal/logging"
)

type demoFlags struct {
	size    int
	seed    uint64
	output  string
	factors []string
}

// NewDemoCmd creates the demo command, which prints a reproducible set of
// demo footprints: shipments, then TOCs, then HOCs.
func NewDemoCmd() *cobra.Command {
	var flags demoFlags

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate demo product footprints",
		Long: `Generates shipment footprints with their transport and hub legs, and the
TOCs and HOCs the legs reference, each wrapped in a PACT product footprint.
The same seed gives the same data set.`,
		Example: `  ileap demo --size 3 --seed 42
  ileap demo --output table`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			log := logging.FromContext(cmd.Context())

			opts := demodata.DefaultOptions()
			opts.Size = intFlagOr(cmd, "size", flags.size, cfg.Demo.Size)
			opts.Seed = cfg.Demo.Seed
			if cmd.Flags().Changed("seed") {
				opts.Seed = flags.seed
			}
			opts.CompanyName = cfg.Company.Name
			opts.CompanyURN = cfg.Company.URN
			opts.Factors = characterizationFactors(cmd, flags.factors)

			ds, err := demodata.Generate(opts, *log)
			if err != nil {
				return err
			}
			footprints := ds.Footprints()
			log.Info().Ctx(cmd.Context()).
				Int("shipments", len(ds.Shipments)).
				Int("tocs", len(ds.TOCs)).
				Int("hocs", len(ds.HOCs)).
				Msg("demo data generated")

			format := stringFlagOr(cmd, "output", flags.output, cfg.Output.DefaultFormat)
			if format == config.FormatTable {
				return renderSummary(cmd.OutOrStdout(), footprints, cfg.Output.Precision)
			}
			return writeOutput(cmd.OutOrStdout(), format, footprints)
		},
	}

	cmd.Flags().IntVar(&flags.size, "size", demodata.DefaultSize, "number of shipments and maximum legs per shipment")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random seed")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: json, yaml or table")
	cmd.Flags().StringSliceVar(&flags.factors, "factor", nil, "IPCC characterization factors (AR5, AR6)")

	return cmd
}

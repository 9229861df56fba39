package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/ileap/internal/logging"
	"github.com/rshade/ileap/internal/schemagen"
	"github.com/rshade/ileap/pkg/ileap"
	"github.com/rshade/ileap/pkg/pact"
)

// NewValidateCmd creates the validate command. A document passes when it
// conforms to the named schema and also decodes into the typed model, which
// enforces the rules a schema cannot express.
func NewValidateCmd() *cobra.Command {
	var (
		schemaName string
		input      string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a document against a published schema",
		Example: `  # Validate a TOC
  ileap validate --schema toc --input toc.json

  # Validate a converted footprint from stdin
  ileap convert -i hoc.json | ileap validate --schema pcf-hoc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.FromContext(cmd.Context())
			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}
			v, err := schemagen.NewValidator()
			if err != nil {
				return err
			}

			name := strings.TrimSuffix(schemaName, ".json")
			if err := v.Validate(name, data); err != nil {
				if errors.Is(err, schemagen.ErrSchemaViolation) {
					return &ExitError{Code: ExitCodeInvalid, Err: err}
				}
				return err
			}
			log.Debug().Ctx(cmd.Context()).Str("schema", name).Msg("schema check passed")

			if err := decodeTyped(name, data); err != nil {
				return invalidInput(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaName, "schema", "", "schema name, e.g. toc or pcf-shipment-footprint")
	cmd.Flags().StringVarP(&input, "input", "i", stdinPath, "document file, - for stdin")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

// decodeTyped decodes data into the model type behind the schema name.
func decodeTyped(name string, data []byte) error {
	var err error
	switch name {
	case "tad":
		var tad ileap.Tad
		err = json.Unmarshal(data, &tad)
	case "pcf-tad":
		_, err = pact.Decode[ileap.Tad](data)
	case schemagen.DataModelSchema:
		_, err = pact.Decode[json.RawMessage](data)
	default:
		if strings.HasPrefix(name, "pcf-") {
			_, err = pact.Decode[ileap.AnyPayload](data)
		} else {
			_, err = ileap.DecodePayload(data)
		}
	}
	if err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

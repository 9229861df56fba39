package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ileap/internal/config"
	"github.com/rshade/ileap/pkg/pact"
)

// ErrUnsupportedFormat is returned for an unknown --output value.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// stdinPath selects standard input for --input.
const stdinPath = "-"

// readInput reads path, or the command's stdin for "" and "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// isJSONArray reports whether data holds a JSON array.
func isJSONArray(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// writeOutput encodes v as JSON or YAML.
func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case config.FormatYAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// writeYAML renders v through its JSON encoding, so the JSON wire names and
// string-encoded decimals carry over, and keeps the member order.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("converting to YAML: %w", err)
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// blockStyle turns the flow collections parsed from JSON into block ones
// and unquotes mapping keys. String values stay quoted.
func blockStyle(n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode:
		n.Style = 0
		for i := 0; i+1 < len(n.Content); i += 2 {
			n.Content[i].Style = 0
			blockStyle(n.Content[i+1])
		}
	case yaml.DocumentNode, yaml.SequenceNode:
		n.Style = 0
		for _, c := range n.Content {
			blockStyle(c)
		}
	}
}

// characterizationFactors returns the --factor values, or the configured
// ones when the flag was not given.
func characterizationFactors(cmd *cobra.Command, flagValues []string) []pact.CharacterizationFactors {
	if !cmd.Flags().Changed("factor") {
		return config.GetGlobalConfig().Mapping.CharacterizationFactors
	}
	out := make([]pact.CharacterizationFactors, len(flagValues))
	for i, f := range flagValues {
		out[i] = pact.CharacterizationFactors(f)
	}
	return out
}

// stringFlagOr returns the flag value if it was set, fallback otherwise.
func stringFlagOr(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

// intFlagOr returns the flag value if it was set, fallback otherwise.
func intFlagOr(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

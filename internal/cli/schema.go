package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/ileap/internal/schemagen"
)

// NewSchemaCmd creates the schema command, which lists, prints or writes
// the published JSON Schemas.
func NewSchemaCmd() *cobra.Command {
	var (
		dir  string
		name string
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "List, print or write the JSON Schemas of the data model",
		Example: `  # List the schema files
  ileap schema

  # Print one schema
  ileap schema --name pcf-shipment-footprint

  # Write all schemas to a directory
  ileap schema --dir ./schemas`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case dir != "":
				files, err := schemagen.WriteAll(cmd.Context(), dir)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			case name != "":
				return printSchema(cmd, name)
			default:
				for _, doc := range schemagen.Documents() {
					fmt.Fprintln(cmd.OutOrStdout(), doc.FileName())
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to write the schema files to")
	cmd.Flags().StringVar(&name, "name", "", "print the named schema, e.g. toc or pcf-toc")
	cmd.MarkFlagsMutuallyExclusive("dir", "name")

	return cmd
}

func printSchema(cmd *cobra.Command, name string) error {
	name = strings.TrimSuffix(name, ".json")
	for _, doc := range schemagen.Documents() {
		if doc.Name != name {
			continue
		}
		data, err := schemagen.Encode(doc.Schema)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return fmt.Errorf("%w: %q", schemagen.ErrUnknownSchema, name)
}

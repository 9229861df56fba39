package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/ileap/pkg/pact"
)

// NewPfIDCmd creates the pfid command, which checks product footprint ids
// and prints them in canonical form.
func NewPfIDCmd() *cobra.Command {
	var generate bool

	cmd := &cobra.Command{
		Use:   "pfid [id...]",
		Short: "Check or generate product footprint ids",
		Long: `Checks that each argument is a version 4 UUID and prints its canonical
lowercase form. Exits with 2 for a malformed id and 3 for a UUID of another
version. With --new, prints a fresh id instead.`,
		Example: `  ileap pfid 3F9B8D4E-6A55-4B1E-9D0C-8A2F5B7C1E42
  ileap pfid --new`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generate {
				id, err := pact.NewPfID()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id.String())
				return nil
			}
			if len(args) == 0 {
				return errors.New("requires at least one id, or --new")
			}
			for _, arg := range args {
				id, err := pact.ParsePfID(arg)
				if err != nil {
					return pfidExitError(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), id.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&generate, "new", false, "generate a new id")

	return cmd
}

func pfidExitError(err error) error {
	if errors.Is(err, pact.ErrPfIDNotV4) {
		return &ExitError{Code: ExitCodeWrongVersion, Err: err}
	}
	return &ExitError{Code: ExitCodeInvalid, Err: err}
}

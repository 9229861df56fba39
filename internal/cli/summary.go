package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/ileap/internal/cli/pagination"
	"github.com/rshade/ileap/internal/config"
	"github.com/rshade/ileap/internal/greenops"
	"github.com/rshade/ileap/internal/tui"
	"github.com/rshade/ileap/pkg/ileap"
	"github.com/rshade/ileap/pkg/pact"
)

type footprint = tui.Footprint

//nolint:gochecknoglobals // immutable comparator table
var summarySorter = pagination.NewSorter(tui.Comparators())

// NewSummaryCmd creates the summary command, which tabulates product
// footprints with their emissions and everyday equivalencies.
func NewSummaryCmd() *cobra.Command {
	var (
		input       string
		interactive bool
		page        pagination.Params
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Tabulate product footprints and their emissions",
		Example: `  # Summarize converted footprints, largest emitters first
  ileap summary --input footprints.json --sort emissions:desc

  # Second page of ten
  ileap demo --size 20 | ileap summary --page 2 --page-size 10

  # Browse footprints interactively
  ileap summary --input footprints.json --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := page.Validate(); err != nil {
				return err
			}
			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}
			footprints, err := decodeFootprints(data)
			if err != nil {
				return invalidInput(err)
			}
			precision := config.GetGlobalConfig().Output.Precision
			if interactive {
				return runBrowser(cmd, footprints, precision, input == "" || input == stdinPath)
			}

			rows, err := summarySorter.Sort(tui.NewRows(footprints), page.Sort)
			if err != nil {
				return err
			}
			total := len(rows)
			rows = pagination.Apply(page, rows)

			if err := writeSummary(cmd.OutOrStdout(), rows, int32(precision)); err != nil { //nolint:gosec // bounded by config validation
				return err
			}
			if page.Limit > 0 || page.IsPageBased() {
				meta := pagination.NewMeta(page, total)
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Page %d of %d (%d footprints)\n",
					meta.CurrentPage, meta.TotalPages, meta.TotalItems)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinPath, "footprint file, - for stdin")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "browse the footprints in a terminal UI")
	page.AddFlags(cmd)
	cmd.MarkFlagsMutuallyExclusive("interactive", "sort")

	return cmd
}

// decodeFootprints reads one footprint or an array of them.
func decodeFootprints(data []byte) ([]*footprint, error) {
	if isJSONArray(data) {
		var out []*footprint
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decoding footprints: %w", err)
		}
		return out, nil
	}
	fp, err := pact.Decode[ileap.AnyPayload](data)
	if err != nil {
		return nil, fmt.Errorf("decoding footprint: %w", err)
	}
	return []*footprint{fp}, nil
}

// ErrNotTerminal is returned by --interactive when stdout is not a terminal.
var ErrNotTerminal = errors.New("interactive mode requires a terminal")

// runBrowser opens the footprint browser. When the footprints came from
// stdin, keys are read from the controlling terminal instead.
func runBrowser(cmd *cobra.Command, footprints []*footprint, precision int, fromStdin bool) error {
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !isTerminal(out) {
		return ErrNotTerminal
	}
	opts := []tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	}
	if fromStdin {
		opts = append(opts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(tui.NewBrowser(footprints, precision), opts...).Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

// renderSummary prints the whole summary table of footprints.
func renderSummary(w io.Writer, footprints []*footprint, precision int) error {
	return writeSummary(w, tui.NewRows(footprints), int32(precision)) //nolint:gosec // bounded by config validation
}

func writeSummary(w io.Writer, rows []tui.Row, places int32) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tPAYLOAD\tUNIT\tAMOUNT\tKG CO2E\tEQUIVALENT")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Kind, r.PayloadID, r.Unit,
			greenops.FormatDecimal(r.Amount, places),
			greenops.FormatDecimal(r.Emissions, places),
			r.Equivalency)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// Style the aligned heading line only, so escapes don't skew the columns.
	heading, body, _ := strings.Cut(buf.String(), "\n")
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		heading = lipgloss.NewStyle().Bold(true).Render(heading)
	}
	if _, err := fmt.Fprintf(w, "%s\n%s", heading, body); err != nil {
		return err
	}

	total := tui.TotalEmissions(rows)
	if _, err := fmt.Fprintf(w, "\nTotal: %s kg CO2e\n", greenops.FormatDecimal(total, places)); err != nil {
		return err
	}
	eq, err := greenops.Calculate(greenops.CarbonInput{Value: total, Unit: "kg"})
	if err == nil && !eq.IsEmpty {
		_, err = fmt.Fprintln(w, eq.DisplayText)
	}
	return err
}

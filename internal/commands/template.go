package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerform/internal/importer"
	"github.com/cleared-dev/ledgerform/internal/model"
)

func newTemplateCommand(configPath *string) *cobra.Command {
	var rows int
	var format string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print a blank grid to fill in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			n := a.layout.InitialRows
			if cmd.Flags().Changed("rows") {
				n = rows
			}
			return runTemplate(cmd.OutOrStdout(), a, n, format)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "number of blank rows (default from config)")
	cmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json)")

	return cmd
}

func runTemplate(out io.Writer, a *app, rows int, format string) error {
	if rows < 0 {
		return fmt.Errorf("rows must be >= 0, got %d", rows)
	}
	p := importer.DefaultRegistry().Get(format)
	w, ok := p.(importer.Writer)
	if !ok {
		return fmt.Errorf("unknown grid format %q", format)
	}
	grid := a.layout.BlankGrid()
	if rows != len(grid) {
		grid = model.NewGrid(rows)
	}
	return w.Write(out, grid)
}

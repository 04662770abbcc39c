package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerform/internal/importer"
	"github.com/cleared-dev/ledgerform/internal/ledger"
)

func newExportCommand(configPath *string) *cobra.Command {
	var format string
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <grid-file>",
		Short: "Validate a filled-in grid and write the ledger CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			gridPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if outDir == "" {
				outDir = a.resolve(a.cfg.Export.Dir)
			}
			return runExport(cmd.OutOrStdout(), a, gridPath, format, outDir)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "grid format (csv, json; default from extension)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default export.dir from config)")

	return cmd
}

func runExport(out io.Writer, a *app, gridPath, format, outDir string) error {
	grid, err := importer.DefaultRegistry().ReadFile(gridPath, format)
	if err != nil {
		return err
	}
	if err := a.layout.CheckGrid(grid); err != nil {
		return fmt.Errorf("%s: %w", gridPath, err)
	}

	doc, err := a.ledger.Save(grid)
	if err != nil {
		if msg, ok := ledger.Warning(err, a.ledger.Options().Labels); ok {
			return errors.New(msg)
		}
		return err
	}

	path, err := ledger.WriteFile(outDir, doc)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, doc.Message)
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

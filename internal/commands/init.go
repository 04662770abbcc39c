package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerform/internal/accounts"
	"github.com/cleared-dev/ledgerform/internal/config"
	"github.com/cleared-dev/ledgerform/internal/form"
	"github.com/cleared-dev/ledgerform/internal/importer"
	"github.com/cleared-dev/ledgerform/internal/model"
)

const (
	accountsFile = "accounts.csv"
	gridFile     = "grid.csv"
)

func newInitCommand() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledgerform project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, locale)
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "en", "form locale (en, ja)")

	return cmd
}

func runInit(out io.Writer, dir, locale string) error {
	if _, err := form.LabelsFor(locale); err != nil {
		return err
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	cfg := config.Default(locale)
	cfg.AccountsFile = accountsFile

	// Create directory structure.
	if err := os.MkdirAll(filepath.Join(dir, cfg.Export.Dir), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", cfg.Export.Dir, err)
	}

	// Write ledgerform.yaml.
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the account list.
	chart, err := accounts.NewService(accounts.DefaultChart(locale))
	if err != nil {
		return err
	}
	if err := chart.Save(filepath.Join(dir, accountsFile)); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}

	// Write a blank grid to fill in.
	f, err := os.Create(filepath.Join(dir, gridFile))
	if err != nil {
		return fmt.Errorf("creating grid: %w", err)
	}
	defer f.Close()
	if err := (&importer.CSVParser{}).Write(f, model.NewGrid(cfg.Form.InitialRows)); err != nil {
		return fmt.Errorf("writing grid: %w", err)
	}

	fmt.Fprintf(out, "Initialized ledgerform project at %s\n", dir)
	return nil
}

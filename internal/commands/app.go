package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/ledgerform/internal/accounts"
	"github.com/cleared-dev/ledgerform/internal/config"
	"github.com/cleared-dev/ledgerform/internal/form"
	"github.com/cleared-dev/ledgerform/internal/ledger"
	"github.com/cleared-dev/ledgerform/internal/logging"
)

// app is the wiring shared by commands that run the save action.
type app struct {
	cfg     *config.Config
	baseDir string // directory of the config file
	layout  *form.Layout
	ledger  *ledger.Service
	logger  zerolog.Logger
}

func loadApp(configPath string, logOut io.Writer) (*app, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.LoadOrDefault(absPath)
	if err != nil {
		return nil, err
	}
	baseDir := filepath.Dir(absPath)

	logger, err := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	chart, err := loadChart(cfg, baseDir)
	if err != nil {
		return nil, err
	}

	labels := cfg.Labels()
	layout, err := form.New(labels, chart, cfg.Form.AmountStep, cfg.Form.InitialRows)
	if err != nil {
		return nil, fmt.Errorf("form configuration: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("export timezone: %w", err)
	}

	svc := ledger.NewService(ledger.ExportOptions{
		Labels:         labels,
		Location:       loc,
		FilenamePrefix: cfg.Export.FilenamePrefix,
	}, ledger.WithLogger(logger))

	return &app{
		cfg:     cfg,
		baseDir: baseDir,
		layout:  layout,
		ledger:  svc,
		logger:  logger,
	}, nil
}

func loadChart(cfg *config.Config, baseDir string) (*accounts.Service, error) {
	if cfg.AccountsFile == "" {
		return accounts.NewService(accounts.DefaultChart(cfg.Form.Locale))
	}
	path := cfg.AccountsFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return accounts.Load(path)
}

// resolve makes p relative to the config directory unless it is absolute.
func (a *app) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.baseDir, p)
}

package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/ledgerform/internal/model"
)

// Service runs the save action: filter, validate, export.
// It holds no grid state; every call works on the snapshot it is given.
type Service struct {
	opts   ExportOptions
	now    func() time.Time
	logger zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the source of the export timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger for save outcomes.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService creates a Service.
func NewService(opts ExportOptions, options ...Option) *Service {
	s := &Service{opts: opts, now: time.Now, logger: zerolog.Nop()}
	for _, o := range options {
		o(s)
	}
	return s
}

// Options returns the export options the service renders with.
func (s *Service) Options() ExportOptions { return s.opts }

// Save exports the non-empty rows of grid. It returns a *NoDataError or an
// *IncompleteRowError when the grid cannot be saved; grid is not modified.
func (s *Service) Save(grid model.Grid) (*Document, error) {
	rows := FilterNonEmpty(grid.Clone())

	doc, err := ValidateAndExport(rows, s.now(), s.opts)
	if err != nil {
		var incomplete *IncompleteRowError
		switch {
		case errors.As(err, &incomplete):
			s.logger.Info().
				Int("position", incomplete.Position).
				Int("grid_position", incomplete.GridPosition).
				Strs("missing", incomplete.Missing).
				Msg("save rejected: incomplete row")
		case errors.Is(err, ErrNoData):
			s.logger.Info().Int("grid_rows", len(grid)).Msg("save rejected: no data")
		default:
			s.logger.Error().Err(err).Msg("save failed")
		}
		return nil, err
	}

	s.logger.Info().
		Int("rows", doc.Count).
		Str("filename", doc.Filename).
		Str("recorded_on", doc.RecordedOn).
		Msg("export ready")
	return doc, nil
}

// WriteFile writes doc into dir and returns the file path.
func WriteFile(dir string, doc *Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

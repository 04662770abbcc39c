package ledger

import (
	"bytes"
	"fmt"
	"time"

	"github.com/cleared-dev/ledgerform/internal/form"
	"github.com/cleared-dev/ledgerform/internal/model"
)

// ExportOptions controls the rendering of an export.
type ExportOptions struct {
	Labels         form.Labels
	Location       *time.Location // nil means time.Local
	FilenamePrefix string         // empty means Labels.FilenamePrefix
}

// Document is a validated, serialized export ready for download.
type Document struct {
	Filename      string
	Content       []byte
	Count         int
	RecordedOn    string
	Message       string
	DownloadLabel string
}

// MIMEType is the content type of Document.Content.
const MIMEType = "text/csv"

// Validate returns an error for the first row that is not complete, or a
// NoDataError when there are no rows.
func Validate(rows []FilteredRow) error {
	if len(rows) == 0 {
		return &NoDataError{}
	}
	for _, fr := range rows {
		if missing := fr.Row.Missing(); len(missing) > 0 {
			return &IncompleteRowError{
				Position:     fr.Position,
				GridPosition: fr.GridPosition,
				Missing:      missing,
			}
		}
	}
	return nil
}

// ValidateAndExport checks rows in order, stopping at the first incomplete
// one, and serializes them when all are complete. now stamps the recorded-on
// column and the filename.
func ValidateAndExport(rows []FilteredRow, now time.Time, opts ExportOptions) (*Document, error) {
	if err := Validate(rows); err != nil {
		return nil, err
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	recordedOn := model.DateOf(now).Format(recordedFormat)

	records := make([][]string, len(rows))
	for i, fr := range rows {
		records[i] = MarshalRow(recordedOn, fr.Row, opts.Labels)
	}

	var buf bytes.Buffer
	if err := WriteRecords(&buf, opts.Labels.Header(), records); err != nil {
		return nil, fmt.Errorf("serializing export: %w", err)
	}

	return &Document{
		Filename:      Filename(opts.prefix(), now),
		Content:       buf.Bytes(),
		Count:         len(rows),
		RecordedOn:    recordedOn,
		Message:       fmt.Sprintf(opts.Labels.Saved, len(rows)),
		DownloadLabel: fmt.Sprintf(opts.Labels.Download, len(rows)),
	}, nil
}

// Filename returns "{prefix}_{YYYYMMDD}_{HHmm}.csv".
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format("20060102_1504"))
}

func (o ExportOptions) prefix() string {
	if o.FilenamePrefix != "" {
		return o.FilenamePrefix
	}
	if o.Labels.FilenamePrefix != "" {
		return o.Labels.FilenamePrefix
	}
	return "ledger"
}

package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerform/internal/form"
	"github.com/cleared-dev/ledgerform/internal/model"
)

// CSVParser reads grids saved as CSV with a date,category,account,amount,memo header.
type CSVParser struct{}

// Header is the CSV header of a grid file.
const Header = "date,category,account,amount,memo"

const (
	numFields   = 5
	colDate     = 0
	colCategory = 1
	colAccount  = 2
	colAmount   = 3
	colMemo     = 4
	bom         = "\ufeff"
)

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a grid CSV. Rows with every cell empty are kept as blank rows.
func (p *CSVParser) Parse(r io.Reader) (model.Grid, error) {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(bom)); err == nil && bytes.Equal(lead, []byte(bom)) {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading grid CSV: %w", err)
	}

	if len(records) <= 1 {
		return model.Grid{}, nil
	}

	grid := make(model.Grid, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := parseCSVRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// Write writes grid as CSV, including the header.
func (p *CSVParser) Write(w io.Writer, grid model.Grid) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range grid {
		if err := cw.Write(marshalCSVRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseCSVRow(rec []string) (model.TransactionRow, error) {
	date, err := model.ParseDate(rec[colDate])
	if err != nil {
		return model.TransactionRow{}, err
	}

	amount := decimal.Zero
	if s := strings.ReplaceAll(strings.TrimSpace(rec[colAmount]), ",", ""); s != "" {
		amount, err = decimal.NewFromString(s)
		if err != nil {
			return model.TransactionRow{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
		}
	}

	return model.TransactionRow{
		Date:     date,
		Category: form.ParseCategory(strings.TrimSpace(rec[colCategory])),
		Account:  strings.TrimSpace(rec[colAccount]),
		Amount:   amount,
		Memo:     rec[colMemo],
	}, nil
}

func marshalCSVRow(row model.TransactionRow) []string {
	rec := make([]string, numFields)
	rec[colDate] = row.Date.String()
	rec[colCategory] = string(row.Category)
	rec[colAccount] = row.Account
	if !row.Amount.IsZero() {
		rec[colAmount] = row.Amount.String()
	}
	rec[colMemo] = row.Memo
	return rec
}

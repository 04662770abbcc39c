package ledger

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cleared-dev/ledgerform/internal/form"
	"github.com/cleared-dev/ledgerform/internal/model"
)

// BOM is written first so spreadsheet tools detect UTF-8.
const BOM = "\ufeff"

const (
	numFields      = 6
	colRecorded    = 0
	colDate        = 1
	colCategory    = 2
	colAccount     = 3
	colAmount      = 4
	colMemo        = 5
	recordedFormat = model.DisplayFormat
)

// FormatAmount renders a whole amount with thousands separators: 12000 -> "12,000".
// Any fractional part is dropped.
func FormatAmount(amount decimal.Decimal) string {
	whole := amount.Truncate(0).BigInt()
	if !whole.IsInt64() {
		return groupDigits(whole.String())
	}
	return message.NewPrinter(language.English).Sprintf("%d", whole.Int64())
}

// groupDigits inserts commas every three digits of a base-10 integer string.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	return sign + b.String()
}

// MarshalRow converts a complete row to its export record.
func MarshalRow(recordedOn string, row model.TransactionRow, labels form.Labels) []string {
	rec := make([]string, numFields)
	rec[colRecorded] = recordedOn
	rec[colDate] = row.Date.Format(model.DisplayFormat)
	rec[colCategory] = labels.CategoryLabel(row.Category)
	rec[colAccount] = row.Account
	rec[colAmount] = FormatAmount(row.Amount)
	rec[colMemo] = row.Memo
	return rec
}

// WriteRecords writes the BOM, the header and the records.
func WriteRecords(w io.Writer, header []string, records [][]string) error {
	if _, err := io.WriteString(w, BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRecords reads an exported document back, dropping a leading BOM.
func ReadRecords(r io.Reader) (header []string, records [][]string, err error) {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(BOM)); err == nil && bytes.Equal(lead, []byte(BOM)) {
		_, _ = br.Discard(len(BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = numFields

	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading export CSV: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

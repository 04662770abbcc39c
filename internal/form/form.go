package form

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerform/internal/model"
)

// Kind selects the cell editor for a column.
type Kind string

const (
	KindDate   Kind = "date"
	KindSelect Kind = "select"
	KindNumber Kind = "number"
	KindText   Kind = "text"
)

// Option is one choice of a select column.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldSpec configures one grid column.
type FieldSpec struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Kind     Kind     `json:"kind"`
	Required bool     `json:"required"`
	Format   string   `json:"format,omitempty"` // date display format
	Options  []Option `json:"options,omitempty"`
	Min      int64    `json:"min"`
	Step     int64    `json:"step,omitempty"`
}

// Layout is the validated column configuration of the entry grid.
type Layout struct {
	Fields      []FieldSpec `json:"fields"`
	InitialRows int         `json:"initial_rows"`
	DynamicRows bool        `json:"dynamic_rows"`

	accounts Chart
}

// Chart is the account list backing the account column.
type Chart interface {
	Names() []string
	Exists(name string) bool
}

// maxAmount is the largest amount the grid accepts.
var maxAmount = decimal.NewFromInt(math.MaxInt64)

// Fields builds the five column specs in display order. Required marks the
// fields a row needs to be complete; every cell may be left blank while
// editing.
func Fields(labels Labels, accountNames []string, step int64) []FieldSpec {
	categories := make([]Option, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		categories = append(categories, Option{Value: string(c), Label: labels.CategoryLabel(c)})
	}
	accountOpts := make([]Option, len(accountNames))
	for i, name := range accountNames {
		accountOpts[i] = Option{Value: name, Label: name}
	}

	return []FieldSpec{
		{Name: model.FieldDate, Label: labels.TransactionDate, Kind: KindDate, Required: true, Format: "YYYY/MM/DD"},
		{Name: model.FieldCategory, Label: labels.Category, Kind: KindSelect, Required: true, Options: categories},
		{Name: model.FieldAccount, Label: labels.Account, Kind: KindSelect, Required: true, Options: accountOpts},
		{Name: model.FieldAmount, Label: labels.AmountInput, Kind: KindNumber, Required: true, Min: 0, Step: step},
		{Name: model.FieldMemo, Label: labels.Memo, Kind: KindText},
	}
}

// New builds and validates a Layout.
func New(labels Labels, accounts Chart, step int64, initialRows int) (*Layout, error) {
	if initialRows < 0 {
		return nil, fmt.Errorf("initial rows must be >= 0, got %d", initialRows)
	}
	fields := Fields(labels, accounts.Names(), step)
	if err := Validate(fields); err != nil {
		return nil, err
	}
	return &Layout{Fields: fields, InitialRows: initialRows, DynamicRows: true, accounts: accounts}, nil
}

// Validate checks a set of field specs for configuration mistakes.
func Validate(fields []FieldSpec) error {
	if len(fields) == 0 {
		return errors.New("no fields configured")
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return errors.New("field with empty name")
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate field %q", f.Name)
		}
		seen[f.Name] = true

		switch f.Kind {
		case KindDate, KindText:
		case KindSelect:
			if len(f.Options) == 0 {
				return fmt.Errorf("field %q: select has no options", f.Name)
			}
			values := make(map[string]bool, len(f.Options))
			for _, o := range f.Options {
				if o.Value == "" {
					return fmt.Errorf("field %q: option with empty value", f.Name)
				}
				if values[o.Value] {
					return fmt.Errorf("field %q: duplicate option %q", f.Name, o.Value)
				}
				values[o.Value] = true
			}
		case KindNumber:
			if f.Min < 0 {
				return fmt.Errorf("field %q: min must be >= 0, got %d", f.Name, f.Min)
			}
			if f.Step <= 0 {
				return fmt.Errorf("field %q: step must be > 0, got %d", f.Name, f.Step)
			}
		default:
			return fmt.Errorf("field %q: unknown kind %q", f.Name, f.Kind)
		}
	}
	return nil
}

// BlankGrid returns a fresh grid with the configured number of blank rows.
func (l *Layout) BlankGrid() model.Grid {
	return model.NewGrid(l.InitialRows)
}

// Field returns the column named name.
func (l *Layout) Field(name string) (FieldSpec, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// CheckRow rejects values no editor could have produced: unknown select
// options and amounts that are negative, fractional or too large. Unset
// fields are fine.
func (l *Layout) CheckRow(row model.TransactionRow) error {
	if row.Category != model.CategoryNone && !l.hasOption(model.FieldCategory, string(row.Category)) {
		return fmt.Errorf("unknown category %q", row.Category)
	}
	if row.Account != "" && !l.accounts.Exists(row.Account) {
		return fmt.Errorf("unknown account %q", row.Account)
	}
	if amount, ok := l.Field(model.FieldAmount); ok {
		if row.Amount.LessThan(decimal.NewFromInt(amount.Min)) {
			return fmt.Errorf("amount %s below minimum %d", row.Amount, amount.Min)
		}
	}
	if row.Amount.GreaterThan(maxAmount) {
		return fmt.Errorf("amount %s exceeds maximum %s", row.Amount, maxAmount)
	}
	if !row.Amount.Equal(row.Amount.Truncate(0)) {
		return fmt.Errorf("amount %s is not a whole number", row.Amount)
	}
	return nil
}

// CheckGrid runs CheckRow on every row and reports the first failure with
// its 1-based grid position.
func (l *Layout) CheckGrid(grid model.Grid) error {
	for i, row := range grid {
		if err := l.CheckRow(row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}

func (l *Layout) hasOption(field, value string) bool {
	f, ok := l.Field(field)
	if !ok {
		return false
	}
	for _, o := range f.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

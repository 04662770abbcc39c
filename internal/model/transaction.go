package model

import (
	"github.com/shopspring/decimal"
)

// Required field names, in the order the form displays them.
const (
	FieldDate     = "date"
	FieldCategory = "category"
	FieldAccount  = "account"
	FieldAmount   = "amount"
	FieldMemo     = "memo"
)

// TransactionRow is one editable line of the entry grid.
type TransactionRow struct {
	Date     Date            `json:"date"`
	Category Category        `json:"category"`
	Account  string          `json:"account"`
	Amount   decimal.Decimal `json:"amount"` // whole units; zero = not entered
	Memo     string          `json:"memo"`
}

// IsEmpty reports whether nothing at all was entered on the row.
func (r TransactionRow) IsEmpty() bool {
	return r.Date.IsZero() &&
		r.Category == CategoryNone &&
		r.Account == "" &&
		r.Amount.IsZero() &&
		r.Memo == ""
}

// IsComplete reports whether every required field is set. Memo is optional.
func (r TransactionRow) IsComplete() bool {
	return len(r.Missing()) == 0
}

// Missing returns the required fields that are unset, in display order.
func (r TransactionRow) Missing() []string {
	var missing []string
	if r.Date.IsZero() {
		missing = append(missing, FieldDate)
	}
	if r.Category == CategoryNone {
		missing = append(missing, FieldCategory)
	}
	if r.Account == "" {
		missing = append(missing, FieldAccount)
	}
	if !r.Amount.IsPositive() {
		missing = append(missing, FieldAmount)
	}
	return missing
}

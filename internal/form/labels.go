package form

import (
	"fmt"

	"github.com/cleared-dev/ledgerform/internal/model"
)

// Labels holds every piece of user-visible text for one locale preset.
// Message fields are fmt formats taking a single integer.
type Labels struct {
	Title        string
	Instructions string
	SaveButton   string

	RecordedDate    string
	TransactionDate string
	Category        string
	Account         string
	Amount          string
	AmountInput     string
	Memo            string

	Income  string
	Expense string

	NoData        string
	IncompleteRow string // row position
	Saved         string // row count
	Download      string // row count

	FilenamePrefix string
}

// Locales lists the built-in presets.
func Locales() []string { return []string{"en", "ja"} }

// LabelsFor returns the preset for locale, or an error for unknown locales.
func LabelsFor(locale string) (Labels, error) {
	switch locale {
	case "", "en":
		return english, nil
	case "ja":
		return japanese, nil
	default:
		return Labels{}, fmt.Errorf("unknown locale %q", locale)
	}
}

// CategoryLabel returns the display text of a category.
func (l Labels) CategoryLabel(c model.Category) string {
	switch c {
	case model.CategoryIncome:
		return l.Income
	case model.CategoryExpense:
		return l.Expense
	default:
		return string(c)
	}
}

// ParseCategory maps a category as typed in a grid file to its wire value.
// The display text of any preset is accepted; other input is returned as is.
func ParseCategory(s string) model.Category {
	for _, locale := range Locales() {
		l, _ := LabelsFor(locale)
		switch s {
		case l.Income:
			return model.CategoryIncome
		case l.Expense:
			return model.CategoryExpense
		}
	}
	return model.Category(s)
}

// Header returns the export column labels in output order.
func (l Labels) Header() []string {
	return []string{l.RecordedDate, l.TransactionDate, l.Category, l.Account, l.Amount, l.Memo}
}

var english = Labels{
	Title:        "Simple ledger",
	Instructions: "Enter transactions in the table below. Empty rows are ignored.",
	SaveButton:   "Save",

	RecordedDate:    "recordedDate",
	TransactionDate: "transactionDate",
	Category:        "category",
	Account:         "account",
	Amount:          "amount",
	AmountInput:     "amount",
	Memo:            "memo",

	Income:  "income",
	Expense: "expense",

	NoData:        "nothing to save.",
	IncompleteRow: "row %d has missing fields.",
	Saved:         "saving %d rows.",
	Download:      "download %d rows",

	FilenamePrefix: "ledger",
}

var japanese = Labels{
	Title:        "簡易会計アプリ",
	Instructions: "取引情報を表形式でまとめて入力してください。",
	SaveButton:   "保存する",

	RecordedDate:    "記帳日",
	TransactionDate: "取引日",
	Category:        "区分",
	Account:         "科目",
	Amount:          "金額",
	AmountInput:     "金額（円）",
	Memo:            "摘要",

	Income:  "収入",
	Expense: "支出",

	NoData:        "保存するデータがありません。",
	IncompleteRow: "%d行目に入力していない項目があります。",
	Saved:         "%d件のデータを保存します。",
	Download:      "%d件のデータをダウンロード",

	FilenamePrefix: "帳簿",
}

package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerform/internal/form"
	"github.com/cleared-dev/ledgerform/internal/model"
)

var fixedNow = time.Date(2025, 3, 14, 9, 5, 30, 0, time.UTC)

func row(t *testing.T, date string, category model.Category, account string, amount int64, memo string) model.TransactionRow {
	t.Helper()
	d, err := model.ParseDate(date)
	require.NoError(t, err)
	return model.TransactionRow{
		Date:     d,
		Category: category,
		Account:  account,
		Amount:   decimal.NewFromInt(amount),
		Memo:     memo,
	}
}

func englishOptions(t *testing.T) ExportOptions {
	t.Helper()
	labels, err := form.LabelsFor("en")
	require.NoError(t, err)
	return ExportOptions{Labels: labels, Location: time.UTC}
}

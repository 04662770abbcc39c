package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerform/internal/model"
)

const sampleCSV = `date,category,account,amount,memo
2024-01-05,income,sales,"5,000",jan sale
,,,,
2024/01/06,expense,,2000,
`

func TestCSVParser_Parse(t *testing.T) {
	grid, err := (&CSVParser{}).Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, grid, 3)

	assert.Equal(t, model.NewDate(2024, 1, 5), grid[0].Date)
	assert.Equal(t, model.CategoryIncome, grid[0].Category)
	assert.Equal(t, "sales", grid[0].Account)
	assert.True(t, decimal.NewFromInt(5000).Equal(grid[0].Amount))
	assert.Equal(t, "jan sale", grid[0].Memo)

	assert.True(t, grid[1].IsEmpty())

	assert.Equal(t, model.NewDate(2024, 1, 6), grid[2].Date)
	assert.Equal(t, "", grid[2].Account)
}

func TestCSVParser_BOM(t *testing.T) {
	grid, err := (&CSVParser{}).Parse(strings.NewReader(bom + sampleCSV))
	require.NoError(t, err)
	assert.Len(t, grid, 3)
}

func TestCSVParser_JapaneseCategories(t *testing.T) {
	in := Header + "\n2024/02/01,支出,消耗品費,1200,文具\n2024/02/02,収入,売上高,5000,\n"
	grid, err := (&CSVParser{}).Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, grid, 2)

	assert.Equal(t, model.CategoryExpense, grid[0].Category)
	assert.Equal(t, model.CategoryIncome, grid[1].Category)
	assert.True(t, grid[0].IsComplete())
}

func TestCSVParser_BadValues(t *testing.T) {
	_, err := (&CSVParser{}).Parse(strings.NewReader(Header + "\n05/01/2024,income,sales,100,\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	_, err = (&CSVParser{}).Parse(strings.NewReader(Header + "\n,income,sales,ten,\n"))
	assert.ErrorContains(t, err, "amount")
}

func TestCSVParser_RoundTrip(t *testing.T) {
	p := &CSVParser{}
	grid, err := p.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf, grid))

	got, err := p.Parse(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(grid))
	for i := range grid {
		assert.Equal(t, grid[i].Date, got[i].Date)
		assert.Equal(t, grid[i].Account, got[i].Account)
		assert.True(t, grid[i].Amount.Equal(got[i].Amount))
	}
}

func TestJSONParser(t *testing.T) {
	p := &JSONParser{}
	grid, err := p.Parse(strings.NewReader(`{"rows":[{"date":"2024-02-01","category":"expense","account":"supplies","amount":300,"memo":"pens"},{}]}`))
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.True(t, grid[0].IsComplete())
	assert.True(t, grid[1].IsEmpty())

	_, err = p.Parse(strings.NewReader(`{"rows":[{"colour":"red"}]}`))
	assert.Error(t, err, "unknown fields are rejected")

	grid, err = p.Parse(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, grid)
	assert.Empty(t, grid)
}

func TestJSONParser_WriteBlank(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONParser{}).Write(&buf, model.NewGrid(2)))

	grid, err := (&JSONParser{}).Parse(&buf)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.True(t, grid[0].IsEmpty())
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"csv", "json"}, r.Formats())
	assert.NotNil(t, r.Get("CSV"))
	assert.Nil(t, r.Get("xlsx"))

	assert.Panics(t, func() { r.Register(&CSVParser{}) })
}

func TestRegistry_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	r := DefaultRegistry()
	grid, err := r.ReadFile(path, "")
	require.NoError(t, err)
	assert.Len(t, grid, 3)

	_, err = r.ReadFile(path, "xlsx")
	assert.ErrorContains(t, err, "unknown grid format")

	_, err = r.ReadFile(filepath.Join(dir, "missing.csv"), "")
	assert.Error(t, err)
}

package ledger

import "github.com/cleared-dev/ledgerform/internal/model"

// FilteredRow is a non-empty grid row together with where it came from.
type FilteredRow struct {
	Position     int // 1-based among non-empty rows
	GridPosition int // 1-based in the grid as submitted
	Row          model.TransactionRow
}

// FilterNonEmpty returns the rows that have any input, in grid order.
func FilterNonEmpty(grid model.Grid) []FilteredRow {
	var rows []FilteredRow
	for i, row := range grid {
		if row.IsEmpty() {
			continue
		}
		rows = append(rows, FilteredRow{
			Position:     len(rows) + 1,
			GridPosition: i + 1,
			Row:          row,
		})
	}
	return rows
}

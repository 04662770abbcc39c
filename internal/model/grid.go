package model

import "fmt"

// Grid is the ordered set of rows shown in the entry form.
// Row positions are significant: warnings refer to them 1-based.
type Grid []TransactionRow

// NewGrid returns a grid of n blank rows.
func NewGrid(n int) Grid {
	if n < 0 {
		n = 0
	}
	return make(Grid, n)
}

// Append adds n blank rows at the end.
func (g Grid) Append(n int) Grid {
	for i := 0; i < n; i++ {
		g = append(g, TransactionRow{})
	}
	return g
}

// Remove deletes the row at 0-based index i.
func (g Grid) Remove(i int) (Grid, error) {
	if i < 0 || i >= len(g) {
		return g, fmt.Errorf("row %d out of range [0,%d)", i, len(g))
	}
	out := make(Grid, 0, len(g)-1)
	out = append(out, g[:i]...)
	return append(out, g[i+1:]...), nil
}

// Clone returns a copy that shares no backing array with g.
func (g Grid) Clone() Grid {
	return append(Grid(nil), g...)
}

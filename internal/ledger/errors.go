package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cleared-dev/ledgerform/internal/form"
)

var (
	// ErrNoData matches a save with no non-empty rows.
	ErrNoData = errors.New("nothing to save")
	// ErrIncompleteRow matches a save stopped at an incomplete row.
	ErrIncompleteRow = errors.New("incomplete row")
)

// NoDataError is returned when every grid row is empty.
type NoDataError struct{}

func (*NoDataError) Error() string { return ErrNoData.Error() }

func (*NoDataError) Is(target error) bool { return target == ErrNoData }

// IncompleteRowError identifies the first non-empty row missing a required
// field. Position counts non-empty rows only; GridPosition is the row's place
// in the submitted grid.
type IncompleteRowError struct {
	Position     int
	GridPosition int
	Missing      []string
}

func (e *IncompleteRowError) Error() string {
	return fmt.Sprintf("row %d has missing fields: %s", e.Position, strings.Join(e.Missing, ", "))
}

func (e *IncompleteRowError) Is(target error) bool { return target == ErrIncompleteRow }

// Warning renders a save warning in the given locale. ok is false when err is
// not a user-facing warning.
func Warning(err error, labels form.Labels) (msg string, ok bool) {
	var incomplete *IncompleteRowError
	switch {
	case errors.As(err, &incomplete):
		return fmt.Sprintf(labels.IncompleteRow, incomplete.Position), true
	case errors.Is(err, ErrNoData):
		return labels.NoData, true
	default:
		return "", false
	}
}

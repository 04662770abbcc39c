package server

import (
	"github.com/cleared-dev/ledgerform/internal/form"
	"github.com/cleared-dev/ledgerform/internal/model"
)

// FormResponse is the body of GET /api/form.
type FormResponse struct {
	Title        string           `json:"title"`
	Instructions string           `json:"instructions"`
	SaveButton   string           `json:"save_button"`
	Fields       []form.FieldSpec `json:"fields"`
	DynamicRows  bool             `json:"dynamic_rows"`
	Rows         model.Grid       `json:"rows"`
}

// WarningResponse is returned with 422 when a grid cannot be saved.
type WarningResponse struct {
	Warning      string   `json:"warning"`
	Position     int      `json:"position,omitempty"`
	GridPosition int      `json:"grid_position,omitempty"`
	Missing      []string `json:"missing,omitempty"`
}

// ErrorResponse is returned for malformed requests and internal failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

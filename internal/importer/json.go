package importer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cleared-dev/ledgerform/internal/model"
)

// Snapshot is the JSON shape of a grid, shared with the HTTP save endpoint.
type Snapshot struct {
	Rows model.Grid `json:"rows"`
}

// JSONParser reads grids saved as {"rows": [...]}.
type JSONParser struct{}

// Format returns the parser name.
func (p *JSONParser) Format() string { return "json" }

// Parse decodes a JSON snapshot. Unknown fields are rejected.
func (p *JSONParser) Parse(r io.Reader) (model.Grid, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding grid JSON: %w", err)
	}
	if snap.Rows == nil {
		return model.Grid{}, nil
	}
	return snap.Rows, nil
}

// Write encodes grid as an indented JSON snapshot.
func (p *JSONParser) Write(w io.Writer, grid model.Grid) error {
	if grid == nil {
		grid = model.Grid{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Snapshot{Rows: grid}); err != nil {
		return fmt.Errorf("encoding grid JSON: %w", err)
	}
	return nil
}

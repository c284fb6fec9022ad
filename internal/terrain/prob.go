package terrain

import (
	"errors"

	"isoterra/internal/core"
)

// Weighted pairs a tile type with its raw sampling weight. Tables are built
// from ordered slices rather than maps so cumulative sums and fallback scans
// are deterministic across calls.
type Weighted struct {
	Type   core.TileType
	Weight float64
}

// Errors reported for degenerate table configurations. A table that cannot
// sample a real tile type is a hard error; it must never silently produce
// Empty cells.
var (
	ErrEmptyTable  = errors.New("terrain: probability table has no entries")
	ErrZeroWeights = errors.New("terrain: probability table weights sum to zero")
)

// Table samples tile types from a cumulative weight distribution.
type Table struct {
	entries  []Weighted
	cum      []float64
	fallback core.TileType
}

// NewTable builds a sampling table from the ordered entries. Weights need
// not sum to 1; draws past the last cumulative boundary fall back to the
// entry with the highest raw weight (first maximum wins).
func NewTable(entries []Weighted) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		entries: append([]Weighted(nil), entries...),
		cum:     make([]float64, len(entries)),
	}

	sum := 0.0
	for i, e := range t.entries {
		sum += e.Weight
		t.cum[i] = sum
	}
	if sum <= 0 {
		return nil, ErrZeroWeights
	}

	t.fallback = t.entries[0].Type
	best := t.entries[0].Weight
	for _, e := range t.entries[1:] {
		if e.Weight > best {
			t.fallback = e.Type
			best = e.Weight
		}
	}
	return t, nil
}

// Sample returns the first tile type whose cumulative weight exceeds draw.
// draw must be in [0, 1).
func (t *Table) Sample(draw float64) core.TileType {
	for i, c := range t.cum {
		if draw < c {
			return t.entries[i].Type
		}
	}
	return t.fallback
}

// Types returns the tile-type universe of the table in entry order.
func (t *Table) Types() []core.TileType {
	out := make([]core.TileType, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Type
	}
	return out
}

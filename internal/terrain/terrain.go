// Package terrain implements a layered isometric terrain generator: a base
// layer assigned by weighted sampling, neighbor-majority smoothing, and
// elevation layers derived from a diffused heightmap.
//
// The grid data is authoritative; tile instances are a fully rebuildable
// view over it. Every structural change (generate, smooth, elevate) discards
// and rebuilds the whole instance set, so rendering state never leaks into
// the grid invariants.
package terrain

import "isoterra/internal/core"

// Terrain owns the layer stack, the derived heightmap and the materialized
// tile instances. All mutating operations either complete a full pass or,
// when a precondition is not met, leave the state untouched.
type Terrain struct {
	cfg Config
	rng *core.RNG

	symbol    core.TileType // elevation marker, Empty = unset
	elevation int           // corrected to the observed heightmap maximum
	types     []core.TileType

	stack     []*core.TileGrid
	heightmap *core.FloatGrid

	tiles    []*TileInstance
	selected []*TileInstance
}

// New returns a Terrain seeded from the configuration.
func New(cfg Config) *Terrain {
	return &Terrain{
		cfg:    cfg,
		rng:    core.NewRNG(cfg.Seed),
		symbol: core.Empty,
	}
}

// Config returns the current configuration.
func (t *Terrain) Config() Config { return t.cfg }

// SetConfig overlays new parameter values. Existing layers keep their
// dimensions until the next base-layer generation.
func (t *Terrain) SetConfig(cfg Config) { t.cfg = cfg }

// SetElevationSymbol designates the tile type whose base-layer presence
// seeds height generation.
func (t *Terrain) SetElevationSymbol(symbol core.TileType) { t.symbol = symbol }

// ElevationSymbol returns the designated elevation marker type.
func (t *Terrain) ElevationSymbol() core.TileType { return t.symbol }

// ElevationLevels reports the corrected elevation: the observed maximum of
// the last generated heightmap, which may be lower than the requested value.
func (t *Terrain) ElevationLevels() int { return t.elevation }

// Layers exposes the layer stack for read-only iteration. Layer 0 is the
// base layer; layer L > 0 holds the occupancy grid for elevation level L.
func (t *Terrain) Layers() []*core.TileGrid { return t.stack }

// Heightmap exposes the last generated heightmap, or nil.
func (t *Terrain) Heightmap() *core.FloatGrid { return t.heightmap }

// Tiles exposes the materialized instance set.
func (t *Terrain) Tiles() []*TileInstance { return t.tiles }

// Selected exposes the current selection.
func (t *Terrain) Selected() []*TileInstance { return t.selected }

// Types returns the tile-type universe established by the last base-layer
// generation.
func (t *Terrain) Types() []core.TileType { return t.types }

// RNG exposes the terrain's random source.
func (t *Terrain) RNG() *core.RNG { return t.rng }

// Select adds the instance to the selection.
func (t *Terrain) Select(inst *TileInstance) {
	if inst == nil || inst.Selected {
		return
	}
	inst.Selected = true
	t.selected = append(t.selected, inst)
}

// Unselect removes the instance from the selection if present.
func (t *Terrain) Unselect(inst *TileInstance) {
	if inst == nil || !inst.Selected {
		return
	}
	inst.Selected = false
	for k, s := range t.selected {
		if s == inst {
			t.selected = append(t.selected[:k], t.selected[k+1:]...)
			return
		}
	}
}

// ClearSelection unselects every selected instance.
func (t *Terrain) ClearSelection() {
	for _, s := range t.selected {
		s.Selected = false
	}
	t.selected = t.selected[:0]
}

// DeleteSelected removes every selected instance above the base layer from
// the instance set and clears its backing grid cell. Base-layer instances
// are protected: they stay selected and their cells keep their type.
func (t *Terrain) DeleteSelected() {
	remaining := t.selected[:0]
	for _, s := range t.selected {
		if s.Elevation <= 1 {
			remaining = append(remaining, s)
			continue
		}
		t.stack[s.Elevation-1].Set(s.Row, s.Col, core.Empty)
		t.removeInstance(s)
	}
	t.selected = remaining
}

// ChangeSelectedType retypes every selected instance and its backing grid
// cell, then clears the selection. The instance set itself is kept; later
// full rebuilds re-derive it from the grids.
func (t *Terrain) ChangeSelectedType(tile core.TileType) {
	for _, s := range t.selected {
		s.Type = tile
		s.Selected = false
		t.stack[s.Elevation-1].Set(s.Row, s.Col, tile)
	}
	t.selected = t.selected[:0]
}

func (t *Terrain) removeInstance(inst *TileInstance) {
	for k, other := range t.tiles {
		if other.Row == inst.Row && other.Col == inst.Col && other.Elevation == inst.Elevation {
			t.tiles = append(t.tiles[:k], t.tiles[k+1:]...)
			return
		}
	}
}

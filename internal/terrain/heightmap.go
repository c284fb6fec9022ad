package terrain

import (
	"math"

	"isoterra/internal/core"
)

// GenerateElevation rebuilds every layer above the base from a freshly
// diffused heightmap. The requested elevation is an upper bound: after
// diffusion and truncation the observed maximum becomes the corrected
// elevation, and one occupancy layer is built per level up to it.
//
// No-op when no terrain exists, no elevation symbol is set, either
// dimension is below 2, the requested elevation is non-positive, or the
// iteration count is negative.
func (t *Terrain) GenerateElevation() {
	if len(t.stack) == 0 || len(t.tiles) == 0 {
		return
	}
	if t.symbol == core.Empty {
		return
	}
	if t.cfg.TerrainWidth < 2 || t.cfg.TerrainHeight < 2 {
		return
	}
	if t.cfg.Elevation <= 0 || t.cfg.Iterations < 0 {
		return
	}

	t.stack = t.stack[:1]
	t.heightmap = diffuseHeightmap(t.stack[0], t.symbol, t.cfg.Elevation, t.cfg.Iterations)
	t.elevation = int(t.heightmap.Max())

	for level := 0; level < t.elevation; level++ {
		t.stack = append(t.stack, occupancyLayer(t.heightmap, t.symbol, level))
	}

	t.rebuildTiles()
}

// diffuseHeightmap seeds a float grid with the elevation value at every
// base-layer cell matching the marker type, then averages each nonzero cell
// with its neighbors for the given number of iterations.
//
// The pass is in place and visits cells in fixed row-major order. Zero
// cells are skipped outright, so elevation never spontaneously spreads into
// them; nonzero regions only decay toward their mean neighborhood. This
// asymmetry is load-bearing for the generated shapes and must not be
// "fixed" into a buffered symmetric blur.
func diffuseHeightmap(base *core.TileGrid, symbol core.TileType, elevation, iterations int) *core.FloatGrid {
	hm := core.NewFloatGrid(base.W, base.H)
	for i := 0; i < base.W; i++ {
		for j := 0; j < base.H; j++ {
			if base.At(i, j) == symbol {
				hm.Set(i, j, float64(elevation))
			}
		}
	}

	for it := 0; it < iterations; it++ {
		for i := 0; i < hm.W; i++ {
			for j := 0; j < hm.H; j++ {
				if hm.At(i, j) == 0 {
					continue
				}
				values := core.FloatNeighbors(hm, i, j)
				sum := hm.At(i, j)
				for _, v := range values {
					sum += v
				}
				hm.Set(i, j, sum/float64(len(values)+1))
			}
		}
	}

	vals := hm.Values()
	for k, v := range vals {
		vals[k] = math.Trunc(v)
	}
	return hm
}

// occupancyLayer builds the grid for one elevation level: a cell is filled
// with the marker type iff its height strictly exceeds the level index, so
// a cell of height 3 occupies levels 1..3 and nothing above.
func occupancyLayer(hm *core.FloatGrid, symbol core.TileType, level int) *core.TileGrid {
	layer := core.NewTileGrid(hm.W, hm.H)
	for i := 0; i < hm.W; i++ {
		for j := 0; j < hm.H; j++ {
			if hm.At(i, j) > float64(level) {
				layer.Set(i, j, symbol)
			}
		}
	}
	return layer
}

package terrain

import "isoterra/internal/core"

// DrawField supplies the per-cell draw value in [0, 1) fed to the
// probability table during base-layer generation. The default field draws
// independent uniform values; noise-backed fields produce spatially
// correlated terrain instead.
type DrawField interface {
	Draw(i, j int) float64
}

type uniformField struct {
	rng *core.RNG
}

func (f uniformField) Draw(int, int) float64 { return f.rng.Float64() }

// GenerateBaseLayer fills layer 0 by sampling the table with one
// independent uniform draw per cell. Any existing stack and heightmap are
// discarded and the instance set rebuilt. A non-positive dimension makes
// this a no-op.
func (t *Terrain) GenerateBaseLayer(tbl *Table) {
	t.GenerateBaseLayerFrom(tbl, uniformField{rng: t.rng})
}

// GenerateBaseLayerFrom is GenerateBaseLayer with an explicit draw field.
func (t *Terrain) GenerateBaseLayerFrom(tbl *Table, field DrawField) {
	if tbl == nil || field == nil {
		return
	}
	if t.cfg.TerrainWidth <= 0 || t.cfg.TerrainHeight <= 0 {
		return
	}

	base := core.NewTileGrid(t.cfg.TerrainWidth, t.cfg.TerrainHeight)
	for i := 0; i < base.W; i++ {
		for j := 0; j < base.H; j++ {
			base.Set(i, j, tbl.Sample(field.Draw(i, j)))
		}
	}

	t.types = tbl.Types()
	t.stack = []*core.TileGrid{base}
	t.heightmap = nil
	t.elevation = 0
	t.rebuildTiles()
}

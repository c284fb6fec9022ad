package terrain

import "isoterra/internal/core"

// TileInstance is one drawable occupied cell of one layer. Instances are
// owned by the Terrain and recreated wholesale on every regeneration, so
// identity across rebuilds is the (Row, Col, Elevation) triple, not the
// pointer.
type TileInstance struct {
	Type      core.TileType
	Row, Col  int
	Elevation int // 1-based; base layer = 1

	// Isometric coordinates before view scaling, derived from the grid
	// index and the layer's vertical offset.
	IsoX, IsoY float64

	Selected bool
}

// CartToIso projects cartesian coordinates into isometric screen space.
func CartToIso(x, y float64) (float64, float64) {
	return x - y, (x + y) / 2
}

// IsoToCart inverts CartToIso exactly.
func IsoToCart(isoX, isoY float64) (float64, float64) {
	return (2*isoY + isoX) / 2, (2*isoY - isoX) / 2
}

// rebuildTiles discards and rebuilds the instance set and the selection
// from the current layer stack.
func (t *Terrain) rebuildTiles() {
	t.tiles = t.tiles[:0]
	t.selected = t.selected[:0]

	elevationOffset := 0.0
	for layer, grid := range t.stack {
		for i := 0; i < grid.W; i++ {
			for j := 0; j < grid.H; j++ {
				tile := grid.At(i, j)
				if tile == core.Empty {
					continue
				}

				cartX := float64(i) * float64(t.cfg.TileWidth) / 2
				cartY := float64(j) * float64(t.cfg.TileHeight)
				isoX, isoY := CartToIso(cartX, cartY)

				// Each layer is drawn one thickness higher than
				// the one below, creating the elevation illusion.
				isoY -= elevationOffset

				t.tiles = append(t.tiles, &TileInstance{
					Type:      tile,
					Row:       i,
					Col:       j,
					Elevation: layer + 1,
					IsoX:      isoX,
					IsoY:      isoY,
				})
			}
		}
		elevationOffset += float64(t.cfg.TileThickness)
	}
}

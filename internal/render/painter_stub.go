//go:build !ebiten

package render

import "isoterra/internal/terrain"

// Painter is a no-op placeholder used when the ebiten build tag is absent.
type Painter struct{}

// NewPainter constructs a stub painter.
func NewPainter(*SpriteSet) *Painter { return &Painter{} }

// Draw is a no-op in headless builds.
func (p *Painter) Draw(any, []*terrain.TileInstance, terrain.View, *terrain.TileInstance) {}

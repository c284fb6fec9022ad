//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"isoterra/internal/core"
	"isoterra/internal/terrain"
)

// Painter blits tile instances to an ebiten screen through the view
// transform. Instances are drawn in materialization order, which is already
// back-to-front for the isometric projection.
type Painter struct {
	set       *SpriteSet
	cache     map[core.TileType]*ebiten.Image
	highlight *ebiten.Image
}

// NewPainter returns a painter over the sprite set.
func NewPainter(set *SpriteSet) *Painter {
	return &Painter{
		set:       set,
		cache:     make(map[core.TileType]*ebiten.Image),
		highlight: ebiten.NewImageFromImage(set.Highlight().Image()),
	}
}

// Draw renders every instance, a soft highlight on the pointed tile and a
// strong one on each selected tile.
func (p *Painter) Draw(screen *ebiten.Image, tiles []*terrain.TileInstance, view terrain.View, pointed *terrain.TileInstance) {
	for _, inst := range tiles {
		img := p.image(inst.Type)
		if img == nil {
			continue
		}
		sx, sy := view.Apply(inst.IsoX, inst.IsoY)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(view.Zoom, view.Zoom)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(img, op)

		if inst.Selected || inst == pointed {
			hop := &ebiten.DrawImageOptions{}
			hop.GeoM.Scale(view.Zoom, view.Zoom)
			hop.GeoM.Translate(sx, sy)
			if !inst.Selected {
				hop.ColorScale.ScaleAlpha(0.35)
			}
			screen.DrawImage(p.highlight, hop)
		}
	}
}

func (p *Painter) image(t core.TileType) *ebiten.Image {
	if img, ok := p.cache[t]; ok {
		return img
	}
	sprite := p.set.Tile(t)
	if sprite == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(sprite.Image())
	p.cache[t] = img
	return img
}

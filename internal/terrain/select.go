package terrain

import "isoterra/internal/core"

// Sprite is an opaque image handle supplied by the asset collaborator. The
// engine never decodes pixel data; hit testing against the per-pixel
// opacity mask is delegated through HitTest, with coordinates in the
// sprite's unscaled local space.
type Sprite interface {
	Size() (w, h int)
	HitTest(x, y int) bool
}

// SpriteProvider resolves tile types to sprite handles.
type SpriteProvider interface {
	Sprite(t core.TileType) (Sprite, bool)
}

// View holds the zoom/pan state mapping isometric coordinates to the
// screen. Tiles start centered: the origin maps to (Width/2, Height/4).
type View struct {
	Zoom             float64
	OffsetX, OffsetY float64
	Width, Height    float64
}

// Apply transforms isometric coordinates into screen coordinates.
func (v View) Apply(isoX, isoY float64) (float64, float64) {
	return isoX*v.Zoom + v.OffsetX + v.Width/2,
		isoY*v.Zoom + v.OffsetY + v.Height/4
}

// Controller tracks the pointed tile and applies selection, deletion, zoom
// and pan in response to input events. The Terrain stays the authority for
// grid and selection state; the controller only decides which instance each
// signal targets.
type Controller struct {
	terr    *Terrain
	sprites SpriteProvider
	view    View

	pointed  *TileInstance
	pointerX float64
	pointerY float64

	modifierHeld bool
	rightHeld    bool
}

// NewController returns a controller for the given terrain and viewport.
func NewController(terr *Terrain, sprites SpriteProvider, viewW, viewH float64) *Controller {
	return &Controller{
		terr:    terr,
		sprites: sprites,
		view:    View{Zoom: 1, Width: viewW, Height: viewH},
	}
}

// View returns the current view transform.
func (c *Controller) View() View { return c.view }

// Pointed returns the instance currently under the pointer, or nil.
func (c *Controller) Pointed() *TileInstance { return c.pointed }

// Refresh re-derives the pointed tile from the current pointer position.
// Callers must invoke it after regenerating the terrain, since the old
// pointed instance no longer exists.
func (c *Controller) Refresh() { c.updatePointed() }

// Handle processes one input signal.
func (c *Controller) Handle(ev Event) {
	switch ev.Kind {
	case EventPointerMove:
		if c.rightHeld && len(c.terr.Tiles()) > 0 {
			c.view.OffsetX += ev.X - c.pointerX
			c.view.OffsetY += ev.Y - c.pointerY
		}
		c.pointerX, c.pointerY = ev.X, ev.Y
		c.updatePointed()

	case EventPointerDown:
		switch ev.Button {
		case ButtonLeft:
			c.clickSelect()
		case ButtonRight:
			c.rightHeld = true
		case ButtonWheelUp:
			c.view.Zoom += 0.25
			c.updatePointed()
		case ButtonWheelDown:
			if c.view.Zoom <= 1 {
				c.view.Zoom -= 0.1
			} else {
				c.view.Zoom -= 0.25
			}
			if c.view.Zoom < 0.1 {
				c.view.Zoom = 0.1
			}
			c.updatePointed()
		}

	case EventPointerUp:
		if ev.Button == ButtonRight {
			c.rightHeld = false
		}

	case EventKeyDown:
		switch ev.Key {
		case KeyModifier:
			c.modifierHeld = true
		case KeyDelete:
			c.terr.DeleteSelected()
			c.updatePointed()
		}

	case EventKeyUp:
		if ev.Key == KeyModifier {
			c.modifierHeld = false
		}
	}
}

// clickSelect applies the selection transitions: plain click adds the
// pointed tile, modifier-click removes it, and a modifier-click on empty
// space clears the whole selection.
func (c *Controller) clickSelect() {
	if len(c.terr.Tiles()) == 0 {
		return
	}
	if c.pointed != nil {
		if c.modifierHeld {
			c.terr.Unselect(c.pointed)
		} else {
			c.terr.Select(c.pointed)
		}
		return
	}
	if c.modifierHeld {
		c.terr.ClearSelection()
	}
}

// updatePointed hit-tests every instance against the pointer and keeps the
// topmost hit. (row+col)*elevation is maximal for the tile closest to the
// viewer in the isometric projection, so overlapping tiles resolve to the
// one actually drawn on top.
func (c *Controller) updatePointed() {
	c.pointed = nil
	if c.sprites == nil {
		return
	}

	best := -1
	for _, inst := range c.terr.Tiles() {
		if !c.hit(inst) {
			continue
		}
		m := (inst.Row + inst.Col) * inst.Elevation
		if m > best {
			c.pointed = inst
			best = m
		}
	}
}

func (c *Controller) hit(inst *TileInstance) bool {
	sprite, ok := c.sprites.Sprite(inst.Type)
	if !ok {
		return false
	}
	w, h := sprite.Size()
	sx, sy := c.view.Apply(inst.IsoX, inst.IsoY)
	sw := float64(w) * c.view.Zoom
	sh := float64(h) * c.view.Zoom
	if c.pointerX < sx || c.pointerX >= sx+sw || c.pointerY < sy || c.pointerY >= sy+sh {
		return false
	}
	localX := int((c.pointerX - sx) / c.view.Zoom)
	localY := int((c.pointerY - sy) / c.view.Zoom)
	return sprite.HitTest(localX, localY)
}

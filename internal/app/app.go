//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"isoterra/internal/core"
	"isoterra/internal/render"
	"isoterra/internal/terrain"
)

var backgroundColor = color.RGBA{R: 202, G: 233, B: 241, A: 255}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

const helpText = "G generate  M smooth  E elevate  1-9 retype selection\n" +
	"click select  ctrl+click unselect  del delete  wheel zoom  right-drag pan"

// Game adapts the terrain engine to the ebiten.Game interface, translating
// raw input into the engine's event signals each frame.
type Game struct {
	terr    *terrain.Terrain
	ctrl    *terrain.Controller
	painter *render.Painter

	table *terrain.Table
	field terrain.DrawField
	types []core.TileType

	winW, winH int
}

// New constructs a Game around the terrain and its collaborators. field may
// be nil for uniform draws.
func New(terr *terrain.Terrain, ctrl *terrain.Controller, painter *render.Painter, table *terrain.Table, field terrain.DrawField, winW, winH int) *Game {
	return &Game{
		terr:    terr,
		ctrl:    ctrl,
		painter: painter,
		table:   table,
		field:   field,
		types:   table.Types(),
		winW:    winW,
		winH:    winH,
	}
}

// Update handles per-frame input and dispatches engine commands.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.forwardPointer()
	g.forwardKeys()

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if g.field != nil {
			g.terr.GenerateBaseLayerFrom(g.table, g.field)
		} else {
			g.terr.GenerateBaseLayer(g.table)
		}
		g.ctrl.Refresh()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.terr.Smooth()
		g.ctrl.Refresh()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.terr.GenerateElevation()
		g.ctrl.Refresh()
	}
	for k, key := range digitKeys {
		if k < len(g.types) && inpututil.IsKeyJustPressed(key) {
			g.terr.ChangeSelectedType(g.types[k])
		}
	}
	return nil
}

func (g *Game) forwardPointer() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	g.ctrl.Handle(terrain.Event{Kind: terrain.EventPointerMove, X: fx, Y: fy})

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Handle(terrain.Event{Kind: terrain.EventPointerDown, Button: terrain.ButtonLeft, X: fx, Y: fy})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctrl.Handle(terrain.Event{Kind: terrain.EventPointerUp, Button: terrain.ButtonLeft, X: fx, Y: fy})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.ctrl.Handle(terrain.Event{Kind: terrain.EventPointerDown, Button: terrain.ButtonRight, X: fx, Y: fy})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.ctrl.Handle(terrain.Event{Kind: terrain.EventPointerUp, Button: terrain.ButtonRight, X: fx, Y: fy})
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		button := terrain.ButtonWheelUp
		if wy < 0 {
			button = terrain.ButtonWheelDown
		}
		g.ctrl.Handle(terrain.Event{Kind: terrain.EventPointerDown, Button: button, X: fx, Y: fy})
	}
}

func (g *Game) forwardKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyControlLeft) {
		g.ctrl.Handle(terrain.Event{Kind: terrain.EventKeyDown, Key: terrain.KeyModifier})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyControlLeft) {
		g.ctrl.Handle(terrain.Event{Kind: terrain.EventKeyUp, Key: terrain.KeyModifier})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		g.ctrl.Handle(terrain.Event{Kind: terrain.EventKeyDown, Key: terrain.KeyDelete})
	}
}

// Draw renders the terrain and the key-binding help line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.painter.Draw(screen, g.terr.Tiles(), g.ctrl.View(), g.ctrl.Pointed())
	ebitenutil.DebugPrint(screen, helpText)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.winW, g.winH
}

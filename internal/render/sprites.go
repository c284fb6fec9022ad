package render

import (
	"image"
	"image/color"
	"math"

	"isoterra/internal/core"
	"isoterra/internal/terrain"
)

// Procedurally synthesized isometric tile sprites. The top face is a
// diamond of tileW×tileH pixels, with a skirt of tileThickness pixels below
// its lower edges; the canvas is tileW×tileH*2, matching the aspect tiles
// are drawn at. Everything outside the tile shape stays fully transparent,
// which doubles as the hit-test mask.

var tilePalette = []color.NRGBA{
	{R: 106, G: 190, B: 48, A: 255},  // grass
	{R: 91, G: 110, B: 225, A: 255},  // water
	{R: 138, G: 111, B: 48, A: 255},  // dirt
	{R: 155, G: 173, B: 183, A: 255}, // rock
	{R: 251, G: 242, B: 54, A: 255},  // sand
	{R: 255, G: 255, B: 255, A: 255}, // snow
	{R: 75, G: 105, B: 47, A: 255},   // forest
	{R: 172, G: 50, B: 50, A: 255},   // clay
}

// TileSprite is a synthesized sprite with an alpha mask.
type TileSprite struct {
	img *image.NRGBA
}

// Size returns the unscaled sprite dimensions.
func (s *TileSprite) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// HitTest reports whether the sprite is opaque at the local pixel. Fully
// transparent pixels do not count as hits.
func (s *TileSprite) HitTest(x, y int) bool {
	b := s.img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return false
	}
	return s.img.NRGBAAt(x, y).A > 0
}

// Image exposes the pixel data for blitting.
func (s *TileSprite) Image() *image.NRGBA { return s.img }

// SpriteSet holds one sprite per tile type plus the shared highlight
// sprite. It satisfies terrain.SpriteProvider.
type SpriteSet struct {
	sprites   map[core.TileType]*TileSprite
	highlight *TileSprite
}

// NewSpriteSet synthesizes sprites for the given tile types, assigning
// palette colors in type order.
func NewSpriteSet(types []core.TileType, tileW, tileH, thickness int) *SpriteSet {
	set := &SpriteSet{
		sprites:   make(map[core.TileType]*TileSprite, len(types)),
		highlight: highlightSprite(tileW, tileH),
	}
	for k, t := range types {
		top := tilePalette[k%len(tilePalette)]
		set.sprites[t] = diamondSprite(tileW, tileH, thickness, top)
	}
	return set
}

// Sprite resolves a tile type to its sprite handle.
func (s *SpriteSet) Sprite(t core.TileType) (terrain.Sprite, bool) {
	sp, ok := s.sprites[t]
	return sp, ok
}

// Tile returns the concrete sprite for blitting, or nil.
func (s *SpriteSet) Tile(t core.TileType) *TileSprite { return s.sprites[t] }

// Highlight returns the translucent overlay sprite for pointed/selected
// tiles.
func (s *SpriteSet) Highlight() *TileSprite { return s.highlight }

func diamondSprite(w, h, thickness int, top color.NRGBA) *TileSprite {
	img := image.NewNRGBA(image.Rect(0, 0, w, 2*h))
	side := shade(top, 0.65)
	front := shade(top, 0.8)

	bottom := make([]int, w)
	for x := 0; x < w; x++ {
		bottom[x] = -1
	}

	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := math.Abs(float64(x)-cx) / (float64(w) / 2)
			dy := math.Abs(float64(y)-cy) / (float64(h) / 2)
			if dx+dy <= 1 {
				img.SetNRGBA(x, y, top)
				if y > bottom[x] {
					bottom[x] = y
				}
			}
		}
	}

	// Skirt below the lower diamond edges; the left half reads as the
	// front face, the right half as the side face.
	for x := 0; x < w; x++ {
		if bottom[x] < 0 {
			continue
		}
		c := front
		if float64(x) > cx {
			c = side
		}
		for d := 1; d <= thickness; d++ {
			y := bottom[x] + d
			if y >= 2*h {
				break
			}
			img.SetNRGBA(x, y, c)
		}
	}

	return &TileSprite{img: img}
}

func highlightSprite(w, h int) *TileSprite {
	img := image.NewNRGBA(image.Rect(0, 0, w, 2*h))
	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 200}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := math.Abs(float64(x)-cx) / (float64(w) / 2)
			dy := math.Abs(float64(y)-cy) / (float64(h) / 2)
			if dx+dy <= 1 {
				img.SetNRGBA(x, y, white)
			}
		}
	}
	return &TileSprite{img: img}
}

func shade(c color.NRGBA, factor float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

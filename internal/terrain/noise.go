package terrain

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise-backed draw fields. Feeding spatially correlated values through the
// probability table clusters tile types into patches instead of per-cell
// static, while keeping the same cumulative-weight semantics.

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3

	// Draws must stay strictly below 1 for the cumulative walk.
	maxDraw = 1 - 1e-9
)

// PerlinField produces draws from 2D Perlin noise.
type PerlinField struct {
	p     *perlin.Perlin
	scale float64
}

// NewPerlinField returns a Perlin draw field. scale stretches the noise
// over the grid; values around 0.1 give patches a handful of tiles wide.
func NewPerlinField(seed int64, scale float64) *PerlinField {
	if scale <= 0 {
		scale = 0.1
	}
	return &PerlinField{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed), scale: scale}
}

// Draw returns the noise value at (i, j) rescaled to [0, 1).
func (f *PerlinField) Draw(i, j int) float64 {
	v := (f.p.Noise2D(float64(i)*f.scale, float64(j)*f.scale) + 1) * 0.5
	return clampDraw(v)
}

// SimplexField produces draws from normalized OpenSimplex noise.
type SimplexField struct {
	n     opensimplex.Noise
	scale float64
}

// NewSimplexField returns an OpenSimplex draw field.
func NewSimplexField(seed int64, scale float64) *SimplexField {
	if scale <= 0 {
		scale = 0.1
	}
	return &SimplexField{n: opensimplex.NewNormalized(seed), scale: scale}
}

// Draw returns the noise value at (i, j) in [0, 1).
func (f *SimplexField) Draw(i, j int) float64 {
	return clampDraw(f.n.Eval2(float64(i)*f.scale, float64(j)*f.scale))
}

func clampDraw(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxDraw {
		return maxDraw
	}
	return v
}

package core

// TileGrid stores a 2D grid of tile types in row-major order. The first
// index i runs over [0, W), the second index j over [0, H).
type TileGrid struct {
	W, H int
	data []TileType
}

// NewTileGrid allocates a grid with the given dimensions, filled with Empty.
func NewTileGrid(w, h int) *TileGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &TileGrid{W: w, H: h, data: make([]TileType, w*h)}
	for i := range g.data {
		g.data[i] = Empty
	}
	return g
}

// Cells exposes the backing slice so callers can read values directly.
func (g *TileGrid) Cells() []TileType { return g.data }

// Index returns the linear slice index for coordinates (i, j).
func (g *TileGrid) Index(i, j int) int { return i*g.H + j }

// At returns the tile type at (i, j).
func (g *TileGrid) At(i, j int) TileType { return g.data[i*g.H+j] }

// Set writes the tile type at (i, j).
func (g *TileGrid) Set(i, j int, t TileType) { g.data[i*g.H+j] = t }

// Size reports the grid dimensions.
func (g *TileGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Clone returns an independent copy of the grid.
func (g *TileGrid) Clone() *TileGrid {
	c := &TileGrid{W: g.W, H: g.H, data: make([]TileType, len(g.data))}
	copy(c.data, g.data)
	return c
}

// FloatGrid stores a 2D grid of float64 values with the same index layout
// as TileGrid. Used for heightmaps.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a zeroed float grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice.
func (g *FloatGrid) Values() []float64 { return g.data }

// At returns the value at (i, j).
func (g *FloatGrid) At(i, j int) float64 { return g.data[i*g.H+j] }

// Set writes the value at (i, j).
func (g *FloatGrid) Set(i, j int, v float64) { g.data[i*g.H+j] = v }

// Max returns the largest value in the grid, or 0 for an empty grid.
func (g *FloatGrid) Max() float64 {
	m := 0.0
	for _, v := range g.data {
		if v > m {
			m = v
		}
	}
	return m
}

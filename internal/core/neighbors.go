package core

// Neighbor queries use 8-connectivity clipped at the borders: 3 neighbors
// for a corner cell, 5 for an edge cell, 8 for an interior cell. The visit
// order below is part of the generation contract — the smoother and the
// heightmap diffusion mutate in place, so the order in which neighbors are
// read is observable in the output and must stay fixed.
//
// Both dimensions must be at least 2.

// NeighborOffsets returns the ordered (di, dj) offsets of the neighbors of
// cell (i, j) in a w×h grid.
func NeighborOffsets(i, j, w, h int) [][2]int {
	switch {
	case i == 0 && j == 0:
		return [][2]int{{0, 1}, {1, 0}, {1, 1}}
	case i == 0 && j == h-1:
		return [][2]int{{0, -1}, {1, 0}, {1, -1}}
	case i == 0:
		return [][2]int{{0, -1}, {1, 0}, {1, -1}, {1, 1}, {0, 1}}
	case i == w-1 && j == 0:
		return [][2]int{{0, 1}, {-1, 0}, {-1, 1}}
	case i == w-1 && j == h-1:
		return [][2]int{{0, -1}, {-1, 0}, {-1, -1}}
	case i == w-1:
		return [][2]int{{0, -1}, {-1, 0}, {-1, -1}, {-1, 1}, {0, 1}}
	case j == 0:
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}}
	case j == h-1:
		return [][2]int{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}}
	default:
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
}

// Neighbors returns the tile types of the neighbors of (i, j) in order.
func Neighbors(g *TileGrid, i, j int) []TileType {
	offs := NeighborOffsets(i, j, g.W, g.H)
	out := make([]TileType, len(offs))
	for k, d := range offs {
		out[k] = g.At(i+d[0], j+d[1])
	}
	return out
}

// FloatNeighbors returns the values of the neighbors of (i, j) in order.
func FloatNeighbors(g *FloatGrid, i, j int) []float64 {
	offs := NeighborOffsets(i, j, g.W, g.H)
	out := make([]float64, len(offs))
	for k, d := range offs {
		out[k] = g.At(i+d[0], j+d[1])
	}
	return out
}

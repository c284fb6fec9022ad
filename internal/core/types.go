package core

// TileType identifies a category of terrain ("1", "2", ...). The value is
// opaque to the engine; only Empty has built-in meaning.
type TileType string

// Empty marks a cell with no tile present. It is never a real tile type.
const Empty TileType = "0"

// Size describes the dimensions of a terrain grid.
type Size struct {
	W int
	H int
}

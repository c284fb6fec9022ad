package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"isoterra/internal/core"
	"isoterra/internal/terrain"
)

// Flags represents the command-line parameters shared by the GUI and the
// headless exporter.
type Flags struct {
	Width  int
	Height int

	TileWidth     int
	TileHeight    int
	TileThickness int

	Elevation  int
	Iterations int

	Seed int64

	Weights string
	Symbol  string

	Field      string
	NoiseScale float64

	WindowW int
	WindowH int
}

// NewFlags returns a Flags populated with sensible defaults.
func NewFlags() *Flags {
	cfg := terrain.DefaultConfig()
	return &Flags{
		Width:         cfg.TerrainWidth,
		Height:        cfg.TerrainHeight,
		TileWidth:     cfg.TileWidth,
		TileHeight:    cfg.TileHeight,
		TileThickness: cfg.TileThickness,
		Elevation:     cfg.Elevation,
		Iterations:    cfg.Iterations,
		Seed:          cfg.Seed,
		Weights:       "1=0.4,2=0.3,3=0.2,4=0.1",
		Symbol:        "1",
		Field:         "uniform",
		NoiseScale:    0.1,
		WindowW:       1280,
		WindowH:       720,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.IntVar(&f.Width, "width", f.Width, "terrain width in tiles")
	fs.IntVar(&f.Height, "height", f.Height, "terrain height in tiles")
	fs.IntVar(&f.TileWidth, "tile-width", f.TileWidth, "tile width in pixels")
	fs.IntVar(&f.TileHeight, "tile-height", f.TileHeight, "tile height in pixels")
	fs.IntVar(&f.TileThickness, "tile-thickness", f.TileThickness, "tile thickness in pixels")
	fs.IntVar(&f.Elevation, "elevation", f.Elevation, "requested maximum elevation")
	fs.IntVar(&f.Iterations, "iterations", f.Iterations, "heightmap diffusion iterations")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for all random draws")
	fs.StringVar(&f.Weights, "weights", f.Weights, "tile weights as type=weight,...")
	fs.StringVar(&f.Symbol, "symbol", f.Symbol, "elevation marker tile type")
	fs.StringVar(&f.Field, "field", f.Field, "draw field: uniform, perlin or simplex")
	fs.Float64Var(&f.NoiseScale, "noise-scale", f.NoiseScale, "noise field scale")
	fs.IntVar(&f.WindowW, "window-width", f.WindowW, "window width in pixels")
	fs.IntVar(&f.WindowH, "window-height", f.WindowH, "window height in pixels")
}

// TerrainConfig converts the flags into a terrain configuration.
func (f *Flags) TerrainConfig() terrain.Config {
	return terrain.Config{
		TerrainWidth:  f.Width,
		TerrainHeight: f.Height,
		TileWidth:     f.TileWidth,
		TileHeight:    f.TileHeight,
		TileThickness: f.TileThickness,
		Elevation:     f.Elevation,
		Iterations:    f.Iterations,
		Seed:          f.Seed,
	}
}

// ParseWeights parses a "type=weight,type=weight" list into ordered table
// entries.
func ParseWeights(s string) ([]terrain.Weighted, error) {
	var entries []terrain.Weighted
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("app: malformed weight entry %q", part)
		}
		w, err := strconv.ParseFloat(value, 64)
		if err != nil || w < 0 {
			return nil, fmt.Errorf("app: malformed weight value %q", value)
		}
		entries = append(entries, terrain.Weighted{Type: core.TileType(key), Weight: w})
	}
	return entries, nil
}

// DrawField returns the configured draw field, or nil for uniform draws.
func (f *Flags) DrawField() (terrain.DrawField, error) {
	switch f.Field {
	case "", "uniform":
		return nil, nil
	case "perlin":
		return terrain.NewPerlinField(f.Seed, f.NoiseScale), nil
	case "simplex":
		return terrain.NewSimplexField(f.Seed, f.NoiseScale), nil
	default:
		return nil, fmt.Errorf("app: unknown draw field %q", f.Field)
	}
}

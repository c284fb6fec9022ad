package terrain

import "strconv"

// Config controls terrain dimensions, tile geometry and elevation
// parameters. Dimensions are in tiles, tile geometry in pixels.
type Config struct {
	TerrainWidth  int
	TerrainHeight int

	TileWidth     int
	TileHeight    int
	TileThickness int

	Elevation  int
	Iterations int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		TerrainWidth:  32,
		TerrainHeight: 32,
		TileWidth:     32,
		TileHeight:    16,
		TileThickness: 7,
		Elevation:     8,
		Iterations:    3,
		Seed:          1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Malformed values are ignored and the previous value kept, so
// bad external input degrades to a no-op instead of failing generation.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overlays parseable entries of the map onto the config in place.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["terrain_width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.TerrainWidth = parsed
		}
	}
	if v, ok := cfg["terrain_height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.TerrainHeight = parsed
		}
	}
	if v, ok := cfg["tile_width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileWidth = parsed
		}
	}
	if v, ok := cfg["tile_height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileHeight = parsed
		}
	}
	if v, ok := cfg["tile_thickness"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TileThickness = parsed
		}
	}
	if v, ok := cfg["elevation"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Elevation = parsed
		}
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Iterations = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
}

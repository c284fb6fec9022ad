package terrain

import (
	"testing"

	"isoterra/internal/core"
)

func TestCartToIsoRoundTrip(t *testing.T) {
	cases := [][2]float64{
		{0, 0},
		{16, 32},
		{-5, 12.5},
		{123.25, -77.75},
	}
	for _, c := range cases {
		isoX, isoY := CartToIso(c[0], c[1])
		x, y := IsoToCart(isoX, isoY)
		if x != c[0] || y != c[1] {
			t.Fatalf("round trip of (%v,%v) gave (%v,%v)", c[0], c[1], x, y)
		}
	}
}

func TestCartToIsoProjection(t *testing.T) {
	isoX, isoY := CartToIso(10, 4)
	if isoX != 6 || isoY != 7 {
		t.Fatalf("CartToIso(10,4) = (%v,%v), want (6,7)", isoX, isoY)
	}
}

func TestTileInstanceCoordinates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TerrainWidth = 2
	cfg.TerrainHeight = 2
	cfg.TileWidth = 32
	cfg.TileHeight = 16
	cfg.TileThickness = 7
	terr := New(cfg)
	tbl, err := NewTable([]Weighted{{Type: "1", Weight: 1}})
	if err != nil {
		t.Fatal(err)
	}
	terr.GenerateBaseLayer(tbl)

	want := map[[2]int][2]float64{}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			cartX := float64(i) * 16
			cartY := float64(j) * 16
			x, y := CartToIso(cartX, cartY)
			want[[2]int{i, j}] = [2]float64{x, y}
		}
	}

	if len(terr.Tiles()) != 4 {
		t.Fatalf("%d instances, want 4", len(terr.Tiles()))
	}
	for _, inst := range terr.Tiles() {
		w := want[[2]int{inst.Row, inst.Col}]
		if inst.IsoX != w[0] || inst.IsoY != w[1] {
			t.Fatalf("instance (%d,%d) at (%v,%v), want (%v,%v)",
				inst.Row, inst.Col, inst.IsoX, inst.IsoY, w[0], w[1])
		}
		if inst.Elevation != 1 {
			t.Fatalf("base instance elevation %d, want 1", inst.Elevation)
		}
	}
}

func TestTileInstanceElevationOffset(t *testing.T) {
	terr := markerTerrain(t, 2, 2, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	cfg := terr.Config()
	cfg.Elevation = 2
	cfg.Iterations = 0
	terr.SetConfig(cfg)
	terr.GenerateElevation()

	byLayer := map[int]*TileInstance{}
	for _, inst := range terr.Tiles() {
		if inst.Row == 0 && inst.Col == 0 {
			byLayer[inst.Elevation] = inst
		}
	}
	if len(byLayer) != 3 {
		t.Fatalf("cell (0,0) materialized on %d layers, want 3", len(byLayer))
	}

	thickness := float64(terr.Config().TileThickness)
	for elev := 2; elev <= 3; elev++ {
		below := byLayer[elev-1]
		inst := byLayer[elev]
		if inst.IsoY != below.IsoY-thickness {
			t.Fatalf("elevation %d isoY %v, want %v", elev, inst.IsoY, below.IsoY-thickness)
		}
		if inst.IsoX != below.IsoX {
			t.Fatalf("elevation %d shifted horizontally", elev)
		}
	}
}

func TestEmptyCellsNotMaterialized(t *testing.T) {
	terr := markerTerrain(t, 3, 3, [][2]int{{1, 1}})
	cfg := terr.Config()
	cfg.Elevation = 1
	cfg.Iterations = 0
	terr.SetConfig(cfg)
	terr.GenerateElevation()

	// 9 base instances plus the single elevated marker.
	if len(terr.Tiles()) != 10 {
		t.Fatalf("%d instances, want 10", len(terr.Tiles()))
	}
	var elevated int
	for _, inst := range terr.Tiles() {
		if inst.Elevation == 2 {
			elevated++
			if inst.Row != 1 || inst.Col != 1 || inst.Type != core.TileType("1") {
				t.Fatalf("unexpected elevated instance %+v", inst)
			}
		}
	}
	if elevated != 1 {
		t.Fatalf("%d elevated instances, want 1", elevated)
	}
}

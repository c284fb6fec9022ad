package terrain

import (
	"testing"

	"isoterra/internal/core"
)

func TestFullPipeline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TerrainWidth = 3
	cfg.TerrainHeight = 3
	cfg.Elevation = 2
	cfg.Iterations = 0
	terr := New(cfg)
	tbl, err := NewTable([]Weighted{{Type: "1", Weight: 1}})
	if err != nil {
		t.Fatal(err)
	}

	terr.GenerateBaseLayer(tbl)
	for _, c := range terr.Layers()[0].Cells() {
		if c != "1" {
			t.Fatalf("base cell %q, want 1", c)
		}
	}

	terr.Smooth()
	for _, c := range terr.Layers()[0].Cells() {
		if c != "1" {
			t.Fatalf("smoothing changed uniform cell to %q", c)
		}
	}

	terr.SetElevationSymbol("1")
	terr.GenerateElevation()

	hm := terr.Heightmap()
	for _, v := range hm.Values() {
		if v != 2 {
			t.Fatalf("heightmap value %v, want 2", v)
		}
	}
	if terr.ElevationLevels() != 2 {
		t.Fatalf("corrected elevation %d, want 2", terr.ElevationLevels())
	}
	if len(terr.Layers()) != 3 {
		t.Fatalf("%d layers, want 3", len(terr.Layers()))
	}
	for layer := 1; layer <= 2; layer++ {
		for _, c := range terr.Layers()[layer].Cells() {
			if c != "1" {
				t.Fatalf("elevation layer %d cell %q, want 1", layer, c)
			}
		}
	}
	if len(terr.Tiles()) != 27 {
		t.Fatalf("%d instances, want 27", len(terr.Tiles()))
	}
}

func TestGenerateBaseLayerRejectsBadDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TerrainWidth = 0
	terr := New(cfg)
	tbl, err := NewTable([]Weighted{{Type: "1", Weight: 1}})
	if err != nil {
		t.Fatal(err)
	}
	terr.GenerateBaseLayer(tbl)
	if len(terr.Layers()) != 0 || len(terr.Tiles()) != 0 {
		t.Fatal("base layer generated with zero width")
	}

	cfg.TerrainWidth = 4
	cfg.TerrainHeight = -3
	terr = New(cfg)
	terr.GenerateBaseLayer(tbl)
	if len(terr.Layers()) != 0 {
		t.Fatal("base layer generated with negative height")
	}
}

func TestGenerateBaseLayerDiscardsElevation(t *testing.T) {
	terr := markerTerrain(t, 3, 3, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	cfg := terr.Config()
	cfg.Elevation = 2
	cfg.Iterations = 0
	terr.SetConfig(cfg)
	terr.GenerateElevation()
	if len(terr.Layers()) < 2 {
		t.Fatal("setup: expected elevation layers")
	}

	tbl, err := NewTable([]Weighted{{Type: "3", Weight: 1}})
	if err != nil {
		t.Fatal(err)
	}
	terr.GenerateBaseLayer(tbl)
	if len(terr.Layers()) != 1 {
		t.Fatalf("%d layers after regeneration, want 1", len(terr.Layers()))
	}
	if terr.Heightmap() != nil {
		t.Fatal("stale heightmap survived regeneration")
	}
	if terr.ElevationLevels() != 0 {
		t.Fatal("stale corrected elevation survived regeneration")
	}
}

func findInstance(terr *Terrain, row, col, elev int) *TileInstance {
	for _, inst := range terr.Tiles() {
		if inst.Row == row && inst.Col == col && inst.Elevation == elev {
			return inst
		}
	}
	return nil
}

func elevatedTerrain(t *testing.T) *Terrain {
	t.Helper()
	terr := markerTerrain(t, 3, 3, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	cfg := terr.Config()
	cfg.Elevation = 1
	cfg.Iterations = 0
	terr.SetConfig(cfg)
	terr.GenerateElevation()
	return terr
}

func TestDeleteSelectedRemovesElevatedTiles(t *testing.T) {
	terr := elevatedTerrain(t)
	inst := findInstance(terr, 1, 1, 2)
	if inst == nil {
		t.Fatal("setup: no elevated instance at (1,1)")
	}
	terr.Select(inst)

	terr.DeleteSelected()

	if findInstance(terr, 1, 1, 2) != nil {
		t.Fatal("deleted instance still materialized")
	}
	if got := terr.Layers()[1].At(1, 1); got != core.Empty {
		t.Fatalf("backing cell %q, want Empty", got)
	}
	if len(terr.Selected()) != 0 {
		t.Fatal("deleted instance still selected")
	}
}

func TestDeleteSelectedProtectsBaseLayer(t *testing.T) {
	terr := elevatedTerrain(t)
	base := findInstance(terr, 2, 2, 1)
	if base == nil {
		t.Fatal("setup: no base instance at (2,2)")
	}
	terr.Select(base)

	terr.DeleteSelected()

	if findInstance(terr, 2, 2, 1) == nil {
		t.Fatal("base instance was deleted")
	}
	if got := terr.Layers()[0].At(2, 2); got == core.Empty {
		t.Fatal("base cell was cleared")
	}
	if len(terr.Selected()) != 1 || !base.Selected {
		t.Fatal("protected base instance lost its selection")
	}
}

func TestDeleteSelectedMixedSelection(t *testing.T) {
	terr := elevatedTerrain(t)
	elevated := findInstance(terr, 0, 0, 2)
	base := findInstance(terr, 0, 0, 1)
	terr.Select(elevated)
	terr.Select(base)

	terr.DeleteSelected()

	if findInstance(terr, 0, 0, 2) != nil {
		t.Fatal("elevated instance survived")
	}
	if findInstance(terr, 0, 0, 1) == nil {
		t.Fatal("base instance deleted")
	}
	if len(terr.Selected()) != 1 {
		t.Fatalf("%d selected after delete, want the protected base tile", len(terr.Selected()))
	}
}

func TestChangeSelectedType(t *testing.T) {
	terr := elevatedTerrain(t)
	a := findInstance(terr, 0, 0, 1)
	b := findInstance(terr, 1, 1, 2)
	terr.Select(a)
	terr.Select(b)

	terr.ChangeSelectedType("2")

	if a.Type != "2" || b.Type != "2" {
		t.Fatal("instance types not updated")
	}
	if terr.Layers()[0].At(0, 0) != "2" {
		t.Fatal("base grid cell not retyped")
	}
	if terr.Layers()[1].At(1, 1) != "2" {
		t.Fatal("elevation grid cell not retyped")
	}
	if len(terr.Selected()) != 0 || a.Selected || b.Selected {
		t.Fatal("selection not cleared after retype")
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	terr := elevatedTerrain(t)
	inst := findInstance(terr, 0, 0, 1)
	terr.Select(inst)
	terr.Select(inst)
	if len(terr.Selected()) != 1 {
		t.Fatalf("double select produced %d entries", len(terr.Selected()))
	}
	terr.Unselect(inst)
	if len(terr.Selected()) != 0 || inst.Selected {
		t.Fatal("unselect failed")
	}
	terr.Unselect(inst)
}

package terrain

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportLayout(t *testing.T) {
	terr := markerTerrain(t, 2, 2, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	cfg := terr.Config()
	cfg.Elevation = 1
	cfg.Iterations = 0
	terr.SetConfig(cfg)
	terr.GenerateElevation()

	var buf bytes.Buffer
	if err := Export(&buf, terr); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"# Base layer",
		"1,1",
		"1,1",
		"# Elevation layer 1",
		"1,1",
		"1,1",
		"# Heightmap",
		"1,1",
		"1,1",
	}
	if len(lines) != len(want) {
		t.Fatalf("%d lines, want %d: %q", len(lines), len(want), lines)
	}
	for k := range want {
		if lines[k] != want[k] {
			t.Fatalf("line %d = %q, want %q", k, lines[k], want[k])
		}
	}
}

func TestExportWithoutHeightmap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TerrainWidth = 2
	cfg.TerrainHeight = 3
	terr := New(cfg)
	tbl, err := NewTable([]Weighted{{Type: "2", Weight: 1}})
	if err != nil {
		t.Fatal(err)
	}
	terr.GenerateBaseLayer(tbl)

	var buf bytes.Buffer
	if err := Export(&buf, terr); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Contains(out, "# Heightmap") {
		t.Fatal("heightmap section written before elevation generation")
	}
	if !strings.HasPrefix(out, "# Base layer\n2,2,2\n2,2,2\n") {
		t.Fatalf("unexpected export: %q", out)
	}
}

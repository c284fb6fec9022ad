package app

import (
	"flag"
	"testing"

	"isoterra/internal/terrain"
)

func TestParseWeights(t *testing.T) {
	entries, err := ParseWeights("1=0.4, 2=0.3,3=0.2,4=0.1")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("%d entries, want 4", len(entries))
	}
	if entries[0].Type != "1" || entries[0].Weight != 0.4 {
		t.Fatalf("first entry %+v", entries[0])
	}
	if entries[3].Type != "4" || entries[3].Weight != 0.1 {
		t.Fatalf("last entry %+v", entries[3])
	}
}

func TestParseWeightsRejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"1", "1=x", "1=-0.5"} {
		if _, err := ParseWeights(s); err == nil {
			t.Fatalf("no error for %q", s)
		}
	}
}

func TestBindRoundTripsThroughFlagSet(t *testing.T) {
	flags := NewFlags()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.Bind(fs)
	if err := fs.Parse([]string{"-width", "10", "-height", "6", "-seed", "99", "-field", "perlin"}); err != nil {
		t.Fatal(err)
	}

	cfg := flags.TerrainConfig()
	if cfg.TerrainWidth != 10 || cfg.TerrainHeight != 6 || cfg.Seed != 99 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	field, err := flags.DrawField()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := field.(*terrain.PerlinField); !ok {
		t.Fatalf("field %T, want *terrain.PerlinField", field)
	}
}

func TestDrawFieldSelection(t *testing.T) {
	flags := NewFlags()

	flags.Field = "uniform"
	if f, err := flags.DrawField(); err != nil || f != nil {
		t.Fatalf("uniform field = %v, %v", f, err)
	}

	flags.Field = "simplex"
	if f, err := flags.DrawField(); err != nil || f == nil {
		t.Fatalf("simplex field = %v, %v", f, err)
	}

	flags.Field = "voronoi"
	if _, err := flags.DrawField(); err == nil {
		t.Fatal("unknown field accepted")
	}
}

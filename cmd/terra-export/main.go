package main

import (
	"flag"
	"log"
	"os"

	"isoterra/internal/app"
	"isoterra/internal/core"
	"isoterra/internal/terrain"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	smoothPasses := flag.Int("smooth", 1, "number of smoothing passes")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	entries, err := app.ParseWeights(flags.Weights)
	if err != nil {
		log.Fatal(err)
	}
	table, err := terrain.NewTable(entries)
	if err != nil {
		log.Fatal(err)
	}
	field, err := flags.DrawField()
	if err != nil {
		log.Fatal(err)
	}

	terr := terrain.New(flags.TerrainConfig())
	terr.SetElevationSymbol(core.TileType(flags.Symbol))

	if field != nil {
		terr.GenerateBaseLayerFrom(table, field)
	} else {
		terr.GenerateBaseLayer(table)
	}
	for i := 0; i < *smoothPasses; i++ {
		terr.Smooth()
	}
	terr.GenerateElevation()

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}
	if err := terrain.Export(w, terr); err != nil {
		log.Fatal(err)
	}

	log.Printf("terrain %dx%d: %d layers, corrected elevation %d, %d tiles",
		flags.Width, flags.Height, len(terr.Layers()), terr.ElevationLevels(), len(terr.Tiles()))
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"isoterra/internal/app"
	"isoterra/internal/core"
	"isoterra/internal/render"
	"isoterra/internal/terrain"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
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

	sprites := render.NewSpriteSet(table.Types(), flags.TileWidth, flags.TileHeight, flags.TileThickness)
	ctrl := terrain.NewController(terr, sprites, float64(flags.WindowW), float64(flags.WindowH))
	game := app.New(terr, ctrl, render.NewPainter(sprites), table, field, flags.WindowW, flags.WindowH)

	ebiten.SetWindowTitle("isoterra: tiled terrain generator")
	ebiten.SetWindowSize(flags.WindowW, flags.WindowH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

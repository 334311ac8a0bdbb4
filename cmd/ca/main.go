//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ca-engine/internal/app"
	"ca-engine/internal/playback"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ca: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	run, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	player := playback.New(run.History)
	player.Loop = cfg.Loop
	game := app.New(player, cfg.Scale)
	size := player.Size()

	ebiten.SetWindowTitle("ca: " + run.Rule.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(size.W*cfg.Scale, size.H*cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

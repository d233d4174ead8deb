//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"aquarium/internal/app"
	"aquarium/internal/aquarium"
	"aquarium/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	tank, ok := factory(cfg.SimConfig()).(*aquarium.Tank)
	if !ok {
		log.Fatalf("sim %q cannot be displayed", cfg.Sim)
	}

	game := app.New(tank, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("aquarium — " + tank.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

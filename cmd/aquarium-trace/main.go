package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"aquarium/internal/app"
	"aquarium/internal/aquarium"
)

func main() {
	seconds := flag.Float64("seconds", 60, "simulated seconds to run")
	every := flag.Float64("every", 10, "print a progress line every N simulated seconds (0 disables)")
	dumpFrame := flag.Bool("json", false, "print the final frame as JSON")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	tankCfg := aquarium.FromMap(cfg.SimConfig())
	dt := 1 / float64(cfg.TPS)
	frames := int(*seconds * float64(cfg.TPS))
	printEvery := int(*every * float64(cfg.TPS))

	res := aquarium.Trace(tankCfg, frames, dt, func(tank *aquarium.Tank) {
		if printEvery <= 0 || tank.Frames()%printEvery != 0 {
			return
		}
		light := tank.Light()
		fmt.Printf("t=%6.1fs band=%-9s fish=%2d bubbles=%2d recycled=%d ambient=%.2f\n",
			tank.Elapsed(), light.Band, tank.School().Len(), tank.Bubbles().Len(), tank.Bubbles().Recycled(), light.AmbientIntensity)
	})

	fmt.Printf("\nRan %d frames (%.1fs) seed %d\n", res.Frames, res.Elapsed, tankCfg.Seed)
	fmt.Printf("  max extent ratio: %.4f\n", res.MaxExtentRatio)
	fmt.Printf("  max turn/frame:   %.4f rad\n", res.MaxTurn)
	fmt.Printf("  bubbles recycled: %d\n", res.Recycled)
	fmt.Printf("  school rebuilds:  %d\n", res.FishRebuilds)

	if *dumpFrame {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Final); err != nil {
			log.Fatalf("encode frame: %v", err)
		}
	}
}

package aquarium

import (
	"math"

	"aquarium/internal/core"
	"aquarium/internal/sims/fish"
)

// TraceResult summarises a headless run.
type TraceResult struct {
	Frames  int
	Elapsed float64

	// MaxExtentRatio is the largest |position| / half-extent seen on any axis
	// for any fish; containment keeps it at or below fish.ContainFraction.
	MaxExtentRatio float64
	// MaxTurn is the largest per-frame heading change of any fish.
	MaxTurn float64

	Recycled     int
	FishRebuilds int
	Final        Frame
}

// Trace runs a fresh tank built from cfg for frames steps of dt seconds.
// Each observe callback, when non-nil, sees the tank after every step.
func Trace(cfg Config, frames int, dt float64, observe func(*Tank)) TraceResult {
	tank := NewWithConfig(cfg)
	res := TraceResult{}
	var headings []float64
	for i := 0; i < frames; i++ {
		tank.Step(dt)
		half := core.Extents(tank.Params().TankSize)
		agents := tank.School().Agents()
		if len(headings) != len(agents) {
			headings = make([]float64, len(agents))
			for j, a := range agents {
				headings[j] = a.Heading
			}
		}
		for j, a := range agents {
			for axis := 0; axis < 3; axis++ {
				res.MaxExtentRatio = math.Max(res.MaxExtentRatio, math.Abs(a.Position[axis])/half[axis])
			}
			res.MaxTurn = math.Max(res.MaxTurn, math.Abs(fish.WrapAngle(a.Heading-headings[j])))
			headings[j] = a.Heading
		}
		if observe != nil {
			observe(tank)
		}
	}
	res.Frames = tank.Frames()
	res.Elapsed = tank.Elapsed()
	res.Recycled = tank.Bubbles().Recycled()
	res.FishRebuilds = tank.School().Rebuilds()
	res.Final = tank.Frame()
	return res
}

package aquarium

import (
	"math"
	"testing"

	"aquarium/internal/sims/fish"
)

func TestTraceHonoursInvariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.SwimmingSpeed = 10
	cfg.Params.SchoolSize = 40
	res := Trace(cfg, 60*60, frame, nil)
	if res.Frames != 3600 {
		t.Fatalf("expected 3600 frames, got %d", res.Frames)
	}
	if res.MaxExtentRatio > fish.ContainFraction+1e-12 {
		t.Fatalf("fish left the containment box: ratio %f", res.MaxExtentRatio)
	}
	if limit := fish.TurnBlend*math.Pi + fish.WaveAmplitude; res.MaxTurn >= limit {
		t.Fatalf("max turn %f exceeds %f", res.MaxTurn, limit)
	}
	if res.Recycled == 0 {
		t.Fatal("a minute of simulation should recycle bubbles")
	}
	if res.FishRebuilds != 1 {
		t.Fatalf("static parameters should build the school once, got %d", res.FishRebuilds)
	}
	if len(res.Final.Fish) != 40 {
		t.Fatalf("final frame should carry 40 fish, got %d", len(res.Final.Fish))
	}
}

func TestTraceIsReproducible(t *testing.T) {
	cfg := DefaultConfig()
	a := Trace(cfg, 600, frame, nil)
	b := Trace(cfg, 600, frame, nil)
	if a.MaxTurn != b.MaxTurn || a.Recycled != b.Recycled || a.Final.Fish[3] != b.Final.Fish[3] {
		t.Fatal("identical configs should trace identically")
	}
}

func TestTraceObserverSeesEveryFrame(t *testing.T) {
	calls := 0
	Trace(DefaultConfig(), 25, frame, func(tank *Tank) {
		calls++
		if tank.Frames() != calls {
			t.Fatalf("observer called out of order: frame %d on call %d", tank.Frames(), calls)
		}
	})
	if calls != 25 {
		t.Fatalf("expected 25 observer calls, got %d", calls)
	}
}

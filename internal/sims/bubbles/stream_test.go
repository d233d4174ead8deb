package bubbles

import (
	"math"
	"slices"
	"testing"

	"aquarium/internal/core"
)

const frame = 1.0 / 60.0

func TestPoolSize(t *testing.T) {
	cases := map[float64]int{0: 5, 2.9: 5, 3: 6, 30: 15, 100: 38}
	for density, want := range cases {
		if got := PoolSize(density); got != want {
			t.Fatalf("PoolSize(%v) = %d, want %d", density, got, want)
		}
	}
}

func TestDensityChangeRebuilds(t *testing.T) {
	p := core.DefaultParams()
	p.BubbleDensity = 30
	s := NewStream(1)
	s.Update(frame, frame, p)
	if s.Len() != 15 {
		t.Fatalf("expected 15 bubbles, got %d", s.Len())
	}

	p.CurrentStrength = 90
	p.SchoolSize = 40
	s.Update(frame, 2*frame, p)
	if s.Rebuilds() != 1 {
		t.Fatalf("only density may rebuild the pool, rebuilds=%d", s.Rebuilds())
	}

	p.BubbleDensity = 99
	s.Update(frame, 3*frame, p)
	if s.Len() != 38 || s.Rebuilds() != 2 {
		t.Fatalf("expected rebuilt pool of 38, got %d (rebuilds %d)", s.Len(), s.Rebuilds())
	}
}

func TestBubblesStayInsideEnvelope(t *testing.T) {
	for _, current := range []float64{0, 25, 100} {
		p := core.DefaultParams()
		p.CurrentStrength = current
		p.BubbleDensity = 100
		s := NewStream(9)
		ceiling := p.TankSize * RiseCeiling
		limit := p.TankSize * DriftLimit
		elapsed := 0.0
		for i := 0; i < 3000; i++ {
			elapsed += frame
			s.Update(frame, elapsed, p)
			for j, b := range s.Agents() {
				if b.Position[1] > ceiling || b.Position[0] > limit {
					t.Fatalf("current %v: bubble %d left the envelope at %v", current, j, b.Position)
				}
			}
		}
	}
}

func TestEveryBubbleEventuallyRecycles(t *testing.T) {
	for _, current := range []float64{0, 40, 100} {
		p := core.DefaultParams()
		p.CurrentStrength = current
		s := NewStream(17)
		s.Update(0, 0, p)

		recycledAt := make([]bool, s.Len())
		prevY := make([]float64, s.Len())
		for i, b := range s.Agents() {
			prevY[i] = b.Position[1]
		}
		elapsed := 0.0
		for step := 0; step < 60*120; step++ {
			elapsed += frame
			s.Update(frame, elapsed, p)
			for i, b := range s.Agents() {
				if b.Position[1] < prevY[i] && !recycledAt[i] {
					recycledAt[i] = true
					if b.Position[1] != 0 || b.Position[0] < 0 || b.Position[0] >= SpawnJitter*0.5 || math.Abs(b.Position[2]) > SpawnJitter {
						t.Fatalf("current %v: bubble %d recycled to %v, not next to the outlet", current, i, b.Position)
					}
				}
				prevY[i] = b.Position[1]
			}
		}
		for i, done := range recycledAt {
			if !done {
				t.Fatalf("current %v: bubble %d never recycled", current, i)
			}
		}
		if s.Recycled() < s.Len() {
			t.Fatalf("current %v: recycle counter %d below pool size %d", current, s.Recycled(), s.Len())
		}
	}
}

func TestZeroCurrentRisesStraight(t *testing.T) {
	p := core.DefaultParams()
	p.CurrentStrength = 0
	s := NewStream(3)
	s.Update(0, 0, p)
	prev := slices.Clone(s.Agents())

	elapsed := 0.0
	for step := 0; step < 600; step++ {
		elapsed += frame
		s.Update(frame, elapsed, p)
		for i, b := range s.Agents() {
			if b.Position[1] < prev[i].Position[1] {
				prev[i] = b
				continue
			}
			dx := math.Abs(b.Position[0] - prev[i].Position[0])
			if dx > WobbleAmplitude*frame+1e-12 {
				t.Fatalf("bubble %d drifted %f horizontally with no current", i, dx)
			}
			wantDy := b.Speed * RiseSpeed * frame
			if dy := b.Position[1] - prev[i].Position[1]; math.Abs(dy-wantDy) > 1e-9 {
				t.Fatalf("bubble %d rose %f, want %f", i, dy, wantDy)
			}
			prev[i] = b
		}
	}
}

func TestProgressGuardsZeroReach(t *testing.T) {
	if got := Progress(3, 0); got != 1 {
		t.Fatalf("zero reach should force progress 1, got %f", got)
	}
	if got := Progress(-1, 5); got != 0 {
		t.Fatalf("negative x should clamp to 0, got %f", got)
	}
	if got := Progress(2.5, 5); got != 0.5 {
		t.Fatalf("expected 0.5, got %f", got)
	}
	p := core.DefaultParams()
	p.CurrentStrength = 50
	p.TankSize = 10
	if got := MaxDistance(p); math.Abs(got-4.5) > 1e-12 {
		t.Fatalf("expected reach 4.5, got %f", got)
	}
}

func TestStreamDeterministic(t *testing.T) {
	p := core.DefaultParams()
	a := NewStream(5)
	b := NewStream(5)
	elapsed := 0.0
	for i := 0; i < 900; i++ {
		elapsed += frame
		a.Update(frame, elapsed, p)
		b.Update(frame, elapsed, p)
	}
	if !slices.Equal(a.Agents(), b.Agents()) {
		t.Fatal("identical seeds produced different bubble streams")
	}
}

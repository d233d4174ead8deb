package water

import (
	"math"
	"testing"
)

func TestSurfaceIsPureFunctionOfTime(t *testing.T) {
	s := NewSurface(15)
	y1, r1 := s.Update(3.7)
	s.Update(100)
	y2, r2 := s.Update(3.7)
	if y1 != y2 || r1 != r2 {
		t.Fatalf("same elapsed time gave (%f,%f) then (%f,%f)", y1, r1, y2, r2)
	}
}

func TestSurfaceStaysNearBase(t *testing.T) {
	s := NewSurface(15)
	if math.Abs(s.Base-3.96) > 1e-9 {
		t.Fatalf("expected base 3.96 for a 15-unit tank, got %f", s.Base)
	}
	for e := 0.0; e < 120; e += 0.1 {
		y, r := s.Update(e)
		if math.Abs(y-s.Base) > BobAmplitude+1e-12 {
			t.Fatalf("height %f strayed from base at %v", y, e)
		}
		if math.Abs(r-BaseAngle) > TiltAmplitude+1e-12 {
			t.Fatalf("tilt %f strayed from base angle at %v", r, e)
		}
	}
	y, r := s.Update(0)
	if y != s.Base || r != BaseAngle {
		t.Fatalf("expected rest pose at t=0, got (%f, %f)", y, r)
	}
}

func TestGlassSway(t *testing.T) {
	if GlassSway(0) != 0 {
		t.Fatal("glass should start centred")
	}
	if got := GlassSway(math.Pi / (2 * GlassSwayRate)); math.Abs(got-GlassSwayAmplitude) > 1e-12 {
		t.Fatalf("expected peak sway, got %f", got)
	}
}

package env

import (
	"math"
	"testing"
)

func TestAmbientFloorAtExtremes(t *testing.T) {
	for _, tod := range []float64{0, 100} {
		s := Map(tod)
		if math.Abs(s.AmbientIntensity-AmbientFloor) > 1e-9 {
			t.Fatalf("Map(%v) ambient %f, want floor %f", tod, s.AmbientIntensity, AmbientFloor)
		}
	}
	if got := Map(50).AmbientIntensity; math.Abs(got-AmbientPeak) > 1e-9 {
		t.Fatalf("noon ambient %f, want %f", got, AmbientPeak)
	}
}

func TestBands(t *testing.T) {
	cases := []struct {
		tod  float64
		want Band
	}{
		{0, Night}, {20, Night}, {20.5, Dawn}, {40, Dawn}, {55, Day},
		{60, Day}, {61, Afternoon}, {80, Afternoon}, {80.01, Sunset}, {100, Sunset},
	}
	for _, c := range cases {
		if got := BandFor(c.tod); got != c.want {
			t.Fatalf("BandFor(%v) = %v, want %v", c.tod, got, c.want)
		}
	}
	if Band(9).String() != "Unknown" {
		t.Fatal("out-of-range band should stringify as Unknown")
	}
}

func TestSunStaysAboveHorizon(t *testing.T) {
	for tod := 0.0; tod <= 100; tod += 0.5 {
		s := Map(tod)
		if s.SunPosition.Y() < MinSunElevation*DefaultSunDistance-1e-9 {
			t.Fatalf("Map(%v) sun below floor: %v", tod, s.SunPosition)
		}
		if s.AmbientIntensity < AmbientFloor || s.SunIntensity < SunFloor {
			t.Fatalf("Map(%v) intensity under floor: %+v", tod, s)
		}
	}
	noon := Map(50).SunPosition
	if math.Abs(noon.Y()-DefaultSunDistance) > 1e-9 {
		t.Fatalf("noon sun should be at full height, got %v", noon)
	}
}

func TestIntensityIsContinuous(t *testing.T) {
	const step = 0.01
	prev := Map(0)
	for tod := step; tod <= 100; tod += step {
		cur := Map(tod)
		if math.Abs(cur.AmbientIntensity-prev.AmbientIntensity) > 0.01 {
			t.Fatalf("ambient jumped at %v", tod)
		}
		if cur.SunPosition.Sub(prev.SunPosition).Len() > 1 {
			t.Fatalf("sun jumped at %v", tod)
		}
		prev = cur
	}
}

func TestHazeAtDawnAndDusk(t *testing.T) {
	for _, tod := range []float64{0, 20, 80, 100} {
		s := Map(tod)
		if s.Turbidity != HazeTurbidity || s.Rayleigh != HazeRayleigh {
			t.Fatalf("Map(%v) expected haze, got turbidity %f rayleigh %f", tod, s.Turbidity, s.Rayleigh)
		}
	}
	s := Map(50)
	if s.Turbidity != ClearTurbidity || s.Rayleigh != ClearRayleigh {
		t.Fatalf("midday should be clear, got turbidity %f rayleigh %f", s.Turbidity, s.Rayleigh)
	}
	if math.Abs(Map(25).Azimuth-90) > 1e-9 {
		t.Fatalf("expected 90 degree azimuth at quarter day, got %f", Map(25).Azimuth)
	}
}

func TestDiscreteColoursSwitchAtBoundary(t *testing.T) {
	before := Map(NightEnd)
	after := Map(NightEnd + 1e-6)
	if before.AmbientColor == after.AmbientColor {
		t.Fatal("discrete mapper should swap colour at the band boundary")
	}
	if before.AmbientColor != Map(5).AmbientColor {
		t.Fatal("colour must be constant inside a band")
	}
}

func TestSmoothColoursAreContinuous(t *testing.T) {
	m := Mapper{Smooth: true}
	before := m.Map(NightEnd - 1e-3)
	after := m.Map(NightEnd + 1e-3)
	if d := before.AmbientColor.DistanceLab(after.AmbientColor); d > 0.01 {
		t.Fatalf("smooth mapper jumped by %f across the boundary", d)
	}
	if m.Map(10).SunColor != sunPalette[Night] {
		t.Fatal("band centre should hit the palette colour exactly")
	}
	if m.Map(100).AmbientColor != ambientPalette[Sunset] {
		t.Fatal("end of day should use the last palette colour")
	}
}

func TestMapClampsInput(t *testing.T) {
	if Map(-20) != Map(0) {
		t.Fatal("negative time of day should clamp to 0")
	}
	if Map(250) != Map(100) {
		t.Fatal("time of day above 100 should clamp to 100")
	}
}

func TestCausticsBounded(t *testing.T) {
	for e := 0.0; e < 200; e += 0.7 {
		x, z := Caustics(e)
		if math.Abs(x) > 2 || math.Abs(z) > 2 {
			t.Fatalf("caustic drift out of range at %v: %f %f", e, x, z)
		}
	}
}

func TestDayPaletteColours(t *testing.T) {
	s := Map(50)
	if got := s.AmbientColor.Hex(); got != "#4a90e2" {
		t.Fatalf("day ambient colour %s, want #4a90e2", got)
	}
	if got := s.SunColor.Hex(); got != "#ffd700" {
		t.Fatalf("day sun colour %s, want #ffd700", got)
	}
}

func TestMustHexPanicsOnMalformedInput(t *testing.T) {
	if got := MustHex("#ff7f50").Hex(); got != "#ff7f50" {
		t.Fatalf("MustHex round trip: got %s", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for malformed colour")
		}
	}()
	MustHex("not-a-colour")
}

// Package env maps the time-of-day parameter to the lighting and sky
// configuration of a frame.
package env

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Band is a coarse time-of-day mood used only to pick palette colours.
type Band int

const (
	Night Band = iota
	Dawn
	Day
	Afternoon
	Sunset
)

var bandNames = [...]string{"Night", "Dawn", "Day", "Afternoon", "Sunset"}

func (b Band) String() string {
	if b < Night || b > Sunset {
		return "Unknown"
	}
	return bandNames[b]
}

// Upper bounds (inclusive) of each band except Sunset.
const (
	NightEnd     = 20.0
	DawnEnd      = 40.0
	DayEnd       = 60.0
	AfternoonEnd = 80.0
)

// BandFor returns the band containing timeOfDay.
func BandFor(timeOfDay float64) Band {
	switch {
	case timeOfDay <= NightEnd:
		return Night
	case timeOfDay <= DawnEnd:
		return Dawn
	case timeOfDay <= DayEnd:
		return Day
	case timeOfDay <= AfternoonEnd:
		return Afternoon
	default:
		return Sunset
	}
}

const (
	DefaultSunDistance = 100.0
	MinSunElevation    = 0.05

	AmbientFloor = 0.1
	AmbientPeak  = 0.6
	SunFloor     = 0.1
	SunPeak      = 0.8

	HazeTurbidity  = 10.0
	HazeRayleigh   = 1.0
	ClearTurbidity = 2.0
	ClearRayleigh  = 3.0
)

var (
	ambientPalette = mustPalette("#1a1a3a", "#ff9966", "#4a90e2", "#87ceeb", "#ff7f50")
	sunPalette     = mustPalette("#4a4a8a", "#ffb347", "#ffd700", "#fff4d6", "#ff6347")
)

func mustPalette(hex ...string) [5]colorful.Color {
	var out [5]colorful.Color
	for i, h := range hex {
		out[i] = MustHex(h)
	}
	return out
}

// MustHex parses a "#rrggbb" colour and panics on malformed input. It is
// meant for package-level palette tables.
func MustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(fmt.Sprintf("env: bad colour %q: %v", h, err))
	}
	return c
}

// State is the lighting and sky configuration for one frame.
type State struct {
	Band Band

	AmbientIntensity float64
	AmbientColor     colorful.Color

	SunIntensity float64
	SunColor     colorful.Color
	SunPosition  mgl64.Vec3

	Turbidity float64
	Rayleigh  float64
	Azimuth   float64
}

// Mapper converts time of day to a State. The zero value uses discrete band
// colours and the default sun distance.
type Mapper struct {
	// Smooth blends neighbouring band colours in Lab space instead of
	// switching at band boundaries.
	Smooth bool
	// SunDistance is the radius of the sun orbit; zero means the default.
	SunDistance float64
}

// Map returns the environment for timeOfDay using the default Mapper.
func Map(timeOfDay float64) State {
	return Mapper{}.Map(timeOfDay)
}

// Map returns the environment for timeOfDay in [0, 100]. Out-of-range input
// is clamped.
func (m Mapper) Map(timeOfDay float64) State {
	if math.IsNaN(timeOfDay) {
		timeOfDay = 50
	}
	t := mgl64.Clamp(timeOfDay, 0, 100)
	r := m.SunDistance
	if r <= 0 {
		r = DefaultSunDistance
	}

	angle := t / 100 * 2 * math.Pi
	arc := math.Sin(t / 100 * math.Pi)
	s := State{
		Band:             BandFor(t),
		AmbientIntensity: math.Max(AmbientFloor, arc*AmbientPeak),
		SunIntensity:     math.Max(SunFloor, arc*SunPeak),
		SunPosition: mgl64.Vec3{
			math.Cos(angle) * r,
			math.Max(MinSunElevation, arc) * r,
			math.Sin(angle) * r,
		},
		Azimuth:   mgl64.RadToDeg(angle),
		Turbidity: ClearTurbidity,
		Rayleigh:  ClearRayleigh,
	}
	if t <= NightEnd || t >= AfternoonEnd {
		s.Turbidity = HazeTurbidity
		s.Rayleigh = HazeRayleigh
	}

	if m.Smooth {
		s.AmbientColor = blend(ambientPalette, t)
		s.SunColor = blend(sunPalette, t)
	} else {
		s.AmbientColor = ambientPalette[s.Band]
		s.SunColor = sunPalette[s.Band]
	}
	return s
}

// blend interpolates between the colours anchored at each band centre.
func blend(palette [5]colorful.Color, t float64) colorful.Color {
	pos := mgl64.Clamp((t-10)/20, 0, float64(len(palette)-1))
	i := int(pos)
	frac := pos - float64(i)
	if i >= len(palette)-1 || frac == 0 {
		return palette[i]
	}
	return palette[i].BlendLab(palette[i+1], frac).Clamped()
}

// Caustics returns the x/z drift of the sun light that imitates caustics
// moving across the tank floor.
func Caustics(elapsed float64) (x, z float64) {
	return math.Sin(elapsed*0.2) * 2, math.Cos(elapsed*0.3) * 2
}

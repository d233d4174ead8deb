package core

import "math"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// BoolParameterSetter allows HUD interactions to toggle boolean parameters.
type BoolParameterSetter interface {
	SetBoolParameter(key string, value bool) bool
}

// Bounds of the externally supplied simulation parameters.
const (
	MinTankSize       = 1.0
	MaxTankSize       = 60.0
	MaxSchoolSize     = 50
	MinSchoolSize     = 5
	MinSwimmingSpeed  = 1.0
	MaxSwimmingSpeed  = 10.0
	MinFishSize       = 0.5
	MaxFishSize       = 3.0
	MaxPercent        = 100.0
	DefaultTankSize   = 20.0
	DefaultSchoolSize = 15
	DefaultSwimSpeed  = 3.0
	DefaultFishSize   = 1.0
	DefaultBubbles    = 30.0
	DefaultCurrent    = 40.0
	DefaultTimeOfDay  = 50.0
)

// Params holds the host-supplied values that drive every simulator. The host
// owns them; simulators only read a clamped copy each frame.
type Params struct {
	TankSize           float64
	SchoolSize         int
	SwimmingSpeed      float64
	FishSize           float64
	RandomizeFishSizes bool
	BubbleDensity      float64
	CurrentStrength    float64
	TimeOfDay          float64
}

// DefaultParams returns the parameter set used when nothing is configured.
func DefaultParams() Params {
	return Params{
		TankSize:        DefaultTankSize,
		SchoolSize:      DefaultSchoolSize,
		SwimmingSpeed:   DefaultSwimSpeed,
		FishSize:        DefaultFishSize,
		BubbleDensity:   DefaultBubbles,
		CurrentStrength: DefaultCurrent,
		TimeOfDay:       DefaultTimeOfDay,
	}
}

// Clamp returns a copy of p with every field forced into its documented range.
// NaN and infinite values fall back to the defaults. A school size below
// MinSchoolSize is kept (down to zero) so hosts can render an empty tank.
func (p Params) Clamp() Params {
	def := DefaultParams()
	out := p
	out.TankSize = clampFloat(p.TankSize, MinTankSize, MaxTankSize, def.TankSize)
	if out.SchoolSize < 0 {
		out.SchoolSize = 0
	}
	if out.SchoolSize > MaxSchoolSize {
		out.SchoolSize = MaxSchoolSize
	}
	out.SwimmingSpeed = clampFloat(p.SwimmingSpeed, MinSwimmingSpeed, MaxSwimmingSpeed, def.SwimmingSpeed)
	out.FishSize = clampFloat(p.FishSize, MinFishSize, MaxFishSize, def.FishSize)
	out.BubbleDensity = clampFloat(p.BubbleDensity, 0, MaxPercent, def.BubbleDensity)
	out.CurrentStrength = clampFloat(p.CurrentStrength, 0, MaxPercent, def.CurrentStrength)
	out.TimeOfDay = clampFloat(p.TimeOfDay, 0, MaxPercent, def.TimeOfDay)
	return out
}

func clampFloat(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package fish

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Agent is one fish. The school owns agents; renderers read them by index and
// must not keep pointers across frames.
type Agent struct {
	Position  mgl64.Vec3
	Heading   float64
	Target    mgl64.Vec3
	TargetAge float64

	// RetargetAfter is the age at which a new target is picked. It is redrawn
	// from [RetargetMin, RetargetMax) after every retarget.
	RetargetAfter float64

	TimeOffset float64
	Amplitude  float64
	Frequency  float64
	Speed      float64

	Size       float64
	ColorIndex int

	// wave is the body-wave term currently folded into Heading.
	wave float64
}

// Pose is the rendering orientation of an agent. It never feeds back into the
// motion model.
type Pose struct {
	Yaw   float64
	Pitch float64
	Roll  float64
}

// Pose returns the agent orientation at the given elapsed time.
func (a Agent) Pose(elapsed float64) Pose {
	return Pose{
		Yaw:   a.Heading,
		Pitch: math.Sin(elapsed*pitchRate+a.TimeOffset) * pitchAmplitude,
		Roll:  math.Sin(elapsed*rollRate+a.TimeOffset) * rollAmplitude,
	}
}

// Forward returns the unit swimming direction in the horizontal plane.
func (a Agent) Forward() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(a.Heading), 0, math.Sin(a.Heading)}
}

// WrapAngle maps an angle into (-π, π].
func WrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

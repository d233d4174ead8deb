package water

import (
	"math"

	"aquarium/internal/core"
)

// Oscillation constants for the water plane and the tank glass.
const (
	BobRate       = 0.5
	BobAmplitude  = 0.1
	TiltRate      = 0.3
	TiltAmplitude = 0.05
	BaseAngle     = -math.Pi / 2
	BaseFraction  = 0.8

	GlassSwayRate      = 0.1
	GlassSwayAmplitude = 0.02
)

// Surface animates the visible water plane. Its output is a pure function of
// elapsed time; PositionY and RotationX only cache the last frame.
type Surface struct {
	Base      float64
	PositionY float64
	RotationX float64
}

// NewSurface returns a surface resting just below the top of the tank.
func NewSurface(tankSize float64) *Surface {
	s := &Surface{}
	s.Resize(tankSize)
	s.PositionY = s.Base
	s.RotationX = BaseAngle
	return s
}

// Resize moves the resting height to match a new tank size.
func (s *Surface) Resize(tankSize float64) {
	s.Base = core.Extents(tankSize)[1] * BaseFraction
}

// Update returns the surface height and tilt at the given elapsed time.
func (s *Surface) Update(elapsed float64) (positionY, rotationX float64) {
	s.PositionY = s.Base + math.Sin(elapsed*BobRate)*BobAmplitude
	s.RotationX = BaseAngle + math.Sin(elapsed*TiltRate)*TiltAmplitude
	return s.PositionY, s.RotationX
}

// GlassSway returns the slow yaw of the tank glass.
func GlassSway(elapsed float64) float64 {
	return math.Sin(elapsed*GlassSwayRate) * GlassSwayAmplitude
}

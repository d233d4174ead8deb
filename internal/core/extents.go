package core

import "github.com/go-gl/mathgl/mgl64"

// Per-axis fractions of the tank size that make up each half-extent.
const (
	HalfWidthFactor  = 0.5
	HalfHeightFactor = 0.33
	HalfDepthFactor  = 0.25
)

// Extents returns the tank half-extents (x, y, z) for the given tank size.
func Extents(tankSize float64) mgl64.Vec3 {
	return mgl64.Vec3{
		tankSize * HalfWidthFactor,
		tankSize * HalfHeightFactor,
		tankSize * HalfDepthFactor,
	}
}

// Within reports whether p lies inside frac of the half-extents on every axis.
func Within(p, half mgl64.Vec3, frac float64) bool {
	for i := 0; i < 3; i++ {
		limit := half[i] * frac
		if p[i] < -limit || p[i] > limit {
			return false
		}
	}
	return true
}

// ClampTo limits every component of p to frac of the matching half-extent.
func ClampTo(p, half mgl64.Vec3, frac float64) mgl64.Vec3 {
	for i := 0; i < 3; i++ {
		limit := half[i] * frac
		p[i] = mgl64.Clamp(p[i], -limit, limit)
	}
	return p
}

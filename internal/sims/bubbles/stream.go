package bubbles

import (
	"math"

	"aquarium/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

// Stream tuning. Speeds are in tank units per second, scaled by each bubble's
// Speed.
const (
	DensityDivisor = 3
	MinPoolSize    = 5

	CurveReach  = 0.9
	RiseCeiling = 0.4
	DriftLimit  = 0.95

	DriftSpeed      = 1.5
	RiseSpeed       = 1.2
	WobbleAmplitude = 0.15

	SpawnJitter = 0.3
)

const (
	wobbleRateX = 1.3
	wobbleRateZ = 1.7
)

// Agent is one bubble. Position is relative to the filter outlet.
type Agent struct {
	Position mgl64.Vec3
	Phase    float64
	Speed    float64
	Size     float64
}

// PoolSize returns the number of bubbles kept for a density in [0, 100].
func PoolSize(density float64) int {
	return int(math.Floor(density/DensityDivisor)) + MinPoolSize
}

// Outlet returns the filter outlet position in tank coordinates. Bubbles
// released there reach the water surface at the rise ceiling.
func Outlet(tankSize float64) mgl64.Vec3 {
	half := core.Extents(tankSize)
	return mgl64.Vec3{-half[0] * 0.9, -tankSize * 0.14, 0}
}

// Stream owns the bubble pool.
type Stream struct {
	rng    *core.RNG
	agents []Agent

	built    bool
	density  float64
	recycled int
	rebuilds int
}

// NewStream returns a stream whose pool is built on the first Update.
func NewStream(seed int64) *Stream {
	return &Stream{rng: core.NewRNG(seed)}
}

// Reset reseeds the stream and drops the pool.
func (s *Stream) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.agents = nil
	s.built = false
	s.recycled = 0
	s.rebuilds = 0
}

// Agents exposes the pool. Callers must treat it as read-only.
func (s *Stream) Agents() []Agent { return s.agents }

// Len reports the pool size.
func (s *Stream) Len() int { return len(s.agents) }

// Recycled counts bubbles returned to the outlet since the last rebuild.
func (s *Stream) Recycled() int { return s.recycled }

// Rebuilds counts pool reallocations since Reset.
func (s *Stream) Rebuilds() int { return s.rebuilds }

// MaxDistance is the horizontal length of the current-driven arc.
func MaxDistance(p core.Params) float64 {
	return p.CurrentStrength / core.MaxPercent * p.TankSize * CurveReach
}

// Progress returns how far along the arc a bubble at x is, in [0, 1]. A zero
// reach means there is no arc and the bubble is already rising.
func Progress(x, maxDistance float64) float64 {
	if maxDistance <= 0 {
		return 1
	}
	return mgl64.Clamp(x/maxDistance, 0, 1)
}

// Update advances every bubble by one frame.
func (s *Stream) Update(dt, elapsed float64, p core.Params) {
	p = p.Clamp()
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	s.ensurePool(p)

	reach := MaxDistance(p)
	ceiling := p.TankSize * RiseCeiling
	limit := p.TankSize * DriftLimit
	for i := range s.agents {
		b := &s.agents[i]
		progress := Progress(b.Position[0], reach)
		if progress < 1 {
			b.Position[0] += b.Speed * DriftSpeed * dt
			b.Position[1] += b.Speed * RiseSpeed * math.Sin(progress*math.Pi) * dt
		} else {
			b.Position[1] += b.Speed * RiseSpeed * dt
		}
		b.Position[0] += math.Sin(elapsed*wobbleRateX+b.Phase) * WobbleAmplitude * dt
		b.Position[2] += math.Cos(elapsed*wobbleRateZ+b.Phase*1.3) * WobbleAmplitude * dt

		if b.Position[1] > ceiling || b.Position[0] > limit {
			b.Position = s.spawnPoint()
			s.recycled++
		}
	}
}

func (s *Stream) ensurePool(p core.Params) {
	if s.built && p.BubbleDensity == s.density {
		return
	}
	agents := make([]Agent, PoolSize(p.BubbleDensity))
	ceiling := p.TankSize * RiseCeiling
	for i := range agents {
		pos := s.spawnPoint()
		// Stagger the initial column so the stream does not start as one burst.
		pos[1] = s.rng.Range(0, ceiling)
		agents[i] = Agent{
			Position: pos,
			Phase:    s.rng.Range(0, 2*math.Pi),
			Speed:    s.rng.Range(0.5, 1.5),
			Size:     s.rng.Range(0.05, 0.15),
		}
	}
	s.agents = agents
	s.built = true
	s.density = p.BubbleDensity
	s.recycled = 0
	s.rebuilds++
}

func (s *Stream) spawnPoint() mgl64.Vec3 {
	return mgl64.Vec3{
		s.rng.Range(0, SpawnJitter*0.5),
		0,
		s.rng.Symmetric(SpawnJitter),
	}
}

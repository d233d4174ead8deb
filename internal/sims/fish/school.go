package fish

import (
	"math"

	"aquarium/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

// Steering and gait constants.
const (
	RetargetMin     = 8.0
	RetargetMax     = 12.0
	TargetSpread    = 0.8
	ContainFraction = 0.9
	BoundaryMargin  = 1.5

	TurnBlend     = 0.02
	WaveAmplitude = 0.08
	WaveFrequency = 3.0
	WaveRate      = 0.1

	ForwardGain  = 0.4
	VerticalSeek = 0.3
	AvoidLift    = 1.0

	SizeJitterMin = 0.7
	SizeJitterMax = 1.3
)

// maxWaveStep limits how far the body wave moves in one frame.
const maxWaveStep = WaveAmplitude * 0.9

const (
	pitchRate      = 1.5
	pitchAmplitude = 0.05
	rollRate       = 2.0
	rollAmplitude  = 0.1
)

// Palette lists the body colours indexed by Agent.ColorIndex.
var Palette = []string{
	"#ff7f50",
	"#ffd700",
	"#ff6b6b",
	"#4fc3f7",
	"#ba68c8",
	"#81c784",
}

// School owns the fish pool and advances it once per frame.
type School struct {
	rng    *core.RNG
	agents []Agent

	built      bool
	schoolSize int
	fishSize   float64
	randomize  bool
	rebuilds   int
}

// NewSchool returns an empty school whose pool is built on the first Update.
func NewSchool(seed int64) *School {
	return &School{rng: core.NewRNG(seed)}
}

// Reset reseeds the school and drops the pool; the next Update rebuilds it.
func (s *School) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.agents = nil
	s.built = false
	s.rebuilds = 0
}

// Agents exposes the pool. Callers must treat it as read-only.
func (s *School) Agents() []Agent { return s.agents }

// Len reports the number of fish in the pool.
func (s *School) Len() int { return len(s.agents) }

// Rebuilds counts how many times the pool was recreated since Reset.
func (s *School) Rebuilds() int { return s.rebuilds }

// Update advances every agent by one frame.
func (s *School) Update(dt, elapsed float64, p core.Params) {
	p = p.Clamp()
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	dt = math.Min(dt, core.MaxFrameStep)
	half := core.Extents(p.TankSize)
	s.ensurePool(p, half)

	phase := elapsed * p.SwimmingSpeed * WaveRate
	for i := range s.agents {
		s.step(&s.agents[i], dt, elapsed, phase, half, p.SwimmingSpeed)
	}
}

func (s *School) ensurePool(p core.Params, half mgl64.Vec3) {
	if s.built && p.SchoolSize == s.schoolSize && p.FishSize == s.fishSize && p.RandomizeFishSizes == s.randomize {
		return
	}
	agents := make([]Agent, p.SchoolSize)
	for i := range agents {
		agents[i] = s.spawn(half, p.FishSize, p.RandomizeFishSizes)
	}
	s.agents = agents
	s.built = true
	s.schoolSize = p.SchoolSize
	s.fishSize = p.FishSize
	s.randomize = p.RandomizeFishSizes
	s.rebuilds++
}

func (s *School) spawn(half mgl64.Vec3, fishSize float64, randomize bool) Agent {
	a := Agent{
		Position:      s.randomPoint(half, TargetSpread),
		Heading:       s.rng.Symmetric(math.Pi),
		Target:        s.randomPoint(half, TargetSpread),
		RetargetAfter: s.rng.Range(RetargetMin, RetargetMax),
		TimeOffset:    s.rng.Range(0, 2*math.Pi),
		Amplitude:     s.rng.Range(0.1, 0.3),
		Frequency:     s.rng.Range(0.5, 1.5),
		Speed:         s.rng.Range(0.6, 1.2),
		Size:          fishSize,
		ColorIndex:    s.rng.IntN(len(Palette)),
	}
	if randomize {
		a.Size = fishSize * s.rng.Range(SizeJitterMin, SizeJitterMax)
	}
	return a
}

func (s *School) randomPoint(half mgl64.Vec3, frac float64) mgl64.Vec3 {
	return mgl64.Vec3{
		s.rng.Symmetric(half[0] * frac),
		s.rng.Symmetric(half[1] * frac),
		s.rng.Symmetric(half[2] * frac),
	}
}

func (s *School) step(a *Agent, dt, elapsed, phase float64, half mgl64.Vec3, swim float64) {
	a.TargetAge += dt
	if a.TargetAge > a.RetargetAfter {
		a.Target = s.randomPoint(half, TargetSpread)
		a.TargetAge = 0
		a.RetargetAfter = s.rng.Range(RetargetMin, RetargetMax)
	}

	steered := WrapAngle(a.Heading - a.wave)
	diff := 0.0
	toTarget := a.Target.Sub(a.Position)
	if toTarget[0] != 0 || toTarget[2] != 0 {
		diff = WrapAngle(math.Atan2(toTarget[2], toTarget[0]) - steered)
	}
	diff += avoidance(a.Position, steered, half)
	diff = mgl64.Clamp(diff, -math.Pi, math.Pi)
	steered = WrapAngle(steered + diff*TurnBlend)

	wave := WaveAmplitude * math.Sin(WaveFrequency*(phase+a.TimeOffset))
	a.wave += mgl64.Clamp(wave-a.wave, -maxWaveStep, maxWaveStep)
	a.Heading = WrapAngle(steered + a.wave)

	forward := a.Forward()
	side := mgl64.Vec3{-forward[2], 0, forward[0]}
	gait := elapsed*a.Frequency + a.TimeOffset
	lateral := math.Sin(gait) * a.Amplitude * dt
	vertical := (a.Target[1]-a.Position[1])*VerticalSeek*dt +
		math.Cos(gait*0.7)*a.Amplitude*0.5*dt +
		overshoot(a.Position[1], half[1])*AvoidLift*dt

	move := forward.Mul(a.Speed * swim * ForwardGain * dt).
		Add(side.Mul(lateral)).
		Add(mgl64.Vec3{0, vertical, 0})
	a.Position = core.ClampTo(a.Position.Add(move), half, ContainFraction)
}

// margin shrinks the boundary band for tanks too small to fit the default.
func margin(half float64) float64 {
	return math.Min(BoundaryMargin, half*0.5)
}

// overshoot returns the signed push back toward the centre on one axis, as a
// fraction of the margin band. Zero inside the band.
func overshoot(pos, half float64) float64 {
	m := margin(half)
	if m <= 0 {
		return 0
	}
	over := math.Abs(pos) - (half - m)
	if over <= 0 {
		return 0
	}
	return -math.Copysign(over/m, pos)
}

// avoidance returns the heading bias steering an agent near the x or z walls
// back toward the centre.
func avoidance(pos mgl64.Vec3, heading float64, half mgl64.Vec3) float64 {
	px := overshoot(pos[0], half[0])
	pz := overshoot(pos[2], half[2])
	mag := math.Hypot(px, pz)
	if mag == 0 {
		return 0
	}
	return WrapAngle(math.Atan2(pz, px)-heading) * math.Min(1, mag)
}

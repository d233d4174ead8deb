package aquarium

import (
	"aquarium/internal/core"
	"aquarium/internal/env"
	"aquarium/internal/sims/bubbles"
	"aquarium/internal/sims/fish"
	"aquarium/internal/sims/water"
)

var (
	_ core.Simulator = (*fish.School)(nil)
	_ core.Simulator = (*bubbles.Stream)(nil)
	_ core.Sim       = (*Tank)(nil)
)

// Tank composes the clock and every simulator and runs them in frame order.
type Tank struct {
	cfg    Config
	params core.Params

	clock   *core.Clock
	surface *water.Surface
	bubbles *bubbles.Stream
	school  *fish.School
	mapper  env.Mapper
	light   env.State

	frames int
}

// New returns a tank using the default configuration.
func New() *Tank {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a tank configured from the provided options.
func NewWithConfig(cfg Config) *Tank {
	params := cfg.Params.Clamp()
	t := &Tank{
		cfg:     cfg,
		params:  params,
		clock:   core.NewClock(),
		surface: water.NewSurface(params.TankSize),
		bubbles: bubbles.NewStream(bubbleSeed(cfg.Seed)),
		school:  fish.NewSchool(cfg.Seed),
		mapper:  env.Mapper{Smooth: cfg.SmoothLight},
	}
	t.light = t.mapper.Map(params.TimeOfDay)
	return t
}

func bubbleSeed(seed int64) int64 { return seed ^ 0x5deece66d }

// Name returns the simulation identifier.
func (t *Tank) Name() string { return "aquarium" }

// Reset rewinds the clock and rebuilds every pool from seed. A zero seed
// reuses the configured one.
func (t *Tank) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = t.cfg.Seed
	}
	t.clock.Reset()
	t.school.Reset(effective)
	t.bubbles.Reset(bubbleSeed(effective))
	t.surface.Resize(t.params.TankSize)
	t.surface.Update(0)
	t.light = t.mapper.Map(t.params.TimeOfDay)
	t.frames = 0
}

// Step advances the clock by dt seconds and updates every simulator once.
// Pool rebuilds caused by parameter changes happen here, before any agent
// moves.
func (t *Tank) Step(dt float64) {
	p := t.params.Clamp()
	applied := t.clock.Advance(dt)
	elapsed := t.clock.Elapsed()

	t.surface.Resize(p.TankSize)
	t.surface.Update(elapsed)
	t.bubbles.Update(applied, elapsed, p)
	t.school.Update(applied, elapsed, p)
	t.light = t.mapper.Map(p.TimeOfDay)
	t.frames++
}

// Elapsed reports the simulation clock.
func (t *Tank) Elapsed() float64 { return t.clock.Elapsed() }

// Frames counts steps since the last Reset.
func (t *Tank) Frames() int { return t.frames }

// Params returns the current host parameters.
func (t *Tank) Params() core.Params { return t.params }

// SetParams replaces the host parameters; values are clamped.
func (t *Tank) SetParams(p core.Params) { t.params = p.Clamp() }

// School exposes the fish simulator for read access.
func (t *Tank) School() *fish.School { return t.school }

// Bubbles exposes the bubble simulator for read access.
func (t *Tank) Bubbles() *bubbles.Stream { return t.bubbles }

// Surface exposes the water plane.
func (t *Tank) Surface() *water.Surface { return t.surface }

// Light returns the environment computed by the last Step.
func (t *Tank) Light() env.State { return t.light }

func init() {
	core.Register("aquarium", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}

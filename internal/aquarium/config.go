package aquarium

import (
	"strconv"

	"aquarium/internal/core"
)

// Config controls tank construction.
type Config struct {
	Seed int64

	// SmoothLight blends band colours instead of switching them.
	SmoothLight bool

	Params core.Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:   1337,
		Params: core.DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed values are ignored; out-of-range values are clamped.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["smooth_light"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.SmoothLight = parsed
		}
	}
	if v, ok := cfg["randomize_fish_sizes"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.RandomizeFishSizes = parsed
		}
	}
	if v, ok := cfg["school_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.SchoolSize = parsed
		}
	}
	floats := map[string]*float64{
		"tank_size":        &c.Params.TankSize,
		"swimming_speed":   &c.Params.SwimmingSpeed,
		"fish_size":        &c.Params.FishSize,
		"bubble_density":   &c.Params.BubbleDensity,
		"current_strength": &c.Params.CurrentStrength,
		"time_of_day":      &c.Params.TimeOfDay,
	}
	for key, dst := range floats {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
	c.Params = c.Params.Clamp()
	return c
}

package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the hosts.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Width    int
	Height   int
	HUDWidth int

	// Overrides holds repeatable key=value parameter settings.
	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "aquarium", Scale: 2, TPS: 60, Seed: 1337, Width: 400, Height: 264, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "width", c.Width, "tank view width in pixels before scaling")
	fs.IntVar(&c.Height, "height", c.Height, "tank view height in pixels before scaling")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
}

// Validate rejects configurations no host can run.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("view size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// SimConfig returns the overrides as a map suitable for a core.Factory, with
// the seed included.
func (c *Config) SimConfig() map[string]string {
	out := c.Overrides.Map()
	if _, ok := out["seed"]; !ok {
		out["seed"] = fmt.Sprint(c.Seed)
	}
	return out
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends value after checking it has the key=value shape.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not key=value", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the overrides keyed by name; later entries win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

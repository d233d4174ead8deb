package core

// Simulator is a per-frame stateful component of the tank. Update mutates the
// simulator's own agents in place and must not retain p.
type Simulator interface {
	Update(dt, elapsed float64, p Params)
}

// Sim defines the contract hosts use to drive a whole scene.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step(dt float64)
	Elapsed() float64
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

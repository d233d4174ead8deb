package aquarium

import (
	"aquarium/internal/env"
	"aquarium/internal/sims/bubbles"
	"aquarium/internal/sims/water"

	"github.com/go-gl/mathgl/mgl64"
)

// Frame is a self-contained copy of everything a renderer needs for one
// frame. It shares no memory with the simulators.
type Frame struct {
	Index    int     `json:"frame"`
	Elapsed  float64 `json:"elapsed"`
	TankSize float64 `json:"tankSize"`

	Surface SurfaceState  `json:"surface"`
	Fish    []FishState   `json:"fish"`
	Bubbles []BubbleState `json:"bubbles"`
	Light   LightState    `json:"light"`
}

// SurfaceState is the water plane and glass transform.
type SurfaceState struct {
	PositionY float64 `json:"positionY"`
	RotationX float64 `json:"rotationX"`
	GlassSway float64 `json:"glassSway"`
}

// FishState is the render view of one fish.
type FishState struct {
	Position   mgl64.Vec3 `json:"position"`
	Heading    float64    `json:"heading"`
	Pitch      float64    `json:"pitch"`
	Roll       float64    `json:"roll"`
	Size       float64    `json:"size"`
	ColorIndex int        `json:"colorIndex"`
}

// BubbleState is the render view of one bubble in tank coordinates.
type BubbleState struct {
	Position mgl64.Vec3 `json:"position"`
	Size     float64    `json:"size"`
}

// LightState is the render view of the environment.
type LightState struct {
	Band             string     `json:"band"`
	AmbientIntensity float64    `json:"ambientIntensity"`
	AmbientColor     string     `json:"ambientColor"`
	SunIntensity     float64    `json:"sunIntensity"`
	SunColor         string     `json:"sunColor"`
	SunPosition      mgl64.Vec3 `json:"sunPosition"`
	Turbidity        float64    `json:"turbidity"`
	Rayleigh         float64    `json:"rayleigh"`
	Azimuth          float64    `json:"azimuth"`
	CausticX         float64    `json:"causticX"`
	CausticZ         float64    `json:"causticZ"`
}

// Frame snapshots the current state.
func (t *Tank) Frame() Frame {
	p := t.params.Clamp()
	elapsed := t.clock.Elapsed()
	f := Frame{
		Index:    t.frames,
		Elapsed:  elapsed,
		TankSize: p.TankSize,
		Surface: SurfaceState{
			PositionY: t.surface.PositionY,
			RotationX: t.surface.RotationX,
			GlassSway: water.GlassSway(elapsed),
		},
		Light: lightState(t.light, elapsed),
	}

	agents := t.school.Agents()
	f.Fish = make([]FishState, len(agents))
	for i, a := range agents {
		pose := a.Pose(elapsed)
		f.Fish[i] = FishState{
			Position:   a.Position,
			Heading:    pose.Yaw,
			Pitch:      pose.Pitch,
			Roll:       pose.Roll,
			Size:       a.Size,
			ColorIndex: a.ColorIndex,
		}
	}

	outlet := bubbles.Outlet(p.TankSize)
	stream := t.bubbles.Agents()
	f.Bubbles = make([]BubbleState, len(stream))
	for i, b := range stream {
		f.Bubbles[i] = BubbleState{Position: outlet.Add(b.Position), Size: b.Size}
	}
	return f
}

func lightState(s env.State, elapsed float64) LightState {
	cx, cz := env.Caustics(elapsed)
	return LightState{
		Band:             s.Band.String(),
		AmbientIntensity: s.AmbientIntensity,
		AmbientColor:     s.AmbientColor.Hex(),
		SunIntensity:     s.SunIntensity,
		SunColor:         s.SunColor.Hex(),
		SunPosition:      s.SunPosition,
		Turbidity:        s.Turbidity,
		Rayleigh:         s.Rayleigh,
		Azimuth:          s.Azimuth,
		CausticX:         cx,
		CausticZ:         cz,
	}
}

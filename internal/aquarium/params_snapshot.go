package aquarium

import (
	"strconv"

	"aquarium/internal/core"
)

func (t *Tank) Parameters() core.ParameterSnapshot {
	p := t.params
	groups := []core.ParameterGroup{
		{
			Name: "Tank",
			Params: []core.Parameter{
				floatParam("tank_size", "Tank size", p.TankSize),
				int64Param("seed", "Seed", t.cfg.Seed),
			},
		},
		{
			Name: "Fish",
			Params: []core.Parameter{
				intParam("school_size", "School size", p.SchoolSize),
				floatParam("swimming_speed", "Swimming speed", p.SwimmingSpeed),
				floatParam("fish_size", "Fish size", p.FishSize),
				boolParam("randomize_fish_sizes", "Randomize sizes", p.RandomizeFishSizes),
			},
		},
		{
			Name: "Water",
			Params: []core.Parameter{
				floatParam("bubble_density", "Bubble density", p.BubbleDensity),
				floatParam("current_strength", "Current strength", p.CurrentStrength),
			},
		},
		{
			Name:    "Lighting",
			Summary: t.light.Band.String(),
			Params: []core.Parameter{
				floatParam("time_of_day", "Time of day", p.TimeOfDay),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (t *Tank) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "school_size", Label: "School size", Type: core.ParamTypeInt, Step: 1, Min: core.MinSchoolSize, Max: core.MaxSchoolSize, HasMin: true, HasMax: true},
		{Key: "swimming_speed", Label: "Swim speed", Type: core.ParamTypeFloat, Step: 0.5, Min: core.MinSwimmingSpeed, Max: core.MaxSwimmingSpeed, HasMin: true, HasMax: true},
		{Key: "fish_size", Label: "Fish size", Type: core.ParamTypeFloat, Step: 0.1, Min: core.MinFishSize, Max: core.MaxFishSize, HasMin: true, HasMax: true},
		{Key: "randomize_fish_sizes", Label: "Random sizes", Type: core.ParamTypeBool},
		{Key: "bubble_density", Label: "Bubbles", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: core.MaxPercent, HasMin: true, HasMax: true},
		{Key: "current_strength", Label: "Current", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: core.MaxPercent, HasMin: true, HasMax: true},
		{Key: "time_of_day", Label: "Time of day", Type: core.ParamTypeFloat, Step: 2.5, Min: 0, Max: core.MaxPercent, HasMin: true, HasMax: true},
		{Key: "tank_size", Label: "Tank size", Type: core.ParamTypeFloat, Step: 1, Min: core.MinTankSize, Max: core.MaxTankSize, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter. It reports whether key is known.
func (t *Tank) SetIntParameter(key string, value int) bool {
	switch key {
	case "school_size":
		t.params.SchoolSize = value
	default:
		return false
	}
	t.params = t.params.Clamp()
	return true
}

// SetFloatParameter updates a floating point parameter. It reports whether key
// is known.
func (t *Tank) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "tank_size":
		t.params.TankSize = value
	case "swimming_speed":
		t.params.SwimmingSpeed = value
	case "fish_size":
		t.params.FishSize = value
	case "bubble_density":
		t.params.BubbleDensity = value
	case "current_strength":
		t.params.CurrentStrength = value
	case "time_of_day":
		t.params.TimeOfDay = value
	default:
		return false
	}
	t.params = t.params.Clamp()
	return true
}

// SetBoolParameter updates a boolean parameter.
func (t *Tank) SetBoolParameter(key string, value bool) bool {
	if key != "randomize_fish_sizes" {
		return false
	}
	t.params.RandomizeFishSizes = value
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

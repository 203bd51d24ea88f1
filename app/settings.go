package app

import "math"

// Range is a closed interval.
type Range struct {
	Min, Max float64
}

func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Ranges of the adjustable settings.
var (
	ImageScaleRange = Range{0, 5}
	FovRange        = Range{0, math.Pi}
	TurnSpeedRange  = Range{0.001, 0.1}
	MoveSpeedRange  = Range{0.001, 1}
)

// Settings are the user-adjustable view parameters. They are passed into
// the projection and layout steps every frame.
type Settings struct {
	ImageScale float64
	Fov        float64 // vertical, radians
	TurnSpeed  float64 // radians per tick
	MoveSpeed  float64 // world units per tick
}

func DefaultSettings() Settings {
	return Settings{
		ImageScale: 1,
		Fov:        math.Pi / 2,
		TurnSpeed:  0.02,
		MoveSpeed:  0.1,
	}
}

// Clamped returns s with every field inside its range.
func (s Settings) Clamped() Settings {
	return Settings{
		ImageScale: ImageScaleRange.Clamp(s.ImageScale),
		Fov:        FovRange.Clamp(s.Fov),
		TurnSpeed:  TurnSpeedRange.Clamp(s.TurnSpeed),
		MoveSpeed:  MoveSpeedRange.Clamp(s.MoveSpeed),
	}
}

package app

import "umapview/hal"

// Per-tick increments while an adjust key is held.
const (
	fovStep        = 0.02
	imageScaleStep = 0.05
	moveSpeedStep  = 0.005
	turnSpeedStep  = 0.0005
)

type adjust struct {
	dec, inc hal.KeyCode
	step     float64
	field    func(*Settings) *float64
}

var adjusters = []adjust{
	{hal.KeyBracketLeft, hal.KeyBracketRight, fovStep, func(s *Settings) *float64 { return &s.Fov }},
	{hal.KeyMinus, hal.KeyEqual, imageScaleStep, func(s *Settings) *float64 { return &s.ImageScale }},
	{hal.KeyComma, hal.KeyPeriod, moveSpeedStep, func(s *Settings) *float64 { return &s.MoveSpeed }},
	{hal.KeySemicolon, hal.KeyQuote, turnSpeedStep, func(s *Settings) *float64 { return &s.TurnSpeed }},
}

const (
	keyReset = hal.KeyR
	keyDebug = hal.KeyF1
)

// bound reports whether k drives a camera action; such keys never
// double as hotkeys.
func (v *Viewer) bound(k hal.KeyCode) bool {
	for _, b := range v.mapper.Bindings {
		if b == k {
			return true
		}
	}
	return false
}

func (v *Viewer) handleHotkeys() {
	s := v.settings
	changed := false
	for _, a := range adjusters {
		f := a.field(&s)
		if !v.bound(a.dec) && v.keys.Pressed(a.dec) {
			*f -= a.step
			changed = true
		}
		if !v.bound(a.inc) && v.keys.Pressed(a.inc) {
			*f += a.step
			changed = true
		}
	}
	if changed {
		v.settings = s.Clamped()
		v.log.Debug("settings changed",
			"fov", v.settings.Fov,
			"image_scale", v.settings.ImageScale,
			"move_speed", v.settings.MoveSpeed,
			"turn_speed", v.settings.TurnSpeed,
		)
	}

	if !v.bound(keyReset) && v.keys.JustPressed(keyReset) {
		v.ResetPose()
		v.log.Info("pose reset", "pose", v.pose.String())
	}
	if !v.bound(keyDebug) && v.keys.JustPressed(keyDebug) {
		v.debug = !v.debug
	}
}

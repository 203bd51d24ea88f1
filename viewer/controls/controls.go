// Package controls maps held keys to camera pose updates.
package controls

import (
	"fmt"
	"strings"

	"umapview/hal"
	"umapview/viewer/camera"

	"gonum.org/v1/gonum/spatial/r3"
)

// Action is a logical camera movement.
//
// The declaration order is also the order in which held actions are
// applied within one update; pose composition does not commute.
type Action uint8

const (
	RollLeft Action = iota
	RollRight
	LookUp
	LookDown
	LookLeft
	LookRight
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	MoveForward
	MoveBack

	actionCount
)

// Actions lists every action in application order.
var Actions = func() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}()

var actionNames = [actionCount]string{
	RollLeft:    "roll_left",
	RollRight:   "roll_right",
	LookUp:      "look_up",
	LookDown:    "look_down",
	LookLeft:    "look_left",
	LookRight:   "look_right",
	MoveLeft:    "move_left",
	MoveRight:   "move_right",
	MoveUp:      "move_up",
	MoveDown:    "move_down",
	MoveForward: "move_forward",
	MoveBack:    "move_back",
}

func (a Action) String() string {
	if a >= actionCount {
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
	return actionNames[a]
}

// ParseAction looks an action up by its snake_case name.
func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for a := Action(0); a < actionCount; a++ {
		if actionNames[a] == n {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Bindings assigns one key to every action.
type Bindings [actionCount]hal.KeyCode

// DefaultBindings: Q/E roll, arrows look, WASD move, Space/X up/down.
func DefaultBindings() Bindings {
	return Bindings{
		RollLeft:    hal.KeyQ,
		RollRight:   hal.KeyE,
		LookUp:      hal.KeyUp,
		LookDown:    hal.KeyDown,
		LookLeft:    hal.KeyLeft,
		LookRight:   hal.KeyRight,
		MoveLeft:    hal.KeyA,
		MoveRight:   hal.KeyD,
		MoveUp:      hal.KeySpace,
		MoveDown:    hal.KeyX,
		MoveForward: hal.KeyW,
		MoveBack:    hal.KeyS,
	}
}

// Set rebinds an action by name.
func (b *Bindings) Set(action string, key hal.KeyCode) error {
	a, err := ParseAction(action)
	if err != nil {
		return err
	}
	if key == hal.KeyUnknown {
		return fmt.Errorf("action %s: no key", a)
	}
	b[a] = key
	return nil
}

// Speeds are the per-update step sizes.
type Speeds struct {
	Turn float64 // radians
	Move float64 // world units
}

// Step applies one fixed-size update for action to pose.
func Step(pose *camera.Pose, a Action, s Speeds) {
	switch a {
	case RollLeft:
		pose.Rotate(r3.Vec{Z: 1}, -s.Turn)
	case RollRight:
		pose.Rotate(r3.Vec{Z: 1}, s.Turn)
	case LookUp:
		pose.Rotate(r3.Vec{X: 1}, -s.Turn)
	case LookDown:
		pose.Rotate(r3.Vec{X: 1}, s.Turn)
	case LookLeft:
		pose.Rotate(r3.Vec{Y: 1}, -s.Turn)
	case LookRight:
		pose.Rotate(r3.Vec{Y: 1}, s.Turn)
	case MoveLeft:
		pose.Translate(r3.Vec{X: s.Move})
	case MoveRight:
		pose.Translate(r3.Vec{X: -s.Move})
	case MoveUp:
		pose.Translate(r3.Vec{Y: -s.Move})
	case MoveDown:
		pose.Translate(r3.Vec{Y: s.Move})
	case MoveForward:
		pose.Translate(r3.Vec{Z: s.Move})
	case MoveBack:
		pose.Translate(r3.Vec{Z: -s.Move})
	}
}

// Mapper turns held keys into pose updates.
type Mapper struct {
	Bindings Bindings

	applied []Action
}

func NewMapper(b Bindings) *Mapper {
	return &Mapper{Bindings: b, applied: make([]Action, 0, actionCount)}
}

// Apply issues one update per held action, in declaration order, and
// returns the actions applied. The returned slice is reused by the next call.
func (m *Mapper) Apply(keys hal.KeyState, pose *camera.Pose, s Speeds) []Action {
	m.applied = m.applied[:0]
	if keys == nil || pose == nil {
		return m.applied
	}
	for _, a := range Actions {
		if keys.Pressed(m.Bindings[a]) {
			Step(pose, a, s)
			m.applied = append(m.applied, a)
		}
	}
	return m.applied
}

//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[KeyCode]ebiten.Key{
	KeyUp:           ebiten.KeyArrowUp,
	KeyDown:         ebiten.KeyArrowDown,
	KeyLeft:         ebiten.KeyArrowLeft,
	KeyRight:        ebiten.KeyArrowRight,
	KeyEnter:        ebiten.KeyEnter,
	KeyEscape:       ebiten.KeyEscape,
	KeyBackspace:    ebiten.KeyBackspace,
	KeyTab:          ebiten.KeyTab,
	KeyDelete:       ebiten.KeyDelete,
	KeyHome:         ebiten.KeyHome,
	KeyEnd:          ebiten.KeyEnd,
	KeyF1:           ebiten.KeyF1,
	KeyF2:           ebiten.KeyF2,
	KeyF3:           ebiten.KeyF3,
	KeySpace:        ebiten.KeySpace,
	KeyMinus:        ebiten.KeyMinus,
	KeyEqual:        ebiten.KeyEqual,
	KeyBracketLeft:  ebiten.KeyBracketLeft,
	KeyBracketRight: ebiten.KeyBracketRight,
	KeyComma:        ebiten.KeyComma,
	KeyPeriod:       ebiten.KeyPeriod,
	KeySemicolon:    ebiten.KeySemicolon,
	KeyQuote:        ebiten.KeyQuote,
	KeyA:            ebiten.KeyA,
	KeyB:            ebiten.KeyB,
	KeyC:            ebiten.KeyC,
	KeyD:            ebiten.KeyD,
	KeyE:            ebiten.KeyE,
	KeyF:            ebiten.KeyF,
	KeyG:            ebiten.KeyG,
	KeyH:            ebiten.KeyH,
	KeyI:            ebiten.KeyI,
	KeyJ:            ebiten.KeyJ,
	KeyK:            ebiten.KeyK,
	KeyL:            ebiten.KeyL,
	KeyM:            ebiten.KeyM,
	KeyN:            ebiten.KeyN,
	KeyO:            ebiten.KeyO,
	KeyP:            ebiten.KeyP,
	KeyQ:            ebiten.KeyQ,
	KeyR:            ebiten.KeyR,
	KeyS:            ebiten.KeyS,
	KeyT:            ebiten.KeyT,
	KeyU:            ebiten.KeyU,
	KeyV:            ebiten.KeyV,
	KeyW:            ebiten.KeyW,
	KeyX:            ebiten.KeyX,
	KeyY:            ebiten.KeyY,
	KeyZ:            ebiten.KeyZ,
	Key0:            ebiten.KeyDigit0,
	Key1:            ebiten.KeyDigit1,
	Key2:            ebiten.KeyDigit2,
	Key3:            ebiten.KeyDigit3,
	Key4:            ebiten.KeyDigit4,
	Key5:            ebiten.KeyDigit5,
	Key6:            ebiten.KeyDigit6,
	Key7:            ebiten.KeyDigit7,
	Key8:            ebiten.KeyDigit8,
	Key9:            ebiten.KeyDigit9,
}

// hostKeyboard reads ebiten's key state. Only valid inside Update.
type hostKeyboard struct{}

func newHostKeyboard() *hostKeyboard { return &hostKeyboard{} }

func (hostKeyboard) Pressed(k KeyCode) bool {
	ek, ok := ebitenKeys[k]
	return ok && ebiten.IsKeyPressed(ek)
}

func (hostKeyboard) JustPressed(k KeyCode) bool {
	ek, ok := ebitenKeys[k]
	return ok && inpututil.IsKeyJustPressed(ek)
}

package hal

import (
	"fmt"
	"strings"
)

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
	KeyF1
	KeyF2
	KeyF3
	KeySpace
	KeyMinus
	KeyEqual
	KeyBracketLeft
	KeyBracketRight
	KeyComma
	KeyPeriod
	KeySemicolon
	KeyQuote
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:      "Unknown",
	KeyUp:           "ArrowUp",
	KeyDown:         "ArrowDown",
	KeyLeft:         "ArrowLeft",
	KeyRight:        "ArrowRight",
	KeyEnter:        "Enter",
	KeyEscape:       "Escape",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyDelete:       "Delete",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeySpace:        "Space",
	KeyMinus:        "Minus",
	KeyEqual:        "Equal",
	KeyBracketLeft:  "BracketLeft",
	KeyBracketRight: "BracketRight",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySemicolon:    "Semicolon",
	KeyQuote:        "Quote",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + int(k-Key0)))
	}
}

func (k KeyCode) String() string {
	if k >= keyCount {
		return fmt.Sprintf("KeyCode(%d)", uint16(k))
	}
	return keyNames[k]
}

// ParseKeyCode looks a key up by name, case-insensitively.
// "Up", "Down", "Left" and "Right" are accepted for the arrow keys.
func ParseKeyCode(name string) (KeyCode, error) {
	n := strings.TrimSpace(name)
	for k := KeyCode(1); k < keyCount; k++ {
		if strings.EqualFold(keyNames[k], n) || strings.EqualFold(strings.TrimPrefix(keyNames[k], "Arrow"), n) {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k KeyCode) MarshalText() ([]byte, error) {
	if k == KeyUnknown || k >= keyCount {
		return nil, fmt.Errorf("cannot marshal key %d", uint16(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *KeyCode) UnmarshalText(b []byte) error {
	v, err := ParseKeyCode(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

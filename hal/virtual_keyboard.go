package hal

// VirtualKeyboard is a scripted KeyState for headless runs and tests.
//
// Hold/Release change the state immediately; Tick marks the end of an
// update so that JustPressed only reports keys that went down since the
// previous tick.
type VirtualKeyboard struct {
	held [keyCount]bool
	prev [keyCount]bool
}

func NewVirtualKeyboard(held ...KeyCode) *VirtualKeyboard {
	k := &VirtualKeyboard{}
	for _, c := range held {
		k.Hold(c)
	}
	return k
}

func (k *VirtualKeyboard) Hold(c KeyCode) {
	if c < keyCount {
		k.held[c] = true
	}
}

func (k *VirtualKeyboard) Release(c KeyCode) {
	if c < keyCount {
		k.held[c] = false
	}
}

// ReleaseAll lifts every key.
func (k *VirtualKeyboard) ReleaseAll() {
	k.held = [keyCount]bool{}
}

func (k *VirtualKeyboard) Pressed(c KeyCode) bool {
	return c < keyCount && k.held[c]
}

func (k *VirtualKeyboard) JustPressed(c KeyCode) bool {
	return c < keyCount && k.held[c] && !k.prev[c]
}

// Tick latches the current state as the previous tick's state.
func (k *VirtualKeyboard) Tick() {
	k.prev = k.held
}

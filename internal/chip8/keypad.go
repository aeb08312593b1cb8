package chip8

// NumKeys is the size of the hex keypad (0x0-0xF).
const NumKeys = 16

// Keypad holds the current key states written by the host and a snapshot of
// the previous states taken once per CPU cycle. A key "was released" when
// it appears pressed in the snapshot but not in the current state; the
// FX0A wait-for-key opcode is built on that edge.
//
// Keypad layout:
//
//	1  2  3  C
//	4  5  6  D
//	7  8  9  E
//	A  0  B  F
type Keypad struct {
	current  [NumKeys]bool
	previous [NumKeys]bool
}

// Set records the state of key. Out-of-range keys are ignored.
func (k *Keypad) Set(key byte, pressed bool) {
	if int(key) < NumKeys {
		k.current[key] = pressed
	}
}

// IsPressed reports whether key is currently down.
func (k *Keypad) IsPressed(key byte) bool {
	return int(key) < NumKeys && k.current[key]
}

// WasReleased reports whether key went from pressed in the snapshot to
// released now.
func (k *Keypad) WasReleased(key byte) bool {
	return int(key) < NumKeys && k.previous[key] && !k.current[key]
}

// Snapshot copies the current states over the previous ones. The VM calls
// this exactly once per CPU cycle, after the cycle's opcode executed.
func (k *Keypad) Snapshot() {
	k.previous = k.current
}

// Reset releases every key in both buffers.
func (k *Keypad) Reset() {
	k.current = [NumKeys]bool{}
	k.previous = [NumKeys]bool{}
}

package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeypad_SetAndIsPressed(t *testing.T) {
	k := &Keypad{}

	k.Set(0x5, true)
	require.True(t, k.IsPressed(0x5))
	require.False(t, k.IsPressed(0x6))

	k.Set(0x5, false)
	require.False(t, k.IsPressed(0x5))

	t.Run("out of range keys are ignored", func(t *testing.T) {
		k.Set(16, true)
		k.Set(0xFF, true)
		require.False(t, k.IsPressed(16))
		require.False(t, k.IsPressed(0xFF))
	})
}

func TestKeypad_WasReleased(t *testing.T) {
	k := &Keypad{}

	// pressed but never snapshotted: no edge
	k.Set(0x2, true)
	k.Set(0x2, false)
	require.False(t, k.WasReleased(0x2))

	// pressed in the snapshot, released now: edge
	k.Set(0x2, true)
	k.Snapshot()
	k.Set(0x2, false)
	require.True(t, k.WasReleased(0x2))

	// still held: no edge
	k.Set(0x3, true)
	k.Snapshot()
	require.False(t, k.WasReleased(0x3))

	// edge disappears once the release is snapshotted
	k.Snapshot()
	require.False(t, k.WasReleased(0x2))
}

func TestKeypad_Reset(t *testing.T) {
	k := &Keypad{}
	k.Set(0x1, true)
	k.Snapshot()
	k.Reset()
	require.False(t, k.IsPressed(0x1))
	require.False(t, k.WasReleased(0x1))
}

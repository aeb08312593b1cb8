package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory_ReadWrite(t *testing.T) {
	m := &Memory{}

	t.Run("write then read", func(t *testing.T) {
		require.NoError(t, m.Write(0x200, 0xAB))
		b, err := m.Read(0x200)
		require.NoError(t, err)
		require.Equal(t, byte(0xAB), b)
	})

	t.Run("last valid address", func(t *testing.T) {
		require.NoError(t, m.Write(0xFFF, 0x01))
		b, err := m.Read(0xFFF)
		require.NoError(t, err)
		require.Equal(t, byte(0x01), b)
	})

	t.Run("read out of bounds", func(t *testing.T) {
		_, err := m.Read(0x1000)
		require.ErrorIs(t, err, ErrMemoryOutOfBounds)
	})

	t.Run("write out of bounds", func(t *testing.T) {
		err := m.Write(0x1000, 0xFF)
		require.ErrorIs(t, err, ErrMemoryOutOfBounds)
	})
}

func TestMemory_Ranges(t *testing.T) {
	m := &Memory{}

	t.Run("round trip", func(t *testing.T) {
		data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
		require.NoError(t, m.WriteRange(0x300, data))
		got, err := m.ReadRange(0x300, len(data))
		require.NoError(t, err)
		require.Equal(t, data, got)
	})

	t.Run("read range is a copy", func(t *testing.T) {
		got, err := m.ReadRange(0x300, 1)
		require.NoError(t, err)
		got[0] = 0x00
		b, err := m.Read(0x300)
		require.NoError(t, err)
		require.Equal(t, byte(0xDE), b)
	})

	t.Run("range up to the end", func(t *testing.T) {
		require.NoError(t, m.WriteRange(0xFFE, []byte{1, 2}))
		_, err := m.ReadRange(0xFFE, 2)
		require.NoError(t, err)
	})

	t.Run("range straddles the end", func(t *testing.T) {
		err := m.WriteRange(0xFFF, []byte{1, 2})
		require.ErrorIs(t, err, ErrMemoryOutOfBounds)
		_, rerr := m.ReadRange(0xFFF, 2)
		require.ErrorIs(t, rerr, ErrMemoryOutOfBounds)
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := m.ReadRange(0x200, -1)
		require.ErrorIs(t, err, ErrMemoryOutOfBounds)
	})
}

func TestMemory_Clear(t *testing.T) {
	m := &Memory{}
	require.NoError(t, m.Write(0x123, 0xFF))
	m.Clear()
	b, err := m.Read(0x123)
	require.NoError(t, err)
	require.Equal(t, byte(0), b)
}

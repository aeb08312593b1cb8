package chip8

import "github.com/m-mizutani/goerr"

// MemorySize is the full addressable CHIP-8 RAM.
const MemorySize = 4096

//		System memory map
// 		+---------------+= 0xFFF (4095) End Chip-8 RAM
// 		|               |
// 		| 0x200 to 0xFFF|
// 		|     Chip-8    |
// 		| Program / Data|
// 		|     Space     |
// 		|               |
// 		+---------------+= 0x200 (512) Start of most Chip-8 programs
// 		| 0x000 to 0x1FF|
// 		| Reserved for  |
// 		|  interpreter  |
// 		+---------------+= 0x000 (0) Begin Chip-8 RAM. The font set lives at 0x050-0x09F.
//

// Memory is the 4KiB linear address space. Every access is bounds checked;
// the original hardware left out-of-range behavior undefined, returning a
// typed error lets the host decide whether to halt or reset.
type Memory struct {
	bytes [MemorySize]byte
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) (byte, error) {
	if int(addr) >= MemorySize {
		return 0, goerr.Wrap(ErrMemoryOutOfBounds, "read").With("addr", addr)
	}
	return m.bytes[addr], nil
}

// Write stores b at addr.
func (m *Memory) Write(addr uint16, b byte) error {
	if int(addr) >= MemorySize {
		return goerr.Wrap(ErrMemoryOutOfBounds, "write").With("addr", addr)
	}
	m.bytes[addr] = b
	return nil
}

// ReadRange returns a copy of n bytes starting at addr.
func (m *Memory) ReadRange(addr uint16, n int) ([]byte, error) {
	if n < 0 || int(addr)+n > MemorySize {
		return nil, goerr.Wrap(ErrMemoryOutOfBounds, "read range").
			With("addr", addr).
			With("len", n)
	}
	out := make([]byte, n)
	copy(out, m.bytes[int(addr):int(addr)+n])
	return out, nil
}

// WriteRange stores data starting at addr.
func (m *Memory) WriteRange(addr uint16, data []byte) error {
	if int(addr)+len(data) > MemorySize {
		return goerr.Wrap(ErrMemoryOutOfBounds, "write range").
			With("addr", addr).
			With("len", len(data))
	}
	copy(m.bytes[int(addr):], data)
	return nil
}

// Clear zeroes all of memory.
func (m *Memory) Clear() {
	m.bytes = [MemorySize]byte{}
}

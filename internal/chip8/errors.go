package chip8

import "github.com/m-mizutani/goerr"

// Error kinds surfaced by the core. Failure sites wrap one of these
// sentinels and attach the offending values, so callers can match the kind
// with errors.Is and still see the address/coordinates/opcode in the
// message chain.
var (
	// ErrMemoryOutOfBounds is returned for any read or write outside the
	// 4KiB address space, including ranges that straddle the end of it.
	ErrMemoryOutOfBounds = goerr.New("memory address out of bounds")

	// ErrGraphicsOutOfBounds is returned by the pixel accessors for
	// coordinates outside the 64x32 display.
	ErrGraphicsOutOfBounds = goerr.New("pixel coordinates out of bounds")

	// ErrROMTooLarge is returned by LoadROM when the program does not fit
	// between 0x200 and the end of memory.
	ErrROMTooLarge = goerr.New("rom too large")

	// ErrInvalidOpcode is returned when decode reaches an unassigned slot,
	// or when a call/return would move the stack pointer out of range.
	ErrInvalidOpcode = goerr.New("invalid opcode")
)

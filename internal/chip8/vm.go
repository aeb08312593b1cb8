// Package chip8 implements the CHIP-8 virtual machine: 4KiB of memory, a
// 16-register CPU covering the 34 standard opcodes (0NNN is rejected as
// invalid), a 64x32 XOR-blit framebuffer, a
// 16-key hex keypad, and the two 60Hz countdown timers. The package is pure
// computation; window, audio, and input hosts live in their own packages
// and drive the machine through Step.
package chip8

import "github.com/m-mizutani/goerr"

// Clock rates. The timers always count at 60Hz; the CPU defaults to the
// customary 700 instructions per second and can be tuned via SetSpeed.
const (
	DefaultCPUHz = 700
	TimerHz      = 60
)

// ROMStart is where programs are loaded and MaxROMSize is the room left
// above it.
const (
	ROMStart   = 0x200
	MaxROMSize = MemorySize - ROMStart
)

// VM wires the memory, display, keypad, timers, and CPU together and owns
// the two clock domains. The host calls Step with the elapsed wall-clock
// seconds; the VM converts that into whole CPU cycles and timer ticks
// through two independent accumulators, so CPU speed and the 60Hz timers
// stay decoupled no matter how jittery the host loop is.
type VM struct {
	mem     *Memory
	display *Display
	keypad  *Keypad
	delay   *Timer
	sound   *Timer
	cpu     *CPU

	cpuHz    float64
	cpuAcc   float64
	timerAcc float64

	paused bool
}

// NewVM builds a machine in its reset state with a seeded random source.
func NewVM() *VM {
	return NewVMWithRand(newMathRand())
}

// NewVMWithRand builds a machine using the given random byte source, which
// lets tests script the CXKK opcode.
func NewVMWithRand(rng RandByter) *VM {
	mem := &Memory{}
	display := &Display{}
	keypad := &Keypad{}
	delay := &Timer{}
	sound := &Timer{}

	vm := &VM{
		mem:     mem,
		display: display,
		keypad:  keypad,
		delay:   delay,
		sound:   sound,
		cpu:     newCPU(mem, display, keypad, delay, sound, rng),
		cpuHz:   DefaultCPUHz,
	}
	vm.Reset()
	return vm
}

// Reset returns every component to its power-on state: zeroed memory with
// the font set reloaded at 0x050, cleared display and keypad, timers at
// zero, and the PC back at 0x200.
func (vm *VM) Reset() {
	vm.mem.Clear()
	vm.display.Clear()
	vm.keypad.Reset()
	vm.delay.Set(0)
	vm.sound.Set(0)
	vm.cpu.reset()
	vm.cpuAcc = 0
	vm.timerAcc = 0

	// The write cannot fail: the font region is well inside memory.
	_ = vm.mem.WriteRange(FontOffset, FontSet[:])
}

// LoadROM copies a program into memory starting at 0x200.
func (vm *VM) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return goerr.Wrap(ErrROMTooLarge, "load rom").With("size", len(rom))
	}
	return vm.mem.WriteRange(ROMStart, rom)
}

// Step advances the machine by delta seconds. CPU cycles and timer ticks
// are drained from their own accumulators; a timer tick never lands in the
// middle of an opcode. The first cycle error stops the call and is
// returned to the host.
func (vm *VM) Step(delta float64) error {
	if vm.paused {
		return nil
	}

	vm.cpuAcc += delta
	vm.timerAcc += delta

	cpuCycleTime := 1.0 / vm.cpuHz
	for vm.cpuAcc >= cpuCycleTime {
		vm.cpuAcc -= cpuCycleTime
		if err := vm.cpu.cycle(); err != nil {
			return err
		}
		vm.keypad.Snapshot()
	}

	timerCycleTime := 1.0 / TimerHz
	for vm.timerAcc >= timerCycleTime {
		vm.timerAcc -= timerCycleTime
		vm.delay.Tick()
		vm.sound.Tick()
	}

	return nil
}

// SetSpeed changes how many CPU cycles run per second. Values below one
// are ignored. The timers are unaffected.
func (vm *VM) SetSpeed(hz int) {
	if hz >= 1 {
		vm.cpuHz = float64(hz)
	}
}

// Pause stops Step from executing cycles or ticking timers.
func (vm *VM) Pause() {
	vm.paused = true
}

// Resume lets Step run again.
func (vm *VM) Resume() {
	vm.paused = false
}

// Paused reports whether the machine is paused.
func (vm *VM) Paused() bool {
	return vm.paused
}

// Graphics returns a copy of the framebuffer for the renderer.
func (vm *VM) Graphics() [DisplayWidth * DisplayHeight]bool {
	return vm.display.Graphics()
}

// DrawFlag reports whether the display changed since the last call, so the
// host can skip redrawing idle frames.
func (vm *VM) DrawFlag() bool {
	if vm.display.dirty {
		vm.display.dirty = false
		return true
	}
	return false
}

// Keypad exposes the key state buffer for the input host.
func (vm *VM) Keypad() *Keypad {
	return vm.keypad
}

// SoundTimerValue returns the sound timer register; the host beeps while
// it is above zero.
func (vm *VM) SoundTimerValue() byte {
	return vm.sound.Get()
}

// DelayTimerValue returns the delay timer register.
func (vm *VM) DelayTimerValue() byte {
	return vm.delay.Get()
}

package chip8

import "github.com/m-mizutani/goerr"

// pcStart is where all programs begin execution.
const pcStart = 0x200

// stackDepth is how many return addresses fit on the call stack.
const stackDepth = 16

// CPU holds the register file and walks memory one opcode at a time. It
// borrows its peers (memory, display, keypad, timers, rng) from the owning
// VM and never outlives it.
type CPU struct {
	// 8-bit general purpose registers V0-VF. VF doubles as the
	// carry/borrow/collision flag.
	v [16]byte

	// Index register (16 bits; FX1E wraps it at 0xFFFF).
	i uint16

	// Program counter.
	pc uint16

	// Call stack and stack pointer. sp points at the next free slot.
	stack [stackDepth]uint16
	sp    byte

	// Opcode under examination.
	opcode uint16

	// While waiting on FX0A the CPU stops fetching and polls the keypad
	// for a released key each cycle; waitReg is where the key index goes.
	waiting bool
	waitReg uint16

	mem     *Memory
	display *Display
	keypad  *Keypad
	delay   *Timer
	sound   *Timer
	rng     RandByter
}

func newCPU(mem *Memory, display *Display, keypad *Keypad, delay, sound *Timer, rng RandByter) *CPU {
	return &CPU{
		pc:      pcStart,
		mem:     mem,
		display: display,
		keypad:  keypad,
		delay:   delay,
		sound:   sound,
		rng:     rng,
	}
}

func (c *CPU) reset() {
	c.v = [16]byte{}
	c.i = 0
	c.pc = pcStart
	c.stack = [stackDepth]uint16{}
	c.sp = 0
	c.opcode = 0
	c.waiting = false
	c.waitReg = 0
}

// cycle runs one fetch, decode, and execute. While waiting for a key it
// only polls the keypad; the PC stays parked on the FX0A opcode.
func (c *CPU) cycle() error {
	if c.waiting {
		c.pollWaitKey()
		return nil
	}

	if err := c.fetch(); err != nil {
		return err
	}
	return c.execute()
}

// fetch merges the two bytes at PC into the current opcode and advances PC
// past them. Branch opcodes overwrite PC during execute; skip opcodes add
// another +2.
func (c *CPU) fetch() error {
	hi, err := c.mem.Read(c.pc)
	if err != nil {
		return err
	}
	lo, err := c.mem.Read(c.pc + 1)
	if err != nil {
		return err
	}
	c.opcode = uint16(hi)<<8 | uint16(lo)
	c.pc += 2
	return nil
}

// execute dispatches the current opcode. The first nibble picks the
// primary handler; the 0, 8, E, and F groups dispatch again on the low
// nibble or low byte.
func (c *CPU) execute() error {
	x := (c.opcode & 0x0F00) >> 8 // Vx register identifier
	y := (c.opcode & 0x00F0) >> 4 // Vy register identifier
	n := byte(c.opcode & 0x000F)  // low 4 bits
	kk := byte(c.opcode & 0x00FF) // low 8 bits
	nnn := c.opcode & 0x0FFF      // low 12 bits

	switch c.opcode & 0xF000 {
	case 0x0000:
		switch kk {
		case 0xE0: // 00E0 -> Clear the screen
			c.cls()
		case 0xEE: // 00EE -> Return from a subroutine
			return c.ret()
		default:
			return c.invalidOpcode()
		}
	case 0x1000: // 1NNN -> Jump to address NNN
		c.jump(nnn)
	case 0x2000: // 2NNN -> Call subroutine at NNN
		return c.call(nnn)
	case 0x3000: // 3XKK -> Skip next instruction if VX == KK
		c.skipIfEqual(x, kk)
	case 0x4000: // 4XKK -> Skip next instruction if VX != KK
		c.skipIfNotEqual(x, kk)
	case 0x5000: // 5XY0 -> Skip next instruction if VX == VY
		if n != 0 {
			return c.invalidOpcode()
		}
		c.skipIfEqualXY(x, y)
	case 0x6000: // 6XKK -> Store KK in VX
		c.load(x, kk)
	case 0x7000: // 7XKK -> Add KK to VX without carry
		c.add(x, kk)
	case 0x8000:
		switch n {
		case 0x0: // 8XY0 -> Store VY in VX
			c.loadXY(x, y)
		case 0x1: // 8XY1 -> Set VX to VX OR VY
			c.or(x, y)
		case 0x2: // 8XY2 -> Set VX to VX AND VY
			c.and(x, y)
		case 0x3: // 8XY3 -> Set VX to VX XOR VY
			c.xor(x, y)
		case 0x4: // 8XY4 -> Add VY to VX with carry in VF
			c.addXY(x, y)
		case 0x5: // 8XY5 -> Subtract VY from VX, VF = no borrow
			c.subXY(x, y)
		case 0x6: // 8XY6 -> Shift VX right, VF = old LSB
			c.shr(x)
		case 0x7: // 8XY7 -> Set VX to VY - VX, VF = no borrow
			c.subYX(x, y)
		case 0xE: // 8XYE -> Shift VX left, VF = old MSB
			c.shl(x)
		default:
			return c.invalidOpcode()
		}
	case 0x9000: // 9XY0 -> Skip next instruction if VX != VY
		if n != 0 {
			return c.invalidOpcode()
		}
		c.skipIfNotEqualXY(x, y)
	case 0xA000: // ANNN -> Store NNN in I
		c.loadI(nnn)
	case 0xB000: // BNNN -> Jump to NNN + V0
		c.jumpV0(nnn)
	case 0xC000: // CXKK -> Set VX to a random byte masked with KK
		c.random(x, kk)
	case 0xD000: // DXYN -> Draw N-byte sprite at (VX, VY), VF = collision
		return c.draw(x, y, n)
	case 0xE000:
		switch kk {
		case 0x9E: // EX9E -> Skip next instruction if key VX is pressed
			c.skipIfPressed(x)
		case 0xA1: // EXA1 -> Skip next instruction if key VX is not pressed
			c.skipIfNotPressed(x)
		default:
			return c.invalidOpcode()
		}
	case 0xF000:
		switch kk {
		case 0x07: // FX07 -> Store the delay timer in VX
			c.loadXDT(x)
		case 0x0A: // FX0A -> Wait for a key release, store the key in VX
			c.waitKey(x)
		case 0x15: // FX15 -> Set the delay timer to VX
			c.loadDTX(x)
		case 0x18: // FX18 -> Set the sound timer to VX
			c.loadSTX(x)
		case 0x1E: // FX1E -> Add VX to I
			c.addIX(x)
		case 0x29: // FX29 -> Point I at the font sprite for digit VX
			c.loadFont(x)
		case 0x33: // FX33 -> Store BCD of VX at I, I+1, I+2
			return c.bcd(x)
		case 0x55: // FX55 -> Store V0..VX in memory starting at I
			return c.saveRegs(x)
		case 0x65: // FX65 -> Fill V0..VX from memory starting at I
			return c.loadRegs(x)
		default:
			return c.invalidOpcode()
		}
	default:
		return c.invalidOpcode()
	}
	return nil
}

// pollWaitKey scans for a key that was pressed in the last snapshot and is
// released now. When one is found the key index lands in the waiting
// register and the PC finally moves past the FX0A opcode.
func (c *CPU) pollWaitKey() {
	for k := byte(0); k < NumKeys; k++ {
		if c.keypad.WasReleased(k) {
			c.v[c.waitReg] = k
			c.pc += 2
			c.waiting = false
			return
		}
	}
}

func (c *CPU) invalidOpcode() error {
	return goerr.Wrap(ErrInvalidOpcode, "decode").
		With("opcode", c.opcode).
		With("pc", c.pc-2)
}

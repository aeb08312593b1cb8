package chip8

import "github.com/m-mizutani/goerr"

// Opcode bodies, grouped by first nibble. Fetch already advanced the PC, so
// skips add another +2 and branches overwrite it. For the 8XY_ arithmetic
// group the result is computed and written before VF: when X is 0xF the
// flag must win, so VF is always the last write.

// 00E0
func (c *CPU) cls() {
	c.display.Clear()
}

// 00EE
func (c *CPU) ret() error {
	if c.sp == 0 {
		return goerr.Wrap(ErrInvalidOpcode, "return with empty stack").
			With("opcode", c.opcode).
			With("pc", c.pc-2)
	}
	c.sp--
	c.pc = c.stack[c.sp]
	return nil
}

// 1NNN
func (c *CPU) jump(nnn uint16) {
	c.pc = nnn
}

// 2NNN
func (c *CPU) call(nnn uint16) error {
	if int(c.sp) >= stackDepth {
		return goerr.Wrap(ErrInvalidOpcode, "call stack overflow").
			With("opcode", c.opcode).
			With("pc", c.pc-2)
	}
	c.stack[c.sp] = c.pc
	c.sp++
	c.pc = nnn
	return nil
}

// 3XKK
func (c *CPU) skipIfEqual(x uint16, kk byte) {
	if c.v[x] == kk {
		c.pc += 2
	}
}

// 4XKK
func (c *CPU) skipIfNotEqual(x uint16, kk byte) {
	if c.v[x] != kk {
		c.pc += 2
	}
}

// 5XY0
func (c *CPU) skipIfEqualXY(x, y uint16) {
	if c.v[x] == c.v[y] {
		c.pc += 2
	}
}

// 6XKK
func (c *CPU) load(x uint16, kk byte) {
	c.v[x] = kk
}

// 7XKK, no carry
func (c *CPU) add(x uint16, kk byte) {
	c.v[x] += kk
}

// 8XY0
func (c *CPU) loadXY(x, y uint16) {
	c.v[x] = c.v[y]
}

// 8XY1
func (c *CPU) or(x, y uint16) {
	c.v[x] |= c.v[y]
}

// 8XY2
func (c *CPU) and(x, y uint16) {
	c.v[x] &= c.v[y]
}

// 8XY3
func (c *CPU) xor(x, y uint16) {
	c.v[x] ^= c.v[y]
}

// 8XY4
func (c *CPU) addXY(x, y uint16) {
	sum := uint16(c.v[x]) + uint16(c.v[y])
	carry := byte(0)
	if sum > 0xFF {
		carry = 1
	}
	c.v[x] = byte(sum)
	c.v[0xF] = carry
}

// 8XY5, VF = 1 when no borrow
func (c *CPU) subXY(x, y uint16) {
	noBorrow := byte(0)
	if c.v[x] >= c.v[y] {
		noBorrow = 1
	}
	c.v[x] -= c.v[y]
	c.v[0xF] = noBorrow
}

// 8XY6, shifts VX in place (modern convention, not the COSMAC VY variant)
func (c *CPU) shr(x uint16) {
	lsb := c.v[x] & 0x01
	c.v[x] >>= 1
	c.v[0xF] = lsb
}

// 8XY7, VF = 1 when no borrow
func (c *CPU) subYX(x, y uint16) {
	noBorrow := byte(0)
	if c.v[y] >= c.v[x] {
		noBorrow = 1
	}
	c.v[x] = c.v[y] - c.v[x]
	c.v[0xF] = noBorrow
}

// 8XYE, shifts VX in place
func (c *CPU) shl(x uint16) {
	msb := c.v[x] >> 7
	c.v[x] <<= 1
	c.v[0xF] = msb
}

// 9XY0
func (c *CPU) skipIfNotEqualXY(x, y uint16) {
	if c.v[x] != c.v[y] {
		c.pc += 2
	}
}

// ANNN
func (c *CPU) loadI(nnn uint16) {
	c.i = nnn
}

// BNNN, offset register is V0 (not VX as on SUPER-CHIP)
func (c *CPU) jumpV0(nnn uint16) {
	c.pc = nnn + uint16(c.v[0])
}

// CXKK
func (c *CPU) random(x uint16, kk byte) {
	c.v[x] = c.rng.RandByte() & kk
}

// DXYN
func (c *CPU) draw(x, y uint16, n byte) error {
	sprite, err := c.mem.ReadRange(c.i, int(n))
	if err != nil {
		return err
	}
	if c.display.DrawSprite(int(c.v[x]), int(c.v[y]), sprite) {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
	return nil
}

// EX9E
func (c *CPU) skipIfPressed(x uint16) {
	if c.keypad.IsPressed(c.v[x] & 0xF) {
		c.pc += 2
	}
}

// EXA1
func (c *CPU) skipIfNotPressed(x uint16) {
	if !c.keypad.IsPressed(c.v[x] & 0xF) {
		c.pc += 2
	}
}

// FX07
func (c *CPU) loadXDT(x uint16) {
	c.v[x] = c.delay.Get()
}

// FX0A. The PC is parked back on this opcode until a key release shows up
// in the snapshot; timers keep running while the CPU waits.
func (c *CPU) waitKey(x uint16) {
	c.waiting = true
	c.waitReg = x
	c.pc -= 2
}

// FX15
func (c *CPU) loadDTX(x uint16) {
	c.delay.Set(c.v[x])
}

// FX18
func (c *CPU) loadSTX(x uint16) {
	c.sound.Set(c.v[x])
}

// FX1E
func (c *CPU) addIX(x uint16) {
	c.i = (c.i + uint16(c.v[x])) & 0xFFFF
}

// FX29
func (c *CPU) loadFont(x uint16) {
	c.i = FontOffset + uint16(c.v[x]&0xF)*FontHeight
}

// FX33
func (c *CPU) bcd(x uint16) error {
	v := c.v[x]
	if err := c.mem.Write(c.i, v/100); err != nil {
		return err
	}
	if err := c.mem.Write(c.i+1, (v/10)%10); err != nil {
		return err
	}
	return c.mem.Write(c.i+2, v%10)
}

// FX55, I is left unchanged (no COSMAC I += X + 1)
func (c *CPU) saveRegs(x uint16) error {
	for ind := uint16(0); ind <= x; ind++ {
		if err := c.mem.Write(c.i+ind, c.v[ind]); err != nil {
			return err
		}
	}
	return nil
}

// FX65, I is left unchanged
func (c *CPU) loadRegs(x uint16) error {
	for ind := uint16(0); ind <= x; ind++ {
		b, err := c.mem.Read(c.i + ind)
		if err != nil {
			return err
		}
		c.v[ind] = b
	}
	return nil
}

package chip8

import "github.com/m-mizutani/goerr"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the 64x32 monochrome framebuffer. The chip-8 has one
// instruction that draws a sprite to the screen. Drawing is done in XOR
// mode and if a pixel is turned off as a result of drawing, the VF register
// is set. This is used for collision detection.
type Display struct {
	// Pixels in row-major order (y outer, x inner). True means lit.
	gfx [DisplayWidth * DisplayHeight]bool

	// Set whenever the buffer changes so the host can skip idle frames.
	dirty bool
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.gfx = [DisplayWidth * DisplayHeight]bool{}
	d.dirty = true
}

// Pixel reports whether the pixel at (x, y) is lit.
func (d *Display) Pixel(x, y int) (bool, error) {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false, goerr.Wrap(ErrGraphicsOutOfBounds, "pixel").With("x", x).With("y", y)
	}
	return d.gfx[y*DisplayWidth+x], nil
}

// SetPixel sets the pixel at (x, y) to on.
func (d *Display) SetPixel(x, y int, on bool) error {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return goerr.Wrap(ErrGraphicsOutOfBounds, "set pixel").With("x", x).With("y", y)
	}
	d.gfx[y*DisplayWidth+x] = on
	d.dirty = true
	return nil
}

// DrawSprite XORs the sprite rows onto the buffer starting at (x, y) and
// reports whether any lit pixel was turned off. The start coordinate wraps
// around the screen edges; individual pixels that then run off the right or
// bottom edge are clipped, not wrapped.
func (d *Display) DrawSprite(x, y int, sprite []byte) bool {
	x0 := ((x % DisplayWidth) + DisplayWidth) % DisplayWidth
	y0 := ((y % DisplayHeight) + DisplayHeight) % DisplayHeight
	collision := false

	for r, row := range sprite {
		py := y0 + r
		if py >= DisplayHeight {
			continue
		}
		for c := 0; c < 8; c++ {
			px := x0 + c
			if px >= DisplayWidth {
				continue
			}
			if row&(0x80>>c) == 0 {
				continue
			}
			ind := py*DisplayWidth + px
			if d.gfx[ind] {
				collision = true
			}
			d.gfx[ind] = !d.gfx[ind]
		}
	}

	d.dirty = true
	return collision
}

// Graphics returns a copy of the pixel buffer for rendering.
func (d *Display) Graphics() [DisplayWidth * DisplayHeight]bool {
	return d.gfx
}

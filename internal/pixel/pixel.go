// Package pixel hosts the emulator window: it renders the core framebuffer
// scaled up with imdraw and polls the conventional QWERTY keymap into the
// hex keypad.
package pixel

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/LuminousFondue/chip8/internal/chip8"
)

const winX float64 = 64
const winY float64 = 32
const screenWidth float64 = 1024
const screenHeight float64 = 768

// Window embeds a pixelgl window and holds the keymapping of hex key ->
// pixelgl.Button. The mapping follows the usual convention:
//
//	1 2 3 4          1 2 3 C
//	Q W E R   --->   4 5 6 D
//	A S D F          7 8 9 E
//	Z X C V          A 0 B F
type Window struct {
	*pixelgl.Window
	KeyMap map[byte]pixelgl.Button
}

// NewWindow handles creating a new pixelgl window config, initializing the
// window, and returning a pointer to a Window with an embedded
// *pixelgl.Window
func NewWindow() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "chip8",
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %v", err)
	}
	km := map[byte]pixelgl.Button{
		0x1: pixelgl.Key1, 0x2: pixelgl.Key2,
		0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
		0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW,
		0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
		0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS,
		0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
		0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX,
		0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
	}
	return &Window{
		Window: w,
		KeyMap: km,
	}, nil
}

// PollKeys pushes the state of every mapped key into set. The run loop
// calls this between Step calls, which keeps all keypad writes on the
// emulation thread.
func (w *Window) PollKeys(set func(key byte, pressed bool)) {
	for key, button := range w.KeyMap {
		set(key, w.Pressed(button))
	}
}

// DrawGraphics renders the framebuffer as scaled white-on-black rectangles.
// The buffer's row 0 is the top of the screen while pixel's y axis points
// up, hence the row flip.
func (w *Window) DrawGraphics(gfx [chip8.DisplayWidth * chip8.DisplayHeight]bool) {
	w.Clear(colornames.Black)
	imDraw := imdraw.New(nil)
	imDraw.Color = pixel.RGB(1, 1, 1)
	width, height := screenWidth/winX, screenHeight/winY

	for i := 0; i < chip8.DisplayWidth; i++ {
		for j := 0; j < chip8.DisplayHeight; j++ {
			if gfx[(chip8.DisplayHeight-1-j)*chip8.DisplayWidth+i] {
				imDraw.Push(pixel.V(width*float64(i), height*float64(j)))
				imDraw.Push(pixel.V(width*float64(i)+width, height*float64(j)+height))
				imDraw.Rectangle(0)
			}
		}
	}

	imDraw.Draw(w)
	w.Update()
}

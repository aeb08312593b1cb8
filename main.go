package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/LuminousFondue/chip8/cmd"
)

func main() {
	// pixelgl needs access to the main thread, so the whole CLI runs
	// inside its run callback
	pixelgl.Run(cmd.Execute)
}

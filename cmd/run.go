package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"

	"github.com/LuminousFondue/chip8/internal/audio"
	"github.com/LuminousFondue/chip8/internal/chip8"
	"github.com/LuminousFondue/chip8/internal/pixel"
)

// refreshRate is how often the frame loop runs. The VM's own clock domains
// are driven by the measured delta, not by this rate.
const refreshRate = 60

const beepAsset = "assets/beep.mp3"

var cpuHz int

// runCmd runs the emulator until the window is closed or the VM errors
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chip8 emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runEmulator,
}

func init() {
	runCmd.Flags().IntVar(&cpuHz, "hz", chip8.DefaultCPUHz, "CPU cycles per second")
}

func runEmulator(cmd *cobra.Command, args []string) {
	rom, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("error reading ROM file: %v\n", err)
		os.Exit(1)
	}

	vm := chip8.NewVM()
	vm.SetSpeed(cpuHz)
	if err := vm.LoadROM(rom); err != nil {
		fmt.Printf("error loading ROM: %v\n", err)
		os.Exit(1)
	}

	win, err := pixel.NewWindow()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	beeper := audio.NewBeeper(beepAsset)
	defer beeper.Close()

	ticker := time.NewTicker(time.Second / refreshRate)
	defer ticker.Stop()

	last := time.Now()
	for range ticker.C {
		if win.Closed() {
			fmt.Println("exit signal detected, gracefully shutting down...")
			return
		}

		now := time.Now()
		delta := now.Sub(last).Seconds()
		last = now

		win.PollKeys(vm.Keypad().Set)
		if win.JustPressed(pixelgl.KeySpace) {
			if vm.Paused() {
				vm.Resume()
			} else {
				vm.Pause()
			}
		}

		if err := vm.Step(delta); err != nil {
			fmt.Printf("emulation halted: %v\n", err)
			return
		}

		if vm.DrawFlag() {
			win.DrawGraphics(vm.Graphics())
		} else {
			win.UpdateInput()
		}

		beeper.Update(vm.SoundTimerValue() > 0)
	}
}

// Package gui renders the machine display in a desktop window.
package gui

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/chip8goemu/internal/chip8"
	"github.com/retroenv/chip8goemu/internal/emulator"
	"github.com/retroenv/chip8goemu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// framesPerSecond is the tick rate of the game loop. The machine timers
// are bound to it.
const framesPerSecond = 60

// pixel channel values of the monochrome display, white on black
const (
	colorOn  = 0xFF
	colorOff = 0x00
)

// Window runs the emulator as an Ebitengine game: every update call runs
// one frame of the machine and every draw presents the pixel buffer.
type Window struct {
	ctx      context.Context
	emulator *emulator.Emulator
	vm       *chip8.VM
	opts     options.Window

	frame  *ebiten.Image
	pixels []byte
}

// Run opens the window and drives the emulator until the window is closed,
// the context is canceled or Escape is pressed.
func Run(ctx context.Context, logger *log.Logger, emu *emulator.Emulator, opts options.Window) error {
	vm := emu.Machine()
	display := vm.Display()

	window := &Window{
		ctx:      ctx,
		emulator: emu,
		vm:       vm,
		opts:     opts,
		pixels:   make([]byte, display.Width()*display.Height()*4),
	}

	width := display.Width() * opts.Scale
	height := display.Height() * opts.Scale

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(framesPerSecond)

	logger.Debug("Opening window",
		log.Int("width", width),
		log.Int("height", height))

	if err := ebiten.RunGame(window); err != nil {
		return fmt.Errorf("running the game loop: %w", err)
	}
	return nil
}

// Update feeds the keypad and runs one frame of the machine.
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	w.pollKeys()

	if err := w.emulator.RunFrame(); err != nil {
		return fmt.Errorf("running frame: %w", err)
	}
	return nil
}

// Draw presents the current display contents.
func (w *Window) Draw(screen *ebiten.Image) {
	display := w.vm.Display()
	if w.frame == nil {
		w.frame = ebiten.NewImage(display.Width(), display.Height())
	}

	renderPixels(display, w.pixels)
	w.frame.WritePixels(w.pixels)

	op := &ebiten.DrawImageOptions{}
	scale := float64(w.opts.Scale)
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(w.frame, op)

	if w.opts.ShowFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()), 4, 4)
	}
}

// Layout defines the logical screen size as the scaled display resolution.
func (w *Window) Layout(_, _ int) (int, int) {
	display := w.vm.Display()
	return display.Width() * w.opts.Scale, display.Height() * w.opts.Scale
}

// renderPixels converts the 1 bit display into RGBA pixel data.
func renderPixels(display *chip8.Display, pixels []byte) {
	i := 0
	for y := range display.Height() {
		for x := range display.Width() {
			value := byte(colorOff)
			if display.Pixel(x, y) {
				value = colorOn
			}

			pixels[i] = value
			pixels[i+1] = value
			pixels[i+2] = value
			pixels[i+3] = 0xFF
			i += 4
		}
	}
}

// Package host implements the windowed host of the emulator using ebiten.
package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/chippy/internal/chip8"
	"github.com/retroenv/chippy/internal/config"
	"github.com/retroenv/chippy/internal/options"
	"github.com/retroenv/retrogolib/log"
)

const bytesPerPixel = 4

// Machine is the part of the machine that the host drives.
type Machine interface {
	Tick() error
	SetKey(key int, down bool)
	Display() chip8.Screen
	SoundActive() bool
}

// Game runs a machine inside an ebiten window. It implements ebiten.Game.
type Game struct {
	logger        *log.Logger
	machine       Machine
	title         string
	scale         int
	ticksPerFrame int
	halted        bool
	sounding      bool
	setTitle      func(string)

	image  *ebiten.Image
	pixels []byte
}

// New returns a host for the machine using the emulation settings.
func New(logger *log.Logger, machine Machine, title string, emulation options.Emulation) *Game {
	return &Game{
		logger:        logger,
		machine:       machine,
		title:         title,
		scale:         emulation.Scale,
		ticksPerFrame: config.TicksPerFrame(emulation.Speed, ebiten.DefaultTPS),
		setTitle:      ebiten.SetWindowTitle,
		pixels:        make([]byte, chip8.Width*chip8.Height*bytesPerPixel),
	}
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(chip8.Width*g.scale, chip8.Height*g.scale)
	g.setTitle(g.windowTitle())

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Update reads the keyboard and advances the machine by one frame worth of ticks.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.update(ebiten.IsKeyPressed)
	return nil
}

func (g *Game) update(pressed func(ebiten.Key) bool) {
	for _, b := range keyMap {
		g.machine.SetKey(b.key, pressed(b.physical))
	}

	// a failed machine stays visible until the window is closed
	if g.halted {
		return
	}

	for range g.ticksPerFrame {
		if err := g.machine.Tick(); err != nil {
			g.logger.Error("Machine halted", log.Err(err))
			g.halted = true
			return
		}
	}

	if sounding := g.machine.SoundActive(); sounding != g.sounding {
		g.sounding = sounding
		g.setTitle(g.windowTitle())
	}
}

// windowTitle returns the title with a beep marker while the sound timer runs.
func (g *Game) windowTitle() string {
	if g.sounding {
		return g.title + " [beep]"
	}
	return g.title
}

// Draw renders the machine display.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(chip8.Width, chip8.Height)
	}

	display := g.machine.Display()
	fillPixels(g.pixels, &display)
	g.image.WritePixels(g.pixels)
	screen.DrawImage(g.image, nil)
}

// Layout returns the logical screen size, ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return chip8.Width, chip8.Height
}

// fillPixels converts the display to RGBA pixels, lit pixels are white on black.
func fillPixels(dst []byte, screen *chip8.Screen) {
	for y := range chip8.Height {
		for x := range chip8.Width {
			var value byte
			if screen[y][x] {
				value = 0xff
			}
			offset := (y*chip8.Width + x) * bytesPerPixel
			dst[offset] = value
			dst[offset+1] = value
			dst[offset+2] = value
			dst[offset+3] = 0xff
		}
	}
}

// Package terminal renders the CHIP-8 display as text.
//
// Two display rows share one text line using the upper and lower half block characters,
// so the 64x32 display needs 64 columns and 16 lines.
package terminal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/chippy/internal/chip8"
	"golang.org/x/term"
)

// Columns and Lines are the text dimensions of a rendered display.
const (
	Columns = chip8.Width
	Lines   = chip8.Height / 2
)

var blocks = [4]rune{
	' ', // both pixels off
	'▀', // upper pixel lit
	'▄', // lower pixel lit
	'█', // both pixels lit
}

// Render writes the display to the writer.
func Render(w io.Writer, screen *chip8.Screen) error {
	buf := bufio.NewWriter(w)

	for line := range Lines {
		upper, lower := &screen[2*line], &screen[2*line+1]
		for x := range Columns {
			var index int
			if upper[x] {
				index |= 1
			}
			if lower[x] {
				index |= 2
			}
			if _, err := buf.WriteRune(blocks[index]); err != nil {
				return fmt.Errorf("writing display: %w", err)
			}
		}
		if err := buf.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing display: %w", err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	return nil
}

// Fits returns whether the file descriptor is a terminal that is large enough to show
// the rendered display.
func Fits(fd int) bool {
	if !term.IsTerminal(fd) {
		return false
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return false
	}
	return width >= Columns && height >= Lines
}

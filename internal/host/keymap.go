package host

import "github.com/hajimehoshi/ebiten/v2"

// binding maps a physical keyboard key to a CHIP-8 keypad key.
type binding struct {
	physical ebiten.Key
	key      int
}

// keyMap lays the hexadecimal keypad over the left side of a QWERTY keyboard:
//
//	1 2 3 C     1 2 3 4
//	4 5 6 D  -> Q W E R
//	7 8 9 E     A S D F
//	A 0 B F     Z X C V
var keyMap = [...]binding{
	{ebiten.KeyDigit1, 0x1}, {ebiten.KeyDigit2, 0x2}, {ebiten.KeyDigit3, 0x3}, {ebiten.KeyDigit4, 0xC},
	{ebiten.KeyQ, 0x4}, {ebiten.KeyW, 0x5}, {ebiten.KeyE, 0x6}, {ebiten.KeyR, 0xD},
	{ebiten.KeyA, 0x7}, {ebiten.KeyS, 0x8}, {ebiten.KeyD, 0x9}, {ebiten.KeyF, 0xE},
	{ebiten.KeyZ, 0xA}, {ebiten.KeyX, 0x0}, {ebiten.KeyC, 0xB}, {ebiten.KeyV, 0xF},
}

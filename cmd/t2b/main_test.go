package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "pong.txt")
	output := filepath.Join(dir, "roms", "pong.c8")
	assert.NoError(t, os.WriteFile(input, []byte("00E0 A2 2A\n1200"), 0o600))

	assert.NoError(t, convert(input, output))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, 6, len(data))
	assert.Equal(t, byte(0xE0), data[1])
	assert.Equal(t, byte(0x2A), data[3])
}

func TestConvert_Errors(t *testing.T) {
	dir := t.TempDir()

	err := convert(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.c8"))
	assert.Error(t, err)

	input := filepath.Join(dir, "broken.txt")
	assert.NoError(t, os.WriteFile(input, []byte("12 XY"), 0o600))
	err = convert(input, filepath.Join(dir, "out.c8"))
	assert.ErrorContains(t, err, "decoding file")
}

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrailleBuf(t *testing.T) {
	t.Run("Empty cells are spaces", func(t *testing.T) {
		b := newBrailleBuf(2, 1)
		assert.Equal(t, ' ', b.cell(0, 0))
		assert.Equal(t, ' ', b.cell(1, 0))
	})

	t.Run("Pixels map to dot bits", func(t *testing.T) {
		b := newBrailleBuf(1, 1)
		b.setPixel(0, 0)
		assert.Equal(t, rune(0x2801), b.cell(0, 0))
		b.setPixel(1, 3)
		assert.Equal(t, rune(0x2881), b.cell(0, 0))
	})

	t.Run("Out of range pixels are ignored", func(t *testing.T) {
		b := newBrailleBuf(1, 1)
		b.setPixel(-1, 0)
		b.setPixel(0, -1)
		b.setPixel(2, 0)
		b.setPixel(0, 4)
		assert.Equal(t, ' ', b.cell(0, 0))
	})

	t.Run("Horizontal line fills both columns", func(t *testing.T) {
		b := newBrailleBuf(2, 1)
		b.drawLine(0, 0, 3, 0)
		assert.Equal(t, rune(0x2809), b.cell(0, 0))
		assert.Equal(t, rune(0x2809), b.cell(1, 0))
	})

	t.Run("Vertical line fills the left column", func(t *testing.T) {
		b := newBrailleBuf(1, 1)
		b.drawLine(0, 3, 0, 0)
		assert.Equal(t, rune(0x2847), b.cell(0, 0))
	})

	t.Run("A dot is a two by two block", func(t *testing.T) {
		b := newBrailleBuf(1, 1)
		b.setDot(0, 0)
		assert.Equal(t, rune(0x281B), b.cell(0, 0))
	})
}

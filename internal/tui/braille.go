package tui

// A canvas of braille characters, each holding a 2x4 grid of micro pixels.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// Dot bits by column, then row, within a cell.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
}

// A dot a couple of micro pixels wide, so points stand out from lines.
func (b *brailleBuf) setDot(mx, my int) {
	b.setPixel(mx, my)
	b.setPixel(mx+1, my)
	b.setPixel(mx, my+1)
	b.setPixel(mx+1, my+1)
}

// drawLine draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) cell(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osuushi/hull/internal"
)

// Layers in increasing priority. Where layers overlap in a cell, the highest
// one decides the glyph and colour.
const (
	layerPoints = iota
	layerHull
	layerLine
	layerActive
	layerCount
)

var layerStyles = [layerCount]lipgloss.Style{
	layerPoints: dimStyle,
	layerHull:   hullStyle,
	layerLine:   lineStyle,
	layerActive: activeStyle,
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 2
	contentWidth := max(10, m.width)
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	if m.help.ShowAll {
		contentHeight = max(4, contentHeight-3)
	}

	header := titleStyle.Render(" hullviz ─ " + m.title + " ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	canvas := lipgloss.NewStyle().Width(contentWidth).Height(contentHeight).Render(m.renderCanvas(contentWidth, contentHeight))

	statusLine := dimStyle.Render(" " + m.status() + " ")
	if step, ok := m.Current(); ok && step.Note != "" {
		statusLine += " " + step.Note
	}
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(contentWidth).MaxHeight(1).Render(statusLine),
		m.help.View(m.keys),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer)
	return appStyle.Width(contentWidth).Render(ui)
}

// Draw the current step as braille, one buffer per layer.
func (m Model) renderCanvas(w, h int) string {
	var layers [layerCount]*brailleBuf
	for i := range layers {
		layers[i] = newBrailleBuf(w, h)
	}

	for _, p := range m.points {
		mx, my := m.project(p, w, h)
		layers[layerPoints].setPixel(mx, my)
	}

	step, ok := m.Current()
	if ok {
		for _, p := range step.Candidates {
			mx, my := m.project(p, w, h)
			layers[layerLine].setDot(mx, my)
		}
		if step.Line != nil {
			x0, y0 := m.project(step.Line.Start, w, h)
			x1, y1 := m.project(step.Line.End, w, h)
			layers[layerLine].drawLine(x0, y0, x1, y1)
		}

		// A chain under construction is open. QuickHull's working hull is
		// always a polygon.
		closed := step.Phase == internal.PhaseComplete || step.Line != nil
		m.drawPolyline(layers[layerHull], step.Hull, closed, w, h)
		for _, p := range step.Hull {
			mx, my := m.project(p, w, h)
			layers[layerHull].setDot(mx, my)
		}

		for _, p := range step.Active {
			mx, my := m.project(p, w, h)
			layers[layerActive].setDot(mx-1, my-1)
			layers[layerActive].setDot(mx+1, my+1)
		}
	}

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = composeRow(layers, y, w)
	}
	return strings.Join(lines, "\n")
}

func (m Model) drawPolyline(buf *brailleBuf, vertices internal.Hull, closed bool, w, h int) {
	if len(vertices) < 2 {
		return
	}
	for i := 0; i+1 < len(vertices); i++ {
		x0, y0 := m.project(vertices[i], w, h)
		x1, y1 := m.project(vertices[i+1], w, h)
		buf.drawLine(x0, y0, x1, y1)
	}
	if closed && len(vertices) > 2 {
		x0, y0 := m.project(vertices[len(vertices)-1], w, h)
		x1, y1 := m.project(vertices[0], w, h)
		buf.drawLine(x0, y0, x1, y1)
	}
}

// Pick the top layer for each cell, and style runs of cells from the same
// layer together.
func composeRow(layers [layerCount]*brailleBuf, y, w int) string {
	var out strings.Builder
	var run []rune
	runLayer := -1
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runLayer < 0 {
			out.WriteString(string(run))
		} else {
			out.WriteString(layerStyles[runLayer].Render(string(run)))
		}
		run = run[:0]
	}

	for x := 0; x < w; x++ {
		glyph, layer := ' ', -1
		for i := layerCount - 1; i >= 0; i-- {
			if r := layers[i].cell(x, y); r != ' ' {
				glyph, layer = r, i
				break
			}
		}
		if layer != runLayer {
			flush()
			runLayer = layer
		}
		run = append(run, glyph)
	}
	flush()
	return out.String()
}

// Map a point onto the micro grid (2x4 per cell), keeping its aspect ratio,
// with y growing upward. The margin keeps highlight rings on the canvas.
func (m Model) project(p internal.Point, w, h int) (int, int) {
	const margin = 2
	wMic := float64(max(1, w*2-1-2*margin))
	hMic := float64(max(1, h*4-1-2*margin))

	scale := hMic / m.bounds.spanY
	if m.bounds.spanY == 0 || wMic/m.bounds.spanX < scale {
		scale = wMic / m.bounds.spanX
	}
	offsetX := (wMic - m.bounds.spanX*scale) / 2
	offsetY := (hMic - m.bounds.spanY*scale) / 2

	mx := margin + offsetX + (p.X-m.bounds.minX)*scale
	my := margin + offsetY + (p.Y-m.bounds.minY)*scale
	return int(mx + 0.5), int(float64(h*4-1) - my + 0.5)
}

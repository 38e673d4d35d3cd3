package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/osuushi/hull/internal"
)

const (
	minFPS     = 0.5
	maxFPS     = 60.0
	defaultFPS = 4.0
	speedStep  = 1.5
)

// Steps through a hull build one snapshot at a time, either by hand or on a
// timer.
type Model struct {
	width  int
	height int

	title  string
	points []internal.Point
	steps  []internal.Step
	bounds bounds

	index   int
	playing bool
	fps     float64
	// Bumped whenever playback starts, so ticks from an earlier run are dropped
	generation int

	keys keyMap
	help help.Model
}

func New(title string, points []internal.Point, steps []internal.Step, fps float64) Model {
	if fps <= 0 {
		fps = defaultFPS
	}
	return Model{
		title:  title,
		points: points,
		steps:  steps,
		bounds: boundsOf(points),
		fps:    clampFPS(fps),
		keys:   keys,
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// The step on screen, or false if there are no steps at all.
func (m Model) Current() (internal.Step, bool) {
	if len(m.steps) == 0 {
		return internal.Step{}, false
	}
	return m.steps[m.index], true
}

func (m Model) Playing() bool { return m.playing }

func (m Model) FPS() float64 { return m.fps }

func (m Model) atEnd() bool {
	return m.index >= len(m.steps)-1
}

type tickMsg struct {
	generation int
}

func (m Model) tick() tea.Cmd {
	generation := m.generation
	interval := time.Duration(float64(time.Second) / m.fps)
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

func clampFPS(fps float64) float64 {
	if fps < minFPS {
		return minFPS
	}
	if fps > maxFPS {
		return maxFPS
	}
	return fps
}

// Data-space bounding box. Degenerate extents are widened so that projection
// never divides by zero.
type bounds struct {
	minX, minY float64
	spanX      float64
	spanY      float64
}

func boundsOf(points []internal.Point) bounds {
	if len(points) == 0 {
		return bounds{spanX: 1, spanY: 1}
	}
	b := bounds{minX: points[0].X, minY: points[0].Y}
	maxX, maxY := b.minX, b.minY
	for _, p := range points[1:] {
		b.minX = min(b.minX, p.X)
		b.minY = min(b.minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	b.spanX = maxX - b.minX
	b.spanY = maxY - b.minY
	if b.spanX == 0 && b.spanY == 0 {
		b.spanX, b.spanY = 1, 1
	}
	return b
}

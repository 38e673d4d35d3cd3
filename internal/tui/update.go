package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tickMsg:
		if !m.playing || msg.generation != m.generation {
			return m, nil
		}
		if m.atEnd() {
			m.playing = false
			return m, nil
		}
		m.index++
		if m.atEnd() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Play):
			return m.togglePlay()
		case key.Matches(msg, m.keys.Next):
			m.playing = false
			if !m.atEnd() {
				m.index++
			}
		case key.Matches(msg, m.keys.Prev):
			m.playing = false
			if m.index > 0 {
				m.index--
			}
		case key.Matches(msg, m.keys.First):
			m.playing = false
			m.index = 0
		case key.Matches(msg, m.keys.Last):
			m.playing = false
			m.index = max(0, len(m.steps)-1)
		case key.Matches(msg, m.keys.Faster):
			m.fps = clampFPS(m.fps * speedStep)
		case key.Matches(msg, m.keys.Slower):
			m.fps = clampFPS(m.fps / speedStep)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// Playing from the last step starts over from the first.
func (m Model) togglePlay() (tea.Model, tea.Cmd) {
	if m.playing {
		m.playing = false
		return m, nil
	}
	if len(m.steps) < 2 {
		return m, nil
	}
	if m.atEnd() {
		m.index = 0
	}
	m.playing = true
	m.generation++
	return m, m.tick()
}

func (m Model) status() string {
	step, ok := m.Current()
	if !ok {
		return "no steps"
	}
	state := "paused"
	if m.playing {
		state = "playing"
	}
	return fmt.Sprintf("step %d/%d  %s  %s  %.1f fps", step.Index+1, len(m.steps), step.Phase, state, m.fps)
}

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapt(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		steps := Adapt(nil)
		assert.NotNil(t, steps)
		assert.Empty(t, steps)
	})

	t.Run("first step is all active", func(t *testing.T) {
		steps := Adapt([]Snapshot{{Hull: Hull{{1, 1}, {2, 2}}}})
		require.Len(t, steps, 1)
		assert.Equal(t, []Point{{1, 1}, {2, 2}}, steps[0].Active)
	})

	t.Run("added and removed", func(t *testing.T) {
		steps := Adapt([]Snapshot{
			{Hull: Hull{{0, 0}, {1, 0}}},
			{Hull: Hull{{0, 0}, {2, 0}, {3, 3}}},
		})
		require.Len(t, steps, 2)
		assert.Equal(t, []Point{{2, 0}, {3, 3}, {1, 0}}, steps[1].Active)
	})

	t.Run("reordering is not a change", func(t *testing.T) {
		steps := Adapt([]Snapshot{
			{Hull: Hull{{0, 0}, {1, 0}, {1, 1}}},
			{Hull: Hull{{1, 1}, {0, 0}, {1, 0}}},
		})
		assert.Empty(t, steps[1].Active)
	})

	t.Run("metadata passes through", func(t *testing.T) {
		line := &Segment{Point{0, 0}, Point{1, 0}}
		snapshots := []Snapshot{
			{Hull: Hull{{0, 0}}, Phase: PhaseStart, Note: "start"},
			{Hull: Hull{{0, 0}, {1, 0}}, Phase: PhaseLower, Note: "split", Line: line, Candidates: []Point{{1, 0}}},
		}
		steps := Adapt(snapshots)
		require.Len(t, steps, 2)
		assert.Equal(t, 1, steps[1].Index)
		assert.Equal(t, PhaseLower, steps[1].Phase)
		assert.Equal(t, "split", steps[1].Note)
		assert.Equal(t, line, steps[1].Line)
		assert.Equal(t, []Point{{1, 0}}, steps[1].Candidates)
		assert.Equal(t, snapshots[1].Hull, steps[1].Hull)
	})

	t.Run("snapshots are never merged", func(t *testing.T) {
		same := Hull{{0, 0}, {1, 1}}
		steps := Adapt([]Snapshot{{Hull: same}, {Hull: same}, {Hull: same}})
		require.Len(t, steps, 3)
		for i, step := range steps {
			assert.Equal(t, i, step.Index)
		}
	})
}

func TestAdapt_SquareWithCenter(t *testing.T) {
	for _, b := range builders {
		b := b
		t.Run(b.name, func(t *testing.T) {
			hull, _ := b.build(SquareWithCenter(), false)
			_, snapshots := b.build(SquareWithCenter(), true)
			steps := Adapt(snapshots)
			require.Len(t, steps, len(snapshots))

			assert.Equal(t, []Point(steps[0].Hull), steps[0].Active, "first step's active set is its hull")
			assert.Equal(t, Hull{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, steps[len(steps)-1].Hull)
			assert.Equal(t, hull, steps[len(steps)-1].Hull)
			for _, step := range steps {
				assert.NotEmpty(t, step.Active, "step %d has no active points", step.Index)
			}
		})
	}
}

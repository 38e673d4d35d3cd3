package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/hull"
	"github.com/osuushi/hull/internal/config"
	"github.com/osuushi/hull/internal/pointio"
)

var squareWithCenter = []hull.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 1, Y: 1}}

func TestListAlgorithms(t *testing.T) {
	var out bytes.Buffer
	listAlgorithms(&out)
	assert.Contains(t, out.String(), "monotone-chain")
	assert.Contains(t, out.String(), "quickhull")
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), len(hull.Algorithms))
}

func TestPrintHull(t *testing.T) {
	for _, info := range hull.Algorithms {
		t.Run(info.ID, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, printHull(&out, squareWithCenter, info.Algorithm))
			assert.Equal(t, "0 0\n2 0\n2 2\n0 2\n", out.String())
		})
	}

	t.Run("Empty input", func(t *testing.T) {
		var out bytes.Buffer
		err := printHull(&out, nil, hull.MonotoneChain)
		assert.True(t, errors.Is(err, hull.ErrInsufficientInput), "got %v", err)
	})
}

func TestPrintTrace(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, printTrace(&out, squareWithCenter, hull.MonotoneChain, "text", false))
		text := out.String()
		assert.Contains(t, text, "lower_hull")
		assert.Contains(t, text, "removed (1, 1)")
		assert.Contains(t, text, "complete")
		assert.NotContains(t, text, "\x1b[", "colours were disabled")
	})

	t.Run("YAML round trips", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, printTrace(&out, squareWithCenter, hull.QuickHull, "yaml", false))
		doc, err := pointio.ReadTraceYAML(&out)
		require.NoError(t, err)
		assert.Equal(t, "quickhull", doc.Algorithm)
		assert.Equal(t, len(doc.Steps), doc.TotalSteps)
		require.NotEmpty(t, doc.Steps)
		last := doc.Steps[len(doc.Steps)-1]
		assert.Equal(t, [][]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, last.Hull)
	})

	t.Run("Unknown format", func(t *testing.T) {
		var out bytes.Buffer
		assert.Error(t, printTrace(&out, squareWithCenter, hull.QuickHull, "xml", false))
	})
}

func TestGeneratePoints(t *testing.T) {
	gen := config.Default().Generator
	gen.Count = 25

	t.Run("Seeded is repeatable", func(t *testing.T) {
		a, err := generatePoints(gen, 3)
		require.NoError(t, err)
		b, err := generatePoints(gen, 3)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Len(t, a, 25)
	})

	t.Run("Rounded to the configured decimals", func(t *testing.T) {
		gen := gen
		gen.Decimals = 0
		points, err := generatePoints(gen, 3)
		require.NoError(t, err)
		for _, p := range points {
			assert.Equal(t, float64(int(p.X)), p.X)
			assert.Equal(t, float64(int(p.Y)), p.Y)
		}
	})

	t.Run("Bad count", func(t *testing.T) {
		gen := gen
		gen.Count = 0
		_, err := generatePoints(gen, 3)
		assert.Error(t, err)
	})
}

func TestRenderSteps(t *testing.T) {
	dir := t.TempDir()
	opts := config.Render{Width: 100, Height: 100, Padding: 10}
	paths, err := renderSteps(dir, squareWithCenter, hull.QuickHull, opts, false)
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	assert.Equal(t, filepath.Join(dir, "step_0000.png"), paths[0])
	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestBench(t *testing.T) {
	gen := config.Default().Generator
	gen.Count = 200
	points, err := generatePoints(gen, 11)
	require.NoError(t, err)

	results, err := bench(points, 2)
	require.NoError(t, err)
	require.Len(t, results, len(hull.Algorithms))
	for _, r := range results {
		assert.Equal(t, results[0].HullSize, r.HullSize)
		assert.Greater(t, r.Steps, 0)
	}

	var out bytes.Buffer
	writeBench(&out, results, len(points), 2)
	assert.Contains(t, out.String(), "200 points, 2 runs")

	t.Run("Needs a run", func(t *testing.T) {
		_, err := bench(points, 0)
		assert.Error(t, err)
	})
}

func TestStartProfile(t *testing.T) {
	stop, err := startProfile("", "")
	require.NoError(t, err)
	stop()

	_, err = startProfile("gpu", "")
	assert.Error(t, err)
}

func TestPrintCollision(t *testing.T) {
	triangle := []hull.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	diamond := []hull.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: -1}}
	collision, err := hull.Collide(triangle, diamond, hull.MonotoneChain)
	require.NoError(t, err)
	require.True(t, collision.Colliding)

	t.Run("Text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, printCollision(&out, collision, hull.MonotoneChain, "text", false))
		assert.Contains(t, out.String(), "hull a: [(0, 0) (1, 0) (0, 1)]")
		assert.True(t, strings.HasSuffix(out.String(), "collision\n"))
	})

	t.Run("YAML", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, printCollision(&out, collision, hull.MonotoneChain, "yaml", false))
		doc, err := pointio.ReadCollisionYAML(&out)
		require.NoError(t, err)
		assert.True(t, doc.Colliding)
		assert.Len(t, doc.Iterations, len(collision.Steps))
	})

	t.Run("Unknown format", func(t *testing.T) {
		assert.Error(t, printCollision(&bytes.Buffer{}, collision, hull.MonotoneChain, "json", false))
	})

	t.Run("Render", func(t *testing.T) {
		paths, err := renderCollision(t.TempDir(), collision, config.Render{Width: 120, Height: 60, Padding: 5}, false)
		require.NoError(t, err)
		assert.Len(t, paths, len(collision.Steps))
	})
}

package internal

// This contains no actual tests. It is just a helper for testing hull validity.

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid for a point set. The rules are:
// 1. Every hull vertex is one of the input points.
// 2. No vertex is repeated.
// 3. With three or more vertices, every consecutive triple is a strict left turn.
// 4. No input point lies strictly outside any hull edge.
func AssertValidHull(t *testing.T, points []Point, hull Hull) {
	t.Helper()
	input := NewPointSet(points...)
	seen := make(PointSet)
	for _, p := range hull {
		require.True(t, input.Contains(p), "hull vertex %s is not an input point", p)
		require.False(t, seen.Contains(p), "hull vertex %s is repeated", p)
		seen.Add(p)
	}

	if len(hull) < 3 {
		return
	}

	for i := range hull {
		a := hull[i]
		b := hull[CircularIndex(i+1, len(hull))]
		c := hull[CircularIndex(i+2, len(hull))]
		require.Equal(t, LeftTurn, Orientation(a, b, c), "hull is not strictly convex at %s:\n%s", b, spew.Sdump(hull))
	}

	for _, p := range points {
		for i := range hull {
			a := hull[i]
			b := hull[CircularIndex(i+1, len(hull))]
			assert.NotEqual(t, RightTurn, Orientation(a, b, p), "point %s is outside hull edge %s -> %s", p, a, b)
		}
	}
}

// Helper to check that a hull is the same polygon as another, up to which
// vertex it starts on.
func AssertSameHull(t *testing.T, expected, actual Hull) {
	t.Helper()
	require.Len(t, actual, len(expected), "expected %s, got %s", spew.Sdump(expected), spew.Sdump(actual))
	if len(expected) == 0 {
		return
	}
	offset := -1
	for i, p := range actual {
		if p == expected[0] {
			offset = i
			break
		}
	}
	require.NotEqual(t, -1, offset, "expected vertex %s is missing from %v", expected[0], actual)
	for i, p := range expected {
		assert.Equal(t, p, actual[CircularIndex(i+offset, len(actual))])
	}
}

type builder struct {
	name  string
	build func([]Point, bool) (Hull, []Snapshot)
}

var builders = []builder{
	{"monotone chain", MonotoneChain},
	{"quickhull", QuickHull},
}

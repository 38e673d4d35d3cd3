package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		points   []Point
		expected Degeneracy
	}{
		{"empty", nil, DegenerateSinglePoint},
		{"one point", []Point{{3, 3}}, DegenerateSinglePoint},
		{"identical", []Point{{0, 0}, {0, 0}, {0, 0}}, DegenerateSinglePoint},
		{"two points", []Point{{0, 0}, {1, 1}}, DegenerateCollinear},
		{"collinear", []Point{{0, 0}, {1, 0}, {2, 0}}, DegenerateCollinear},
		{"collinear with repeats", Diagonal(), DegenerateCollinear},
		{"square", SquareWithCenter(), NotDegenerate},
		{"repeat of the first point", []Point{{0, 0}, {0, 0}, {1, 0}, {0, 1}}, NotDegenerate},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Classify(c.points))
		})
	}
	assert.Equal(t, "collinear", DegenerateCollinear.String())
}

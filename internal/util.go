package internal

import (
	"fmt"
	"math"
	"sort"
)

type Turn int

const (
	Collinear Turn = iota
	LeftTurn
	RightTurn
)

func (t Turn) String() string {
	switch t {
	case LeftTurn:
		return "left"
	case RightTurn:
		return "right"
	}
	return "collinear"
}

// Cross product of (b - a) and (c - a). Positive when a, b, c wind
// counterclockwise.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Both hull builders go through this, so "counterclockwise" means the same
// thing to both of them. There is deliberately no tolerance here: a point is
// collinear only if the cross product is exactly zero.
func Orientation(a, b, c Point) Turn {
	cross := Cross(a, b, c)
	switch {
	case cross > 0:
		return LeftTurn
	case cross < 0:
		return RightTurn
	}
	return Collinear
}

// Perpendicular distance from p to the line through a and b. If a and b
// coincide, this is the distance from p to a.
func DistanceToLine(p, a, b Point) float64 {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	if length == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	return math.Abs(Cross(a, b, p)) / length
}

// Unnormalized distance, for comparing points against the same line.
func lineDistance(p, a, b Point) float64 {
	return math.Abs(Cross(a, b, p))
}

// Lexicographic order: by X, then by Y.
func (p Point) Less(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Points double as vectors for the collision search.
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }
func (p Point) Dot(q Point) float64   { return p.X*q.X + p.Y*q.Y }
func (p Point) Neg() Point            { return Point{-p.X, -p.Y} }

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Sorted copy of the points with exact duplicates removed.
func SortedUnique(points []Point) []Point {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	result := sorted[:0]
	for i, p := range sorted {
		if i > 0 && p == sorted[i-1] {
			continue
		}
		result = append(result, p)
	}
	return result
}

// i wrapped into [0, n), for walking a hull as a cycle. Negative i wraps too.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pops the top point. The boolean is false if the stack was empty.
func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

// The point just under the top of the stack.
func (s *PointStack) PeekSecond() (Point, bool) {
	if len(*s) < 2 {
		return Point{}, false
	}
	return (*s)[len(*s)-2], true
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

func (s *PointStack) Len() int {
	return len(*s)
}

// Copy of the stack contents, bottom first.
func (s *PointStack) Hull() Hull {
	return append(Hull{}, (*s)...)
}

func NewPointSet(points ...Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

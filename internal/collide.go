package internal

import (
	"fmt"
	"math"
)

// GJK intersection test for two convex shapes, given by their vertices.
//
// The shapes overlap exactly when their Minkowski difference A - B contains the
// origin. That difference is never built: its support point in a direction is
// the support of A in that direction minus the support of B in the opposite one.
// The search grows a simplex (point, segment, triangle) out of support points,
// each time heading toward the origin, until the triangle encloses the origin
// or a support point fails to get past it.
//
// Touching shapes sit on the boundary of both tests, and may come out either
// way.

const DefaultCollisionIterations = 20

type CollisionOutcome int

const (
	CollisionSearching CollisionOutcome = iota
	CollisionFound
	CollisionSeparated
)

func (o CollisionOutcome) String() string {
	switch o {
	case CollisionFound:
		return "collision"
	case CollisionSeparated:
		return "separated"
	}
	return "searching"
}

// One iteration of the search. Simplex is the simplex right after Support was
// considered, before it is cut back for the next iteration.
type CollisionStep struct {
	Iteration int
	Direction Point
	Support   Point
	Simplex   []Point
	Outcome   CollisionOutcome
	Note      string
}

// Whether the convex hulls of a and b overlap, with a step for every iteration.
// maxIterations <= 0 means DefaultCollisionIterations. Running out of
// iterations counts as separated.
func Collide(a, b []Point, maxIterations int) (bool, []CollisionStep) {
	if len(a) == 0 || len(b) == 0 {
		fatalf("collide needs two non-empty shapes, got %d and %d points", len(a), len(b))
	}
	if maxIterations <= 0 {
		maxIterations = DefaultCollisionIterations
	}

	var steps []CollisionStep
	var simplex []Point
	direction := Point{1, 0}
	record := func(iteration int, s Point, outcome CollisionOutcome, note string) {
		steps = append(steps, CollisionStep{
			Iteration: iteration,
			Direction: direction,
			Support:   s,
			Simplex:   append([]Point{}, simplex...),
			Outcome:   outcome,
			Note:      note,
		})
	}

	for iteration := 0; iteration < maxIterations; iteration++ {
		s := MinkowskiSupport(a, b, direction)
		if s.Dot(direction) <= 0 {
			record(iteration, s, CollisionSeparated, fmt.Sprintf("support %s does not pass the origin", s))
			return false, steps
		}

		simplex = append(simplex, s)
		next, nextDirection, contains, why := reduceSimplex(simplex)
		if contains {
			record(iteration, s, CollisionFound, why)
			return true, steps
		}
		record(iteration, s, CollisionSearching, fmt.Sprintf("added %s to simplex (size %d): %s", s, len(simplex), why))
		simplex = next
		direction = nextDirection
	}

	if len(steps) > 0 {
		last := &steps[len(steps)-1]
		last.Outcome = CollisionSeparated
		last.Note = fmt.Sprintf("no decision after %d iterations", maxIterations)
	}
	return false, steps
}

// The vertex farthest along d. Ties go to the first one.
func Support(shape []Point, d Point) Point {
	best := shape[0]
	bestDot := best.Dot(d)
	for _, p := range shape[1:] {
		if dot := p.Dot(d); dot > bestDot {
			best, bestDot = p, dot
		}
	}
	return best
}

func MinkowskiSupport(a, b []Point, d Point) Point {
	return Support(a, d).Sub(Support(b, d.Neg()))
}

// Every vertex difference a - b. The hull of these is the Minkowski difference,
// which is only needed for drawing.
func MinkowskiDifference(a, b []Point) []Point {
	result := make([]Point, 0, len(a)*len(b))
	for _, p := range a {
		for _, q := range b {
			result = append(result, p.Sub(q))
		}
	}
	return result
}

// Cut the simplex down to the feature closest to the origin, and pick the next
// direction. The newest point is always last.
func reduceSimplex(simplex []Point) (next []Point, direction Point, contains bool, why string) {
	switch len(simplex) {
	case 1:
		return simplex, simplex[0].Neg(), false, "heading back toward the origin"

	case 2:
		a, b := simplex[1], simplex[0]
		ab, ao := b.Sub(a), a.Neg()
		if ab.Dot(ao) <= 0 {
			return []Point{a}, ao, false, "origin is beyond the newest point"
		}
		direction = tripleProduct(ab, ao, ab)
		if math.Hypot(direction.X, direction.Y) < 1e-10 {
			// The previous support passed the origin the other way, so the
			// origin is between a and b
			return simplex, Point{}, true, "origin lies on the simplex edge"
		}
		return simplex, direction, false, "searching perpendicular to the edge"

	case 3:
		a, b, c := simplex[2], simplex[1], simplex[0]
		ab, ac, ao := b.Sub(a), c.Sub(a), a.Neg()
		abPerp := tripleProduct(ac, ab, ab)
		acPerp := tripleProduct(ab, ac, ac)
		switch {
		case abPerp.Dot(ao) > 0:
			return []Point{b, a}, abPerp, false, "origin is outside the newest edge " + b.String() + " -> " + a.String()
		case acPerp.Dot(ao) > 0:
			return []Point{c, a}, acPerp, false, "origin is outside the newest edge " + c.String() + " -> " + a.String()
		}
		return simplex, Point{}, true, "simplex contains the origin"
	}

	fatalf("simplex has %d points", len(simplex))
	return nil, Point{}, false, ""
}

// (a x b) x c, expanded as b(a.c) - a(b.c). With c = a, this is the part of b
// perpendicular to a, scaled by |a|^2.
func tripleProduct(a, b, c Point) Point {
	return b.Scale(a.Dot(c)).Sub(a.Scale(b.Dot(c)))
}

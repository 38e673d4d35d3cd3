package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/hull/internal/dbg"
)

// QuickHull. The leftmost and rightmost points are always on the hull, and the
// line between them splits the rest of the points into a lower and an upper
// side. Each side is then refined by finding the point farthest outside the
// current line, which must also be on the hull, and splitting again on the two
// new lines. Anything inside the triangle that forms is discarded.
//
// The recursion is run on an explicit stack of frames. A frame is only pushed if
// it has candidates, so every frame confirms exactly one new hull vertex.
//
// Lines are directed so that "outside" is always to the right. The confirmed
// vertices are kept in final counterclockwise order the whole time: each new
// vertex is inserted between the two endpoints of the line it was found from.

// Transient recursion state: a line, and the points strictly outside it.
type Frame struct {
	Line       Segment
	Candidates []Point
	Phase      Phase
}

func QuickHull(points []Point, trace bool) (Hull, []Snapshot) {
	rec := newRecorder(trace)

	if len(points) <= 1 {
		hull := append(Hull{}, points...)
		rec.record(hull, PhaseComplete, "zero or one point: the hull is the input")
		return hull, rec.result()
	}

	min, max := extremePoints(points)
	if min == max {
		// min has the smallest x and y, and max the largest, so every point is equal
		hull := Hull{min}
		rec.record(hull, PhaseComplete, "all points are identical")
		return hull, rec.result()
	}

	var lowerSide, upperSide []Point
	for _, p := range points {
		switch Orientation(min, max, p) {
		case RightTurn:
			lowerSide = append(lowerSide, p)
		case LeftTurn:
			upperSide = append(upperSide, p)
		}
	}

	hull := Hull{min, max}
	rec.record(hull, PhaseStart, fmt.Sprintf("extreme points %s and %s", min, max))

	// LIFO, so the lower side is pushed last to be processed first
	var stack []*Frame
	stack = pushFrame(stack, &Frame{Segment{max, min}, upperSide, PhaseUpper})
	stack = pushFrame(stack, &Frame{Segment{min, max}, lowerSide, PhaseLower})

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		farthest := frame.Farthest()
		hull = insertBetween(hull, frame.Line, farthest)
		if rec.enabled() {
			note := fmt.Sprintf("%s is farthest outside %s -> %s (%d candidates)",
				farthest, frame.Line.Start, frame.Line.End, len(frame.Candidates))
			rec.recordFrame(hull, frame.Phase, note, &frame.Line, frame.Candidates)
		}

		before, after := frame.Split(farthest)
		stack = pushFrame(stack, after)
		stack = pushFrame(stack, before)
	}

	// A tie for farthest can confirm a point from the middle of a collinear run
	hull, dropped := dropCollinear(hull)
	if len(dropped) > 0 && rec.enabled() {
		rec.record(hull, PhaseComplete, fmt.Sprintf("dropped %s: collinear with its neighbors", joinPoints(dropped)))
	}

	if !rec.lastEquals(hull) {
		rec.record(hull, PhaseComplete, "hull is complete")
	}
	return hull, rec.result()
}

// Remove every vertex that is not a strict left turn between its neighbors.
// Each vertex is judged against the neighbors it had before any removal, so a
// run of several collinear vertices goes all at once.
func dropCollinear(hull Hull) (Hull, []Point) {
	if len(hull) < 3 {
		return hull, nil
	}
	kept := make(Hull, 0, len(hull))
	var dropped []Point
	for i, v := range hull {
		prev := hull[CircularIndex(i-1, len(hull))]
		next := hull[CircularIndex(i+1, len(hull))]
		if Orientation(prev, v, next) == LeftTurn {
			kept = append(kept, v)
		} else {
			dropped = append(dropped, v)
		}
	}
	return kept, dropped
}

func joinPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// The point with the smallest x (smallest y on ties) and the point with the
// largest x (largest y on ties).
func extremePoints(points []Point) (min, max Point) {
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		if p.Less(min) {
			min = p
		}
		if max.Less(p) {
			max = p
		}
	}
	return min, max
}

func pushFrame(stack []*Frame, frame *Frame) []*Frame {
	if len(frame.Candidates) == 0 {
		return stack
	}
	return append(stack, frame)
}

// The candidate farthest from the frame's line. Ties go to whichever candidate
// comes first, which is input order. That may be the middle of a collinear run,
// which QuickHull drops once every frame is done.
func (f *Frame) Farthest() Point {
	if len(f.Candidates) == 0 {
		fatalf("frame %s has no candidates", f)
	}
	best := f.Candidates[0]
	bestDistance := lineDistance(best, f.Line.Start, f.Line.End)
	for _, p := range f.Candidates[1:] {
		distance := lineDistance(p, f.Line.Start, f.Line.End)
		if distance > bestDistance {
			best = p
			bestDistance = distance
		}
	}
	return best
}

// Split the remaining candidates across the two lines through the farthest
// point. Points outside neither line are inside the triangle, or on its
// boundary, and are dropped.
func (f *Frame) Split(farthest Point) (before, after *Frame) {
	before = &Frame{Line: Segment{f.Line.Start, farthest}, Phase: f.Phase}
	after = &Frame{Line: Segment{farthest, f.Line.End}, Phase: f.Phase}
	for _, p := range f.Candidates {
		if p == farthest {
			continue
		}
		if Orientation(before.Line.Start, before.Line.End, p) == RightTurn {
			before.Candidates = append(before.Candidates, p)
		} else if Orientation(after.Line.Start, after.Line.End, p) == RightTurn {
			after.Candidates = append(after.Candidates, p)
		}
	}
	return before, after
}

func (f *Frame) String() string {
	name := dbg.Name(f)
	if f.Phase == PhaseUpper {
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return fmt.Sprintf("Frame %s <%s -> %s, %d candidates>", name, f.Line.Start, f.Line.End, len(f.Candidates))
}

// Insert p between the endpoints of the line, which must be adjacent in the
// hull. The hull is circular, so a line ending at the first vertex inserts at
// the end.
func insertBetween(hull Hull, line Segment, p Point) Hull {
	endIndex := -1
	for i, vertex := range hull {
		if vertex == line.End {
			endIndex = i
			break
		}
	}
	if endIndex == -1 {
		fatalf("line end %s is not on the hull", line.End)
	}
	if hull[CircularIndex(endIndex-1, len(hull))] != line.Start {
		fatalf("line %s -> %s does not join adjacent hull vertices", line.Start, line.End)
	}

	if endIndex == 0 {
		return append(hull, p)
	}
	hull = append(hull, Point{})
	copy(hull[endIndex+1:], hull[endIndex:])
	hull[endIndex] = p
	return hull
}

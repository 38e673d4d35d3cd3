package internal

import "fmt"

// Andrew's monotone chain. Points are swept in lexicographic order to build the
// lower chain, then in reverse to build the upper chain. Each chain is a stack:
// before a point is pushed, we pop every point that would not leave a strict
// left turn, so collinear points never survive onto the hull.
//
// When tracing, every pop and every push records a snapshot of the chain being
// built, and the last snapshot is the combined hull.

func MonotoneChain(points []Point, trace bool) (Hull, []Snapshot) {
	rec := newRecorder(trace)

	if len(points) <= 1 {
		hull := append(Hull{}, points...)
		rec.record(hull, PhaseComplete, "zero or one point: the hull is the input")
		return hull, rec.result()
	}

	sorted := SortedUnique(points)
	if len(sorted) == 1 {
		hull := Hull{sorted[0]}
		rec.record(hull, PhaseComplete, "all points are identical")
		return hull, rec.result()
	}

	lower := buildChain(sorted, PhaseLower, rec)

	reversed := make([]Point, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	upper := buildChain(reversed, PhaseUpper, rec)

	// The last point of each chain is the first point of the other
	hull := make(Hull, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	rec.record(hull, PhaseComplete, "combined lower and upper hull")
	return hull, rec.result()
}

// Scan the points in order, keeping only strict left turns on the stack.
func buildChain(points []Point, phase Phase, rec *recorder) PointStack {
	stack := make(PointStack, 0, len(points))
	chainName := "lower"
	if phase == PhaseUpper {
		chainName = "upper"
	}

	for i, p := range points {
		for stack.Len() >= 2 {
			top, _ := stack.Peek()
			second, _ := stack.PeekSecond()
			if Orientation(second, top, p) == LeftTurn {
				break
			}
			removed, _ := stack.Pop()
			if rec.enabled() {
				rec.record(stack.Hull(), phase, fmt.Sprintf("removed %s: no left turn toward %s", removed, p))
			}
		}

		stack.Push(p)
		if rec.enabled() {
			rec.record(stack.Hull(), phase, fmt.Sprintf("added %s to %s hull (%d/%d)", p, chainName, i+1, len(points)))
		}
	}

	if stack.Len() < 2 {
		fatalf("%s chain collapsed to %d points", chainName, stack.Len())
	}
	return stack
}

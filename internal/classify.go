package internal

// Degenerate input is valid geometry with a degenerate hull, not an error. This
// only reports which case applies.
type Degeneracy int

const (
	NotDegenerate Degeneracy = iota
	// At most one distinct point
	DegenerateSinglePoint
	// Every point lies on one line
	DegenerateCollinear
)

func (d Degeneracy) String() string {
	switch d {
	case DegenerateSinglePoint:
		return "single point"
	case DegenerateCollinear:
		return "collinear"
	}
	return "none"
}

func Classify(points []Point) Degeneracy {
	if len(points) == 0 {
		return DegenerateSinglePoint
	}
	first := points[0]
	var second Point
	found := false
	for _, p := range points[1:] {
		if p == first {
			continue
		}
		if !found {
			second = p
			found = true
			continue
		}
		if Orientation(first, second, p) != Collinear {
			return NotDegenerate
		}
	}
	if !found {
		return DegenerateSinglePoint
	}
	return DegenerateCollinear
}

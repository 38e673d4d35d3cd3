package internal

// Points are values, not pointers. Two points are the same point iff their
// coordinates are exactly equal, which is what lets hull snapshots be diffed by
// value. We never round or perturb an input coordinate.
type Point struct {
	X float64
	Y float64
}

// A dividing line for QuickHull, directed from Start to End.
type Segment struct {
	Start Point
	End   Point
}

// Hull vertices in counterclockwise order, with no repeated closing point.
// Degenerate hulls have fewer than three points.
type Hull []Point

type PointStack []Point

type PointSet map[Point]struct{}

// The stage of construction a snapshot was taken in.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseLower
	PhaseUpper
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseLower:
		return "lower_hull"
	case PhaseUpper:
		return "upper_hull"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// One recorded state of hull construction. The Hull slice is never shared with
// the builder's working state, so a snapshot can't change after it's recorded.
//
// Line and Candidates are only set by QuickHull: the line being subdivided and
// the points that were tested against it.
type Snapshot struct {
	Hull       Hull
	Phase      Phase
	Note       string
	Line       *Segment
	Candidates []Point
}

// A snapshot paired with the points that changed since the previous one.
type Step struct {
	Index      int
	Hull       Hull
	Active     []Point
	Phase      Phase
	Note       string
	Line       *Segment
	Candidates []Point
}

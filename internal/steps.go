package internal

// Pairs each snapshot with the points that changed since the one before it, for
// highlighting. This does no geometry, and never reorders, drops, or merges
// snapshots: step i always describes snapshot i.
//
// Change is a set comparison by exact coordinate value, not by position. A pop
// followed by a push can shuffle the chain without introducing anything new,
// and that must not be highlighted.
func Adapt(snapshots []Snapshot) []Step {
	steps := make([]Step, 0, len(snapshots))
	for i, snapshot := range snapshots {
		var active []Point
		if i == 0 {
			active = append([]Point{}, snapshot.Hull...)
		} else {
			active = changedPoints(snapshots[i-1].Hull, snapshot.Hull)
		}
		steps = append(steps, Step{
			Index:      i,
			Hull:       snapshot.Hull,
			Active:     active,
			Phase:      snapshot.Phase,
			Note:       snapshot.Note,
			Line:       snapshot.Line,
			Candidates: snapshot.Candidates,
		})
	}
	return steps
}

// Points added in current, in current's order, followed by points removed from
// previous, in previous's order.
func changedPoints(previous, current Hull) []Point {
	previousSet := NewPointSet(previous...)
	currentSet := NewPointSet(current...)

	changed := []Point{}
	seen := make(PointSet)
	for _, p := range current {
		if !previousSet.Contains(p) && !seen.Contains(p) {
			seen.Add(p)
			changed = append(changed, p)
		}
	}
	for _, p := range previous {
		if !currentSet.Contains(p) && !seen.Contains(p) {
			seen.Add(p)
			changed = append(changed, p)
		}
	}
	return changed
}

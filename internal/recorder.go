package internal

// Accumulates snapshots for a single build. Each build makes its own recorder
// and hands it down explicitly, so concurrent builds never share a trace. A nil
// recorder records nothing, which is how non-trace builds skip the copying.
type recorder struct {
	snapshots []Snapshot
}

func newRecorder(trace bool) *recorder {
	if !trace {
		return nil
	}
	return &recorder{snapshots: []Snapshot{}}
}

func (r *recorder) enabled() bool {
	return r != nil
}

// Record a copy of the hull. The caller may keep mutating its own slice.
func (r *recorder) record(hull Hull, phase Phase, note string) {
	r.recordFrame(hull, phase, note, nil, nil)
}

func (r *recorder) recordFrame(hull Hull, phase Phase, note string, line *Segment, candidates []Point) {
	if r == nil {
		return
	}
	snapshot := Snapshot{
		Hull:  append(Hull{}, hull...),
		Phase: phase,
		Note:  note,
	}
	if line != nil {
		lineCopy := *line
		snapshot.Line = &lineCopy
	}
	if candidates != nil {
		snapshot.Candidates = append([]Point{}, candidates...)
	}
	r.snapshots = append(r.snapshots, snapshot)
}

// The recorded snapshots, or nil when not tracing.
func (r *recorder) result() []Snapshot {
	if r == nil {
		return nil
	}
	return r.snapshots
}

// Whether the last recorded snapshot already shows this hull.
func (r *recorder) lastEquals(hull Hull) bool {
	if r == nil || len(r.snapshots) == 0 {
		return false
	}
	last := r.snapshots[len(r.snapshots)-1].Hull
	if len(last) != len(hull) {
		return false
	}
	for i := range last {
		if last[i] != hull[i] {
			return false
		}
	}
	return true
}

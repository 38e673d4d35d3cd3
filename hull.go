// Convex hulls of 2D point sets, with a replayable trace of how they were built.
//
// Two algorithms are provided: Andrew's monotone chain, and QuickHull. Both
// return the same hull for the same input: counterclockwise, starting from the
// lowest of the leftmost points, with no collinear vertices. Either one can
// record a snapshot of its working state at every step, and
// AdaptForVisualization turns those snapshots into steps that say which points
// changed.
//
// Collide builds on the hulls: it checks whether two point sets' hulls overlap
// with a GJK search, and keeps a step for every iteration of it.
//
// Everything here is a pure function of its input, so it is safe to call
// concurrently.
package hull

import (
	"github.com/osuushi/hull/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type Hull = internal.Hull
type Segment = internal.Segment
type Snapshot = internal.Snapshot
type Step = internal.Step
type Phase = internal.Phase
type Algorithm = internal.Algorithm
type AlgorithmInfo = internal.AlgorithmInfo
type Degeneracy = internal.Degeneracy
type CollisionStep = internal.CollisionStep
type CollisionOutcome = internal.CollisionOutcome

const (
	MonotoneChain = internal.AlgorithmMonotoneChain
	QuickHull     = internal.AlgorithmQuickHull
)

const (
	NotDegenerate         = internal.NotDegenerate
	DegenerateSinglePoint = internal.DegenerateSinglePoint
	DegenerateCollinear   = internal.DegenerateCollinear
)

const (
	CollisionSearching = internal.CollisionSearching
	CollisionFound     = internal.CollisionFound
	CollisionSeparated = internal.CollisionSeparated
)

var (
	ErrInsufficientInput    = internal.ErrInsufficientInput
	ErrUnsupportedAlgorithm = internal.ErrUnsupportedAlgorithm
	ErrInvalidPoint         = internal.ErrInvalidPoint
)

// The supported algorithms, for listing.
var Algorithms = internal.Algorithms

type Result struct {
	Hull Hull
	// Only set when tracing. The last snapshot's hull is Hull.
	Snapshots []Snapshot
	// Advisory. Degenerate input still has a correct (degenerate) hull.
	Degeneracy Degeneracy
}

// Compute the hull of the points with the given algorithm, recording snapshots
// if trace is set.
//
// The points may contain duplicates and collinear runs, but there must be at
// least one, and every coordinate must be finite.
func Compute(points []Point, algorithm Algorithm, trace bool) (result Result, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = Result{}
			err = recoveredErr
		}
	}()

	if err := internal.ValidatePoints(points); err != nil {
		return Result{}, err
	}
	hull, snapshots, err := algorithm.Build(points, trace)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Hull:       hull,
		Snapshots:  snapshots,
		Degeneracy: internal.Classify(points),
	}, nil
}

func ComputeHull(points []Point, algorithm Algorithm) (Hull, error) {
	result, err := Compute(points, algorithm, false)
	return result.Hull, err
}

func Trace(points []Point, algorithm Algorithm) ([]Snapshot, error) {
	result, err := Compute(points, algorithm, true)
	return result.Snapshots, err
}

// Pair each snapshot with the points that changed since the previous one. The
// first step's active points are its whole hull.
func AdaptForVisualization(snapshots []Snapshot) []Step {
	return internal.Adapt(snapshots)
}

// Look up an algorithm by id ("monotone-chain" or "quickhull"). "andrews" is
// also accepted.
func ParseAlgorithm(name string) (Algorithm, error) {
	return internal.ParseAlgorithm(name)
}

// Compute and adapt in one go, by algorithm name.
func Steps(points []Point, algorithmName string) ([]Step, error) {
	algorithm, err := ParseAlgorithm(algorithmName)
	if err != nil {
		return nil, err
	}
	snapshots, err := Trace(points, algorithm)
	if err != nil {
		return nil, errors.Wrapf(err, "tracing %s", algorithm)
	}
	return AdaptForVisualization(snapshots), nil
}

type Collision struct {
	Colliding bool
	// The shapes actually tested
	HullA, HullB Hull
	Steps        []CollisionStep
}

// Whether the convex hulls of a and b overlap. The hulls are built with the
// given algorithm, and the overlap is found by a GJK search over their
// vertices, one step per iteration.
func Collide(a, b []Point, algorithm Algorithm) (collision Collision, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			collision = Collision{}
			err = recoveredErr
		}
	}()

	hullA, err := ComputeHull(a, algorithm)
	if err != nil {
		return Collision{}, errors.Wrap(err, "first shape")
	}
	hullB, err := ComputeHull(b, algorithm)
	if err != nil {
		return Collision{}, errors.Wrap(err, "second shape")
	}
	colliding, steps := internal.Collide(hullA, hullB, internal.DefaultCollisionIterations)
	return Collision{
		Colliding: colliding,
		HullA:     hullA,
		HullB:     hullB,
		Steps:     steps,
	}, nil
}

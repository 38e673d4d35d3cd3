package internal

import (
	"strings"

	"github.com/pkg/errors"
)

type Algorithm int

const (
	AlgorithmMonotoneChain Algorithm = iota + 1
	AlgorithmQuickHull
)

type AlgorithmInfo struct {
	Algorithm   Algorithm
	ID          string
	Name        string
	Description string
}

var Algorithms = []AlgorithmInfo{
	{
		Algorithm:   AlgorithmMonotoneChain,
		ID:          "monotone-chain",
		Name:        "Andrew's Monotone Chain",
		Description: "Sorts points and builds the lower and upper hull with a stack",
	},
	{
		Algorithm:   AlgorithmQuickHull,
		ID:          "quickhull",
		Name:        "QuickHull",
		Description: "Divide and conquer on the point farthest from a dividing line",
	},
}

func (a Algorithm) String() string {
	for _, info := range Algorithms {
		if info.Algorithm == a {
			return info.ID
		}
	}
	return "unknown"
}

// Accepts the algorithm ids, plus "andrews" for the monotone chain.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "monotone-chain", "monotone_chain", "andrews":
		return AlgorithmMonotoneChain, nil
	case "quickhull", "quick-hull":
		return AlgorithmQuickHull, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedAlgorithm, "%q (available: monotone-chain, quickhull)", name)
}

// Run the algorithm. Snapshots are nil unless trace is set.
func (a Algorithm) Build(points []Point, trace bool) (Hull, []Snapshot, error) {
	switch a {
	case AlgorithmMonotoneChain:
		hull, snapshots := MonotoneChain(points, trace)
		return hull, snapshots, nil
	case AlgorithmQuickHull:
		hull, snapshots := QuickHull(points, trace)
		return hull, snapshots, nil
	}
	return nil, nil, errors.Wrapf(ErrUnsupportedAlgorithm, "algorithm %d", int(a))
}

package internal

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Random point sets on a small integer grid, so duplicates and collinear
// triples are common and every coordinate is exact.
func randomPointSets(seed uint64, sets int) [][]Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	var result [][]Point
	for i := 0; i < sets; i++ {
		n := 1 + rng.IntN(60)
		span := 2 + rng.IntN(30)
		points := make([]Point, n)
		for j := range points {
			points[j] = Point{float64(rng.IntN(span)), float64(rng.IntN(span))}
		}
		result = append(result, points)
	}
	return result
}

func TestHullProperties(t *testing.T) {
	for i, points := range randomPointSets(7, 200) {
		points := points
		t.Run(fmt.Sprintf("set %d (%d points)", i, len(points)), func(t *testing.T) {
			monotone, _ := MonotoneChain(points, false)
			quick, _ := QuickHull(points, false)

			AssertValidHull(t, points, monotone)
			AssertValidHull(t, points, quick)

			// Both start on the lowest-leftmost point and wind the same way
			assert.Equal(t, monotone, quick)

			for _, b := range builders {
				hull, none := b.build(points, false)
				assert.Nil(t, none)

				again, _ := b.build(points, false)
				assert.Equal(t, hull, again, "%s is not idempotent", b.name)

				_, snapshots := b.build(points, true)
				require.NotEmpty(t, snapshots)
				assert.Equal(t, hull, snapshots[len(snapshots)-1].Hull, "%s trace does not end on the hull", b.name)

				input := NewPointSet(points...)
				for _, snapshot := range snapshots {
					for _, p := range snapshot.Hull {
						assert.True(t, input.Contains(p))
					}
				}
				assert.Len(t, Adapt(snapshots), len(snapshots))
			}
		})
	}
}

// Tiny grids put many points on the same supporting line, which is where
// farthest-point ties happen.
func TestHullProperties_CrossValidateCrowdedGrids(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < 5000; i++ {
		n := 3 + rng.IntN(20)
		span := 2 + rng.IntN(5)
		points := make([]Point, n)
		for j := range points {
			points[j] = Point{float64(rng.IntN(span)), float64(rng.IntN(span))}
		}

		monotone, _ := MonotoneChain(points, false)
		quick, _ := QuickHull(points, false)
		if !assert.Equal(t, monotone, quick, "set %d: %v", i, points) {
			return
		}
		AssertValidHull(t, points, quick)
	}
}

func TestHullProperties_InputOrder(t *testing.T) {
	points := RingWithInterior(24)
	rng := rand.New(rand.NewPCG(1, 2))
	for _, b := range builders {
		expected, _ := b.build(points, false)
		for i := 0; i < 10; i++ {
			shuffled := append([]Point(nil), points...)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			actual, _ := b.build(shuffled, false)
			AssertSameHull(t, expected, actual)
		}
	}
}

func TestSnapshotsAreImmutable(t *testing.T) {
	for _, b := range builders {
		_, snapshots := b.build(LoadFixture("scatter"), true)
		copies := make([]Hull, len(snapshots))
		for i, snapshot := range snapshots {
			copies[i] = append(Hull{}, snapshot.Hull...)
		}
		// Running again must not disturb snapshots from the first run
		b.build(LoadFixture("scatter"), true)
		for i, snapshot := range snapshots {
			assert.Equal(t, copies[i], snapshot.Hull, "%s snapshot %d changed", b.name, i)
		}
	}
}

// Uniform random point sets, for feeding the hull builders.
package generate

import (
	"math"
	"math/rand/v2"

	"github.com/osuushi/hull/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point

// The most points a single call will produce.
const MaxCount = 10000

// Generate count points uniformly over [0, xMax] x [0, yMax]. Each call gives
// different points.
func Generate(count int, xMax, yMax float64) ([]Point, error) {
	return generate(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), count, xMax, yMax)
}

// Like Generate, but the same seed always gives the same points.
func GenerateSeeded(count int, xMax, yMax float64, seed uint64) ([]Point, error) {
	return generate(RandWithSeed(seed), count, xMax, yMax)
}

func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func generate(rng *rand.Rand, count int, xMax, yMax float64) ([]Point, error) {
	if count < 1 {
		return nil, errors.Errorf("count must be at least 1, got %d", count)
	}
	if count > MaxCount {
		return nil, errors.Errorf("count too large: %d (max %d)", count, MaxCount)
	}
	if xMax < 0 || yMax < 0 || math.IsNaN(xMax) || math.IsNaN(yMax) || math.IsInf(xMax, 0) || math.IsInf(yMax, 0) {
		return nil, errors.Errorf("bounds must be finite and non-negative, got %g x %g", xMax, yMax)
	}

	points := make([]Point, count)
	for i := range points {
		points[i] = Point{
			X: randf(rng, 0, xMax),
			Y: randf(rng, 0, yMax),
		}
	}
	return points, nil
}

func randf(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// Round every coordinate to the given number of decimals, in place. Rounded
// points make it far more likely that equal-looking points really are equal,
// which matters because hull steps are diffed by exact value.
func Round(points []Point, decimals int) []Point {
	if decimals < 0 {
		return points
	}
	scale := math.Pow(10, float64(decimals))
	for i, p := range points {
		points[i] = Point{
			X: math.Round(p.X*scale) / scale,
			Y: math.Round(p.Y*scale) / scale,
		}
	}
	return points
}

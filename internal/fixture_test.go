package internal

import (
	"embed"
	"log"
	"math"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This parses the svg fixtures into point sets. Every <circle> is a point, at
// its center. It's not a general svg reader; if anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	for _, circle := range circles {
		x, err := strconv.ParseFloat(circle.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circle.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circle.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circle.Attributes["cy"], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc fixtures

func SquareWithCenter() []Point {
	return []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}}
}

// Points on a circle, with the same number of points scattered inside it.
// Everything is snapped to a grid of quarters, so coordinates stay exact.
func RingWithInterior(n int) []Point {
	const radius = 100
	var points []Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{
			X: snap(radius * math.Cos(angle)),
			Y: snap(radius * math.Sin(angle)),
		})
		innerAngle := angle + 0.3
		innerRadius := radius * 0.6 * float64(i%5+1) / 5
		points = append(points, Point{
			X: snap(innerRadius * math.Cos(innerAngle)),
			Y: snap(innerRadius * math.Sin(innerAngle)),
		})
	}
	return points
}

// A square lattice, which is full of collinear points along the edges.
func Lattice(n int) []Point {
	var points []Point
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			points = append(points, Point{float64(i), float64(j)})
		}
	}
	return points
}

// Points along a diagonal, shuffled with repeats.
func Diagonal() []Point {
	return []Point{{3, 3}, {1, 1}, {4, 4}, {0, 0}, {2, 2}, {4, 4}, {1, 1}}
}

func snap(v float64) float64 {
	return math.Round(v*4) / 4
}

// Reading and writing point sets. Input comes as "x y" lines, CSV with x and y
// columns, or SVG (circle and ellipse centers, polygon and polyline vertices).
package pointio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/hull/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point

type Format int

const (
	FormatText Format = iota
	FormatCSV
	FormatSVG
)

func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".svg":
		return FormatSVG
	}
	return FormatText
}

// Read a point set from a file, choosing the format by extension. An empty
// path or "-" reads "x y" lines from stdin.
func ReadFile(path string) ([]Point, error) {
	if path == "" || path == "-" {
		return Read(os.Stdin, FormatText)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	points, err := Read(f, FormatForPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return points, nil
}

func Read(r io.Reader, format Format) ([]Point, error) {
	var (
		points []Point
		err    error
	)
	switch format {
	case FormatCSV:
		points, err = ReadCSV(r)
	case FormatSVG:
		points, err = ReadSVG(r)
	default:
		points, err = ReadText(r)
	}
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, errors.New("no points found")
	}
	return points, nil
}

// Newline separated points in the form "x y" (a comma works too). Blank lines
// and lines starting with # are skipped.
func ReadText(r io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: expected \"x y\", got %q", lineNumber, line)
		}
		point, err := parsePoint(parts[0], parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// CSV with a header row. The x column is the first named x, lon, lng, long or
// longitude, and the y column the first named y, lat or latitude (any case).
// Rows that don't parse are skipped.
func ReadCSV(r io.Reader) ([]Point, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("empty csv")
	}

	idxX, idxY := -1, -1
	for i, h := range records[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return nil, errors.New("csv: x/y columns not found")
	}

	var points []Point
	for _, row := range records[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		point, err := parsePoint(row[idxX], row[idxY])
		if err != nil {
			continue
		}
		points = append(points, point)
	}
	return points, nil
}

// Points from an SVG: the centers of circles and ellipses, and the vertices of
// polygons and polylines, in document order per element kind.
func ReadSVG(r io.Reader) ([]Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []Point
	for _, name := range []string{"circle", "ellipse"} {
		for _, el := range rootEl.FindAll(name) {
			point, err := parsePoint(el.Attributes["cx"], el.Attributes["cy"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s center", name)
			}
			points = append(points, point)
		}
	}
	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range rootEl.FindAll(name) {
			vertices, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s points", name)
			}
			points = append(points, vertices...)
		}
	}
	return points, nil
}

// An SVG points attribute: "x,y x,y ..." or "x y x y ...".
func parsePointList(s string) ([]Point, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i], fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

func parsePoint(xString, yString string) (Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(xString), 64)
	if err != nil {
		return Point{}, errors.Errorf("invalid x value %q", xString)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(yString), 64)
	if err != nil {
		return Point{}, errors.Errorf("invalid y value %q", yString)
	}
	return Point{X: x, Y: y}, nil
}

// One "x y" line per point, in the format ReadText reads.
func WriteText(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%s %s\n", formatFloat(p.X), formatFloat(p.Y)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/pkg/profile"

	"github.com/osuushi/hull"
	"github.com/osuushi/hull/generate"
	"github.com/osuushi/hull/internal"
	"github.com/osuushi/hull/internal/config"
	"github.com/osuushi/hull/internal/pointio"
)

func listAlgorithms(w io.Writer) {
	for _, info := range hull.Algorithms {
		fmt.Fprintf(w, "%-16s %s: %s\n", info.ID, info.Name, info.Description)
	}
}

func printHull(w io.Writer, points []hull.Point, algorithm hull.Algorithm) error {
	result, err := hull.Compute(points, algorithm, false)
	if err != nil {
		return err
	}
	if result.Degeneracy != hull.NotDegenerate {
		log.Printf("input is degenerate: %s", result.Degeneracy)
	}
	return pointio.WriteText(w, result.Hull)
}

func printTrace(w io.Writer, points []hull.Point, algorithm hull.Algorithm, format string, colors bool) error {
	steps, err := hull.Steps(points, algorithm.String())
	if err != nil {
		return err
	}
	switch format {
	case "yaml":
		return pointio.WriteTraceYAML(w, pointio.NewTraceDocument(algorithm.String(), points, steps))
	case "text":
		writeTraceText(w, steps, aurora.NewAurora(colors))
		return nil
	default:
		return errors.Errorf("unknown trace format %q", format)
	}
}

// One line per step: index, phase, note, then the hull and whatever changed.
func writeTraceText(w io.Writer, steps []hull.Step, au aurora.Aurora) {
	for _, step := range steps {
		note := au.Reset(step.Note)
		switch {
		case strings.HasPrefix(step.Note, "added"):
			note = au.Green(step.Note)
		case strings.HasPrefix(step.Note, "removed"):
			note = au.Red(step.Note)
		case step.Line != nil:
			note = au.Cyan(step.Note)
		}
		fmt.Fprintf(w, "%4d %-10s %s\n", step.Index, step.Phase, note)
		fmt.Fprintf(w, "     hull:   %s\n", joinPoints(step.Hull))
		fmt.Fprintf(w, "     active: %s\n", au.Yellow(joinPoints(step.Active)))
	}
}

func joinPoints(points []hull.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// A negative seed picks a random one.
func generatePoints(gen config.Generator, seed int64) ([]hull.Point, error) {
	var points []hull.Point
	var err error
	if seed < 0 {
		points, err = generate.Generate(gen.Count, gen.XMax, gen.YMax)
	} else {
		points, err = generate.GenerateSeeded(gen.Count, gen.XMax, gen.YMax, uint64(seed))
	}
	if err != nil {
		return nil, err
	}
	if gen.Decimals >= 0 {
		points = generate.Round(points, gen.Decimals)
	}
	return points, nil
}

func renderSteps(dir string, points []hull.Point, algorithm hull.Algorithm, opts config.Render, show bool) ([]string, error) {
	steps, err := hull.Steps(points, algorithm.String())
	if err != nil {
		return nil, err
	}
	drawOptions := internal.DrawOptions{Width: opts.Width, Height: opts.Height, Padding: opts.Padding}
	paths, err := internal.SaveStepPNGs(dir, points, steps, drawOptions)
	if err != nil {
		return paths, err
	}
	if show {
		for _, path := range paths {
			internal.CatPNG(path)
		}
	}
	return paths, nil
}

func printCollision(w io.Writer, collision hull.Collision, algorithm hull.Algorithm, format string, colors bool) error {
	switch format {
	case "yaml":
		doc := pointio.NewCollisionDocument(algorithm.String(), collision.HullA, collision.HullB, collision.Colliding, collision.Steps)
		return pointio.WriteCollisionYAML(w, doc)
	case "text":
		writeCollisionText(w, collision, aurora.NewAurora(colors))
		return nil
	default:
		return errors.Errorf("unknown collision format %q", format)
	}
}

func writeCollisionText(w io.Writer, collision hull.Collision, au aurora.Aurora) {
	fmt.Fprintf(w, "hull a: %s\n", joinPoints(collision.HullA))
	fmt.Fprintf(w, "hull b: %s\n", joinPoints(collision.HullB))
	for _, step := range collision.Steps {
		fmt.Fprintf(w, "%4d %-10s %s\n", step.Iteration, step.Outcome, step.Note)
		fmt.Fprintf(w, "     direction: %s  support: %s\n", step.Direction, au.Yellow(step.Support))
		fmt.Fprintf(w, "     simplex:   %s\n", au.Green(joinPoints(step.Simplex)))
	}
	if collision.Colliding {
		fmt.Fprintln(w, au.Red("collision"))
	} else {
		fmt.Fprintln(w, au.Cyan("separated"))
	}
}

func renderCollision(dir string, collision hull.Collision, opts config.Render, show bool) ([]string, error) {
	drawOptions := internal.DrawOptions{Width: opts.Width, Height: opts.Height, Padding: opts.Padding}
	paths, err := internal.SaveCollisionPNGs(dir, collision.HullA, collision.HullB, collision.Steps, drawOptions)
	if err != nil {
		return paths, err
	}
	if show {
		for _, path := range paths {
			internal.CatPNG(path)
		}
	}
	return paths, nil
}

type benchResult struct {
	Algorithm hull.Algorithm
	Total     time.Duration
	Steps     int
	HullSize  int
}

// Time every algorithm over the same points, and check that they agree.
func bench(points []hull.Point, runs int) ([]benchResult, error) {
	if runs < 1 {
		return nil, errors.Errorf("runs must be at least 1, got %d", runs)
	}
	results := make([]benchResult, 0, len(hull.Algorithms))
	var reference hull.Hull
	for i, info := range hull.Algorithms {
		result := benchResult{Algorithm: info.Algorithm}
		var built hull.Hull
		start := time.Now()
		for run := 0; run < runs; run++ {
			var err error
			built, err = hull.ComputeHull(points, info.Algorithm)
			if err != nil {
				return nil, errors.Wrapf(err, "%s", info.ID)
			}
		}
		result.Total = time.Since(start)
		result.HullSize = len(built)

		snapshots, err := hull.Trace(points, info.Algorithm)
		if err != nil {
			return nil, errors.Wrapf(err, "tracing %s", info.ID)
		}
		result.Steps = len(snapshots)

		if i == 0 {
			reference = built
		} else if !sameHull(reference, built) {
			return nil, errors.Errorf("%s and %s disagree: %d vs %d vertices",
				hull.Algorithms[0].ID, info.ID, len(reference), len(built))
		}
		results = append(results, result)
	}
	return results, nil
}

func sameHull(a, b hull.Hull) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func writeBench(w io.Writer, results []benchResult, count, runs int) {
	fmt.Fprintf(w, "%d points, %d runs\n", count, runs)
	for _, r := range results {
		perRun := r.Total / time.Duration(runs)
		fmt.Fprintf(w, "%-16s %12s/run  hull %d  steps %d\n", r.Algorithm, perRun, r.HullSize, r.Steps)
	}
}

// Start a profile if one was asked for. The returned stop is never nil.
func startProfile(mode, dir string) (func(), error) {
	var option func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		option = profile.CPUProfile
	case "mem":
		option = profile.MemProfile
	default:
		return nil, errors.Errorf("unknown profile %q", mode)
	}
	return profile.Start(option, profile.ProfilePath(filepath.Clean(dir)), profile.NoShutdownHook).Stop, nil
}

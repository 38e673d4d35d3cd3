// Command hullviz builds convex hulls, and shows how they were built.
//
// Points are read from a file, or stdin when no file is given. Files ending in
// .csv or .svg are parsed as such, and anything else is read as "x y" lines.
package main

import (
	"log"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/hull"
	"github.com/osuushi/hull/internal/config"
	"github.com/osuushi/hull/internal/pointio"
	"github.com/osuushi/hull/internal/tui"
)

// Unset flag value, so the config's decimals apply
const noDecimals = "config"

var (
	app        = kingpin.New("hullviz", "Convex hulls with replayable step traces.")
	configPath = app.Flag("config", "YAML config file. Defaults to "+config.DefaultPath+" if it exists.").String()

	algorithmsCmd = app.Command("algorithms", "List the hull algorithms.")

	hullCmd       = app.Command("hull", "Print the hull vertices, counterclockwise.")
	hullAlgorithm = hullCmd.Flag("algorithm", "Algorithm id.").Short('a').String()
	hullFile      = hullCmd.Arg("file", "Points file.").String()

	traceCmd       = app.Command("trace", "Print every step of a hull build.")
	traceAlgorithm = traceCmd.Flag("algorithm", "Algorithm id.").Short('a').String()
	traceFormat    = traceCmd.Flag("format", "Output format.").Default("text").Enum("text", "yaml")
	traceNoColor   = traceCmd.Flag("no-color", "Disable colours in text output.").Bool()
	traceFile      = traceCmd.Arg("file", "Points file.").String()

	generateCmd      = app.Command("generate", "Print uniformly random points.")
	generateCount    = generateCmd.Flag("count", "Number of points.").Short('n').Int()
	generateXMax     = generateCmd.Flag("x-max", "Largest x.").Float64()
	generateYMax     = generateCmd.Flag("y-max", "Largest y.").Float64()
	generateSeed     = generateCmd.Flag("seed", "Random seed. Negative for a random one.").Default("-1").Int64()
	generateDecimals = generateCmd.Flag("decimals", "Round to this many decimal places. Negative keeps full precision.").Default(noDecimals).String()

	renderCmd       = app.Command("render", "Draw every step as a PNG.")
	renderAlgorithm = renderCmd.Flag("algorithm", "Algorithm id.").Short('a').String()
	renderDir       = renderCmd.Flag("output", "Directory for the PNGs.").Short('o').Default("steps").String()
	renderImgcat    = renderCmd.Flag("imgcat", "Also print each PNG to the terminal (iTerm).").Bool()
	renderFile      = renderCmd.Arg("file", "Points file.").String()

	playCmd       = app.Command("play", "Step through a hull build in the terminal.")
	playAlgorithm = playCmd.Flag("algorithm", "Algorithm id.").Short('a').String()
	playFPS       = playCmd.Flag("fps", "Steps per second while playing.").Float64()
	playFile      = playCmd.Arg("file", "Points file.").String()

	collideCmd       = app.Command("collide", "Check whether the hulls of two point sets overlap, step by step.")
	collideAlgorithm = collideCmd.Flag("algorithm", "Algorithm id for the hulls.").Short('a').String()
	collideFormat    = collideCmd.Flag("format", "Output format.").Default("text").Enum("text", "yaml")
	collideNoColor   = collideCmd.Flag("no-color", "Disable colours in text output.").Bool()
	collideRender    = collideCmd.Flag("render", "Also draw every iteration as a PNG into this directory.").String()
	collideImgcat    = collideCmd.Flag("imgcat", "Print the rendered PNGs to the terminal (iTerm).").Bool()
	collideFileA     = collideCmd.Arg("a", "First points file.").Required().String()
	collideFileB     = collideCmd.Arg("b", "Second points file.").Required().String()

	benchCmd     = app.Command("bench", "Time the algorithms on random points.")
	benchCount   = benchCmd.Flag("count", "Number of points.").Short('n').Default("10000").Int()
	benchRuns    = benchCmd.Flag("runs", "Builds per algorithm.").Default("10").Int()
	benchSeed    = benchCmd.Flag("seed", "Random seed. Negative for a random one.").Default("1").Int64()
	benchProfile = benchCmd.Flag("profile", "Write a cpu or mem profile.").Enum("cpu", "mem")
	benchProfDir = benchCmd.Flag("profile-dir", "Directory for the profile.").Default(".").String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	switch command {
	case algorithmsCmd.FullCommand():
		listAlgorithms(os.Stdout)

	case hullCmd.FullCommand():
		points, algorithm := load(*hullFile, *hullAlgorithm, cfg)
		if err := printHull(os.Stdout, points, algorithm); err != nil {
			log.Fatalf("%v", err)
		}

	case traceCmd.FullCommand():
		points, algorithm := load(*traceFile, *traceAlgorithm, cfg)
		if err := printTrace(os.Stdout, points, algorithm, *traceFormat, !*traceNoColor); err != nil {
			log.Fatalf("%v", err)
		}

	case generateCmd.FullCommand():
		gen := cfg.Generator
		if *generateCount != 0 {
			gen.Count = *generateCount
		}
		if *generateXMax != 0 {
			gen.XMax = *generateXMax
		}
		if *generateYMax != 0 {
			gen.YMax = *generateYMax
		}
		if *generateDecimals != noDecimals {
			decimals, err := strconv.Atoi(*generateDecimals)
			if err != nil {
				log.Fatalf("--decimals: %v", err)
			}
			gen.Decimals = decimals
		}
		points, err := generatePoints(gen, *generateSeed)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if err := pointio.WriteText(os.Stdout, points); err != nil {
			log.Fatalf("%v", err)
		}

	case renderCmd.FullCommand():
		points, algorithm := load(*renderFile, *renderAlgorithm, cfg)
		paths, err := renderSteps(*renderDir, points, algorithm, cfg.Render, *renderImgcat)
		if err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("wrote %d steps to %s", len(paths), *renderDir)

	case playCmd.FullCommand():
		points, algorithm := load(*playFile, *playAlgorithm, cfg)
		steps, err := hull.Steps(points, algorithm.String())
		if err != nil {
			log.Fatalf("%v", err)
		}
		fps := cfg.Player.FPS
		if *playFPS > 0 {
			fps = *playFPS
		}
		model := tui.New(algorithm.String(), points, steps, fps)
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			log.Fatalf("%v", err)
		}

	case collideCmd.FullCommand():
		a, algorithm := load(*collideFileA, *collideAlgorithm, cfg)
		b, _ := load(*collideFileB, *collideAlgorithm, cfg)
		collision, err := hull.Collide(a, b, algorithm)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if err := printCollision(os.Stdout, collision, algorithm, *collideFormat, !*collideNoColor); err != nil {
			log.Fatalf("%v", err)
		}
		if *collideRender != "" {
			paths, err := renderCollision(*collideRender, collision, cfg.Render, *collideImgcat)
			if err != nil {
				log.Fatalf("%v", err)
			}
			log.Printf("wrote %d iterations to %s", len(paths), *collideRender)
		}

	case benchCmd.FullCommand():
		gen := cfg.Generator
		gen.Count = *benchCount
		points, err := generatePoints(gen, *benchSeed)
		if err != nil {
			log.Fatalf("%v", err)
		}
		stop, err := startProfile(*benchProfile, *benchProfDir)
		if err != nil {
			log.Fatalf("%v", err)
		}
		results, err := bench(points, *benchRuns)
		stop()
		if err != nil {
			log.Fatalf("%v", err)
		}
		writeBench(os.Stdout, results, len(points), *benchRuns)
	}
}

// Read the points and resolve the algorithm, falling back to the config's.
func load(path, algorithmName string, cfg config.Config) ([]hull.Point, hull.Algorithm) {
	if algorithmName == "" {
		algorithmName = cfg.Algorithm
	}
	algorithm, err := hull.ParseAlgorithm(algorithmName)
	if err != nil {
		log.Fatalf("%v", err)
	}
	points, err := pointio.ReadFile(path)
	if err != nil {
		name := path
		if name == "" {
			name = "stdin"
		}
		log.Fatalf("%v", errors.Wrapf(err, "reading %s", name))
	}
	return points, algorithm
}

package internal

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

type DrawOptions struct {
	Width, Height int
	// Padding around the points, in pixels
	Padding float64
}

var DefaultDrawOptions = DrawOptions{Width: 800, Height: 800, Padding: 40}

// Maps point coordinates onto the canvas. The y axis is flipped so the origin
// is at the bottom left. We do this by hand rather than with the context
// matrix, because the matrix would also scale the point radii.
type canvasTransform struct {
	minX, minY float64
	scale      float64
	padding    float64
	height     float64
}

func newCanvasTransform(points []Point, opts DrawOptions) canvasTransform {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	spanX := math.Max(maxX-minX, 1e-9)
	spanY := math.Max(maxY-minY, 1e-9)
	usableW := float64(opts.Width) - 2*opts.Padding
	usableH := float64(opts.Height) - 2*opts.Padding
	scale := math.Min(usableW/spanX, usableH/spanY)
	if maxX == minX && maxY == minY {
		scale = 1
	}

	return canvasTransform{
		minX:    minX,
		minY:    minY,
		scale:   scale,
		padding: opts.Padding,
		height:  float64(opts.Height),
	}
}

func (tr canvasTransform) apply(p Point) (float64, float64) {
	x := tr.padding + (p.X-tr.minX)*tr.scale
	y := tr.height - (tr.padding + (p.Y-tr.minY)*tr.scale)
	return x, y
}

// Render one step: every input point, the candidates under test, the dividing
// line, the hull so far, and the changed points highlighted.
func DrawStep(points []Point, step Step, opts DrawOptions) *gg.Context {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultDrawOptions
	}
	tr := newCanvasTransform(points, opts)

	c := gg.NewContext(opts.Width, opts.Height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(opts.Width), float64(opts.Height))
	c.Fill()

	for _, p := range points {
		x, y := tr.apply(p)
		c.DrawCircle(x, y, 3)
	}
	c.SetRGB(0.5, 0.5, 0.5)
	c.Fill()

	for _, p := range step.Candidates {
		x, y := tr.apply(p)
		c.DrawCircle(x, y, 4)
	}
	c.SetRGB(1, 0, 1)
	c.Fill()

	if step.Line != nil {
		x0, y0 := tr.apply(step.Line.Start)
		x1, y1 := tr.apply(step.Line.End)
		c.SetDash(6, 4)
		c.DrawLine(x0, y0, x1, y1)
		c.SetRGB(1, 0.2, 0.2)
		c.SetLineWidth(2)
		c.Stroke()
		c.SetDash()
	}

	if len(step.Hull) > 0 {
		x, y := tr.apply(step.Hull[0])
		c.MoveTo(x, y)
		for _, p := range step.Hull[1:] {
			x, y := tr.apply(p)
			c.LineTo(x, y)
		}
		if step.Phase == PhaseComplete || step.Line != nil {
			c.ClosePath()
			c.SetRGBA(0, 0.5, 0, 0.3)
			c.FillPreserve()
		}
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(3)
		c.Stroke()

		for _, p := range step.Hull {
			x, y := tr.apply(p)
			c.DrawCircle(x, y, 5)
		}
		c.SetRGB(0, 1, 1)
		c.Fill()
	}

	for _, p := range step.Active {
		x, y := tr.apply(p)
		c.DrawCircle(x, y, 7)
	}
	c.SetRGB(1, 1, 0)
	c.SetLineWidth(2)
	c.Stroke()

	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(fmt.Sprintf("step %d  %s", step.Index, step.Phase), 10, 10, 0, 1)
	return c
}

// Write one PNG per step into dir, returning the file paths in step order.
func SaveStepPNGs(dir string, points []Point, steps []Step, opts DrawOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating %s", dir)
	}
	paths := make([]string, 0, len(steps))
	for _, step := range steps {
		path := filepath.Join(dir, fmt.Sprintf("step_%04d.png", step.Index))
		if err := DrawStep(points, step, opts).SavePNG(path); err != nil {
			return paths, errors.Wrapf(err, "saving %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Print a PNG in the terminal (iTerm only).
func CatPNG(path string) {
	imgcat.CatFile(path, os.Stdout)
}

// Helper to draw a step and print it in the terminal for debugging.
func dbgDraw(points []Point, step Step) {
	path := filepath.Join(os.TempDir(), "hull_step.png")
	if err := showPNG(DrawStep(points, step, DefaultDrawOptions), path); err != nil {
		log.Printf("dbgDraw: %v", err)
	}
}

// Save the drawing, and only print it if that worked.
func showPNG(c *gg.Context, path string) error {
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	CatPNG(path)
	return nil
}

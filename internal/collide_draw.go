package internal

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Render one collision step as two panels: the shapes themselves on the left,
// and the Minkowski difference with the simplex and the origin on the right.
func DrawCollisionStep(a, b Hull, step CollisionStep, opts DrawOptions) *gg.Context {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultDrawOptions
	}
	panel := DrawOptions{Width: opts.Width / 2, Height: opts.Height, Padding: opts.Padding}
	panelOffset := float64(panel.Width)

	c := gg.NewContext(opts.Width, opts.Height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(opts.Width), float64(opts.Height))
	c.Fill()

	shapes := newCanvasTransform(append(append([]Point{}, a...), b...), panel)
	drawPolygon(c, shapes, 0, a)
	c.SetRGB(0.3, 0.5, 1)
	c.SetLineWidth(2)
	c.Stroke()
	drawPolygon(c, shapes, 0, b)
	c.SetRGB(1, 0.3, 0.3)
	c.Stroke()

	// The difference is framed the same way on every step, origin included
	difference, _ := MonotoneChain(MinkowskiDifference(a, b), false)
	framed := append(append([]Point{}, difference...), Point{})
	minkowski := newCanvasTransform(framed, panel)

	drawPolygon(c, minkowski, panelOffset, difference)
	c.SetRGB(0.5, 0.5, 0.5)
	c.SetLineWidth(1)
	c.Stroke()

	ox, oy := minkowski.apply(Point{})
	ox += panelOffset
	c.DrawLine(ox-6, oy-6, ox+6, oy+6)
	c.DrawLine(ox-6, oy+6, ox+6, oy-6)
	c.SetRGB(1, 1, 1)
	c.SetLineWidth(2)
	c.Stroke()

	if len(step.Simplex) > 1 {
		drawPolygon(c, minkowski, panelOffset, step.Simplex)
		c.SetRGB(0, 1, 0)
		c.SetLineWidth(2)
		c.Stroke()
	}
	for _, p := range step.Simplex {
		x, y := minkowski.apply(p)
		c.DrawCircle(x+panelOffset, y, 5)
	}
	c.SetRGB(0, 1, 0)
	c.Fill()

	sx, sy := minkowski.apply(step.Support)
	c.DrawCircle(sx+panelOffset, sy, 7)
	c.SetRGB(1, 1, 0)
	c.SetLineWidth(2)
	c.Stroke()

	// Search direction, drawn from the origin
	length := step.Direction.Dot(step.Direction)
	if length > 0 {
		unit := step.Direction.Scale(40 / math.Sqrt(length))
		c.DrawLine(ox, oy, ox+unit.X, oy-unit.Y)
		c.SetRGB(1, 0, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(fmt.Sprintf("iteration %d  %s", step.Iteration, step.Outcome), 10, 10, 0, 1)
	return c
}

// Trace a closed polygon without stroking it, shifted right by offset.
func drawPolygon(c *gg.Context, tr canvasTransform, offset float64, vertices []Point) {
	if len(vertices) == 0 {
		return
	}
	x, y := tr.apply(vertices[0])
	c.MoveTo(x+offset, y)
	for _, p := range vertices[1:] {
		x, y := tr.apply(p)
		c.LineTo(x+offset, y)
	}
	c.ClosePath()
}

// Write one PNG per collision step into dir, returning the paths in order.
func SaveCollisionPNGs(dir string, a, b Hull, steps []CollisionStep, opts DrawOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating %s", dir)
	}
	paths := make([]string, 0, len(steps))
	for _, step := range steps {
		path := filepath.Join(dir, fmt.Sprintf("collide_%04d.png", step.Iteration))
		if err := DrawCollisionStep(a, b, step, opts).SavePNG(path); err != nil {
			return paths, errors.Wrapf(err, "saving %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

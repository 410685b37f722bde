// Package recording provides a surface.Driver that captures primitives as
// typed commands instead of drawing them.
//
// Recordings serve diagnostics and testing: assert on the exact primitives a
// scene produces, or capture once and replay into another driver later.
//
//	drv := recording.New()
//	s := surface.New(drv)
//	s.Circle(geom.Pt(0, 0), 10)
//	for _, cmd := range drv.Commands() {
//	    fmt.Println(cmd)
//	}
//
// Importing this package registers the "recording" backend with the surface
// registry at diagnostic priority.
package recording

import "github.com/quartzgl/vmath/surface"

// Driver records primitive calls in arrival order.
// Like the Surface feeding it, a Driver is a single-goroutine object.
type Driver struct {
	commands []Command
}

var _ surface.Driver = (*Driver)(nil)

// New creates an empty recording driver.
func New() *Driver {
	return &Driver{}
}

// Line records a segment.
func (d *Driver) Line(x0, y0, x1, y1 float64) {
	d.commands = append(d.commands, LineCommand{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// Quad records a quadrilateral.
func (d *Driver) Quad(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	d.commands = append(d.commands, QuadCommand{
		X0: x0, Y0: y0, X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3,
	})
}

// Circle records a circle.
func (d *Driver) Circle(cx, cy, r float64) {
	d.commands = append(d.commands, CircleCommand{CX: cx, CY: cy, R: r})
}

// Commands returns the recorded commands in arrival order. The slice is a
// copy; recording further primitives does not change it.
func (d *Driver) Commands() []Command {
	out := make([]Command, len(d.commands))
	copy(out, d.commands)
	return out
}

// Len returns the number of recorded commands.
func (d *Driver) Len() int {
	return len(d.commands)
}

// Reset discards all recorded commands.
func (d *Driver) Reset() {
	d.commands = d.commands[:0]
}

// Replay plays the recorded commands into dst in arrival order.
func (d *Driver) Replay(dst surface.Driver) {
	for _, cmd := range d.commands {
		switch c := cmd.(type) {
		case LineCommand:
			dst.Line(c.X0, c.Y0, c.X1, c.Y1)
		case QuadCommand:
			dst.Quad(c.X0, c.Y0, c.X1, c.Y1, c.X2, c.Y2, c.X3, c.Y3)
		case CircleCommand:
			dst.Circle(c.CX, c.CY, c.R)
		}
	}
}

func init() {
	surface.Register("recording", 10, func() (surface.Driver, error) {
		return New(), nil
	}, nil)
}

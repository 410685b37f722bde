// Package ebitengine provides a surface.Driver that draws through
// github.com/hajimehoshi/ebiten/v2.
//
// The driver strokes primitives onto a target *ebiten.Image. Ebitengine
// hands the frame target to Draw each tick, so the target is retargetable:
//
//	func (g *game) Draw(screen *ebiten.Image) {
//	    g.drv.SetTarget(screen)
//	    g.surf.Circle(geom.Pt(0, 0), 40)
//	}
//
// Importing this package registers the "ebitengine" backend with the
// surface registry.
package ebitengine

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/quartzgl/vmath"
	"github.com/quartzgl/vmath/surface"
)

// whiteSubImage is the 1x1 texture used to draw solid triangles. The pixel
// is taken from the middle of a 3x3 image so linear filtering never samples
// beyond the edge.
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Driver strokes surface primitives onto an Ebitengine image.
// Like the Surface feeding it, a Driver is a single-goroutine object.
type Driver struct {
	target    *ebiten.Image
	color     color.Color
	width     float32
	antialias bool
}

var _ surface.Driver = (*Driver)(nil)

// New creates a Driver with no target. Draw calls are dropped until
// SetTarget installs one.
func New(opts ...Option) *Driver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{
		target:    o.target,
		color:     o.color,
		width:     o.width,
		antialias: o.antialias,
	}
}

// SetTarget directs subsequent draw calls onto img. Ebitengine games call
// this at the top of Draw with the frame's screen image.
func (d *Driver) SetTarget(img *ebiten.Image) {
	d.target = img
}

// Target returns the current target image, or nil when unset.
func (d *Driver) Target() *ebiten.Image {
	return d.target
}

// Line strokes a segment from (x0, y0) to (x1, y1).
func (d *Driver) Line(x0, y0, x1, y1 float64) {
	if d.target == nil {
		vmath.Logger().Warn("ebitengine: draw call with no target image")
		return
	}
	vector.StrokeLine(d.target,
		float32(x0), float32(y0), float32(x1), float32(y1),
		d.width, d.color, d.antialias)
}

// Quad strokes a quadrilateral through the four corners in order.
func (d *Driver) Quad(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	if d.target == nil {
		vmath.Logger().Warn("ebitengine: draw call with no target image")
		return
	}

	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.LineTo(float32(x3), float32(y3))
	path.Close()

	op := &vector.StrokeOptions{Width: d.width}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)

	cr, cg, cb, ca := rgbaF32(d.color)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}

	d.target.DrawTriangles(vs, is, whiteTexture(), &ebiten.DrawTrianglesOptions{
		AntiAlias: d.antialias,
	})
}

// Circle strokes a circle of radius r centered on (cx, cy).
func (d *Driver) Circle(cx, cy, r float64) {
	if d.target == nil {
		vmath.Logger().Warn("ebitengine: draw call with no target image")
		return
	}
	vector.StrokeCircle(d.target,
		float32(cx), float32(cy), float32(r),
		d.width, d.color, d.antialias)
}

// rgbaF32 converts a color to premultiplied float32 components for vertex
// colors.
func rgbaF32(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

func init() {
	surface.Register("ebitengine", 100, func() (surface.Driver, error) {
		return New(), nil
	}, nil)
}

package surface

import (
	"github.com/quartzgl/vmath"
	"github.com/quartzgl/vmath/geom"
)

// Driver receives primitive draw calls with final, already-transformed
// coordinates. Implementations live outside this package: backends wrap a
// rendering library, tests record calls, tools print them.
//
// Coordinates flow one way. A Driver never calls back into the Surface and
// never sees the transform that produced its inputs.
type Driver interface {
	// Line draws a segment from (x0, y0) to (x1, y1).
	Line(x0, y0, x1, y1 float64)

	// Quad draws a quadrilateral through four corners in order.
	// Callers pass corners counter-clockwise or clockwise consistently;
	// the driver does not reorder them.
	Quad(x0, y0, x1, y1, x2, y2, x3, y3 float64)

	// Circle draws a circle of radius r centered on (cx, cy).
	Circle(cx, cy, r float64)
}

// state is one entry of the transform stack: a rotation, a uniform scale
// and a translation, applied to local points in that order.
type state struct {
	rot   vmath.Quat
	scale float64
	trans vmath.Vec2
}

func identityState() state {
	return state{rot: vmath.QuatIdentity(), scale: 1}
}

// Surface maps local drawing coordinates through a stack of transforms and
// forwards the resulting primitives to a Driver.
//
// The composed transform is world = rotate(scale · p) + translation. Push
// saves the current transform, Pop restores the last saved one. Like the
// rest of the drawing state, a Surface is a single-goroutine object.
type Surface struct {
	drv   Driver
	cur   state
	stack []state
}

// New creates a Surface drawing through d.
//
// Example:
//
//	s := surface.New(drv, surface.WithScale(2))
//	s.Line(geom.Pt(0, 0), geom.Pt(10, 0))
func New(d Driver, opts ...Option) *Surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Surface{
		drv: d,
		cur: state{rot: o.rotation, scale: o.scale, trans: o.translation},
	}
}

// Push saves the current transform. Each Push pairs with one Pop.
func (s *Surface) Push() {
	s.stack = append(s.stack, s.cur)
}

// Pop restores the transform saved by the matching Push. Popping with no
// saved transform is ignored and logged at warn level.
func (s *Surface) Pop() {
	if len(s.stack) == 0 {
		vmath.Logger().Warn("surface: Pop on empty transform stack")
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Reset discards all saved transforms and restores the identity.
func (s *Surface) Reset() {
	s.stack = s.stack[:0]
	s.cur = identityState()
}

// Translate displaces subsequent drawing by (dx, dy) in local coordinates:
// the displacement is scaled and rotated by the current transform.
func (s *Surface) Translate(dx, dy float64) {
	d := vmath.V2(dx, dy).Mul(s.cur.scale)
	s.cur.trans = s.cur.trans.Add(s.cur.rot.TransformVec2(d))
}

// Rotate turns subsequent drawing counter-clockwise by angle radians about
// the local origin.
func (s *Surface) Rotate(angle float64) {
	s.RotateQuat(vmath.QuatFromAxisAngle(vmath.UnitZ3(), angle))
}

// RotateQuat composes q onto the current rotation. q applies first, in
// local coordinates. Rotations out of the drawing plane are legal but
// collapse onto it: the driver only ever sees x and y.
func (s *Surface) RotateQuat(q vmath.Quat) {
	s.cur.rot = s.cur.rot.Mul(q)
}

// ScaleBy multiplies the current uniform scale by factor.
func (s *Surface) ScaleBy(factor float64) {
	s.cur.scale *= factor
}

// Apply runs a local point through the composed transform.
func (s *Surface) Apply(p geom.Point) geom.Point {
	v := s.cur.rot.TransformVec2(p.Vec().Mul(s.cur.scale)).Add(s.cur.trans)
	return geom.PointFromVec(v)
}

// Line draws a segment between two local points.
func (s *Surface) Line(p0, p1 geom.Point) {
	a := s.Apply(p0)
	b := s.Apply(p1)
	s.drv.Line(a.X, a.Y, b.X, b.Y)
}

// Rect draws a rectangle. Under rotation the axis-aligned rectangle leaves
// this package as a quadrilateral of its four transformed corners.
func (s *Surface) Rect(r geom.Rect) {
	c := r.Corners()
	p0 := s.Apply(c[0])
	p1 := s.Apply(c[1])
	p2 := s.Apply(c[2])
	p3 := s.Apply(c[3])
	s.drv.Quad(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
}

// Circle draws a circle of the given local radius around center. The
// center is transformed and the radius multiplied by the current scale;
// planar rotation leaves circles circular, so the driver receives a circle
// rather than a tessellation.
func (s *Surface) Circle(center geom.Point, radius float64) {
	c := s.Apply(center)
	s.drv.Circle(c.X, c.Y, radius*s.cur.scale)
}

// Depth returns the number of saved transforms.
func (s *Surface) Depth() int {
	return len(s.stack)
}

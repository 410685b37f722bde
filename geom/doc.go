// Package geom provides Point, Size and Rect value types for 2D drawing
// geometry.
//
// Coordinates follow standard computer graphics conventions: origin at the
// top left, X increasing right, Y increasing down. All types are immutable
// values; operations return new values. Translation consumes vmath.Vec2, so
// positions and displacements stay distinct types.
//
// Rect containment is closed on all edges: a point on the boundary is
// inside. This differs from the half-open image.Rectangle convention;
// convert through the fixed-point helpers when interoperating with code
// that expects half-open rectangles.
package geom

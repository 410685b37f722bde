// Package surface adapts vmath transforms to a pluggable drawing backend.
//
// Surface holds a stack of rotation/scale/translation transforms and maps
// local geometry through them, handing the resulting primitives to a Driver
// as plain float64 coordinates. The package contains no rendering of its
// own: what a line or circle looks like is entirely the Driver's business.
//
// # Architecture
//
// Drawing code composes transforms and issues shapes:
//
//	s := surface.New(drv)
//	s.Translate(400, 300)
//	s.Push()
//	s.Rotate(math.Pi / 4)
//	s.Rect(geom.NewRect(geom.Pt(-50, -50), geom.Pt(50, 50)))
//	s.Pop()
//
// The Driver on the other side sees only final coordinates: the rotated
// rectangle above arrives as one Quad call with four transformed corners.
//
// # Drivers
//
// Backends implement Driver and register themselves by name:
//
//	surface.Register("ebitengine", 100, factory, nil)
//
//	// Later, without importing the backend package directly:
//	drv, err := surface.NewDriverByName("ebitengine")
//
// backend/ebitengine provides a Driver over an Ebitengine image. Tests use
// recording drivers; anything accepting float64 primitives will do.
package surface

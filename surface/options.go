package surface

import "github.com/quartzgl/vmath"

// Option configures a Surface during creation.
//
// Example:
//
//	// Default identity transform
//	s := surface.New(drv)
//
//	// Start pre-rotated and offset
//	s := surface.New(drv,
//	    surface.WithRotation(q),
//	    surface.WithTranslation(vmath.V2(400, 300)))
type Option func(*surfaceOptions)

// surfaceOptions holds the initial transform for Surface creation.
type surfaceOptions struct {
	rotation    vmath.Quat
	scale       float64
	translation vmath.Vec2
}

// defaultOptions returns the default surface options: the identity
// transform.
func defaultOptions() surfaceOptions {
	return surfaceOptions{
		rotation: vmath.QuatIdentity(),
		scale:    1,
	}
}

// WithRotation sets the initial rotation.
func WithRotation(q vmath.Quat) Option {
	return func(o *surfaceOptions) {
		o.rotation = q
	}
}

// WithScale sets the initial uniform scale.
func WithScale(s float64) Option {
	return func(o *surfaceOptions) {
		o.scale = s
	}
}

// WithTranslation sets the initial translation.
func WithTranslation(v vmath.Vec2) Option {
	return func(o *surfaceOptions) {
		o.translation = v
	}
}

package ebitengine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Option configures a Driver during creation.
//
// Example:
//
//	drv := ebitengine.New(
//	    ebitengine.WithColor(color.RGBA{R: 255, A: 255}),
//	    ebitengine.WithStrokeWidth(2))
type Option func(*driverOptions)

// driverOptions holds optional configuration for Driver creation.
type driverOptions struct {
	target    *ebiten.Image
	color     color.Color
	width     float32
	antialias bool
}

// defaultOptions returns the default driver options: white hairline
// strokes, antialiased, no target.
func defaultOptions() driverOptions {
	return driverOptions{
		color:     color.White,
		width:     1,
		antialias: true,
	}
}

// WithTarget sets the initial target image.
func WithTarget(img *ebiten.Image) Option {
	return func(o *driverOptions) {
		o.target = img
	}
}

// WithColor sets the stroke color.
func WithColor(c color.Color) Option {
	return func(o *driverOptions) {
		o.color = c
	}
}

// WithStrokeWidth sets the stroke width in pixels.
func WithStrokeWidth(w float64) Option {
	return func(o *driverOptions) {
		o.width = float32(w)
	}
}

// WithAntialias enables or disables antialiased strokes.
func WithAntialias(enabled bool) Option {
	return func(o *driverOptions) {
		o.antialias = enabled
	}
}

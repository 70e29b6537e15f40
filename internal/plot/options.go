package plot

import "image/color"

// Option configures a plot during rendering.
//
// Example:
//
//	img := plot.Render(l0, l1, plot.WithSize(400, 400), plot.WithScale(20))
type Option func(*options)

// options holds optional configuration for Render.
type options struct {
	width, height int
	scale         float64
	lineWidth     float64
	markerRadius  float64
	background    color.RGBA
	line0Color    color.RGBA
	line1Color    color.RGBA
	pointColor    color.RGBA
	labelColor    color.RGBA
	label         bool
}

// defaultOptions returns the default plot options.
func defaultOptions() options {
	return options{
		width:        512,
		height:       512,
		scale:        32,
		lineWidth:    2,
		markerRadius: 4,
		background:   color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff},
		line0Color:   color.RGBA{R: 0xf3, G: 0x8b, B: 0xa8, A: 0xff},
		line1Color:   color.RGBA{R: 0x89, G: 0xb4, B: 0xfa, A: 0xff},
		pointColor:   color.RGBA{R: 0xf9, G: 0xe2, B: 0xaf, A: 0xff},
		labelColor:   color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff},
		label:        true,
	}
}

// WithSize sets the image size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithScale sets the number of pixels per world unit.
// The world origin is always at the image center.
func WithScale(pixelsPerUnit float64) Option {
	return func(o *options) {
		if pixelsPerUnit > 0 {
			o.scale = pixelsPerUnit
		}
	}
}

// WithLineWidth sets the stroke width of both lines in pixels.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithBackground sets the background color.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = color.RGBAModel.Convert(c).(color.RGBA)
	}
}

// WithoutLabel disables the classification caption.
func WithoutLabel() Option {
	return func(o *options) {
		o.label = false
	}
}

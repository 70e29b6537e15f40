// Package plot renders a pair of lines and their intersection into an image.
// It backs the intrdemo command.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/intr"
)

// Render draws line0, line1 and the result of intersecting them.
//
// World coordinates have the origin at the image center with Y pointing up.
// A single intersection point is marked with a filled square.
func Render(line0, line1 intr.Line[float64], opts ...Option) *image.RGBA {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	img := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)

	v := viewport{width: float64(o.width), height: float64(o.height), scale: o.scale}
	z := vector.NewRasterizer(o.width, o.height)

	strokeLine(z, img, v, line0, o.lineWidth, o.line0Color)
	strokeLine(z, img, v, line1, o.lineWidth, o.line1Color)

	r := intr.FindIntersection(line0, line1)
	if r.Kind() == intr.UniquePoint && v.contains(v.toScreen(r.Point)) {
		fillMarker(z, img, v.toScreen(r.Point), o.markerRadius, o.pointColor)
	}
	if o.label {
		drawLabel(img, Caption(r), o.labelColor)
	}
	return img
}

// WritePNG renders the lines and encodes the image as PNG to w.
func WritePNG(w io.Writer, line0, line1 intr.Line[float64], opts ...Option) error {
	return png.Encode(w, Render(line0, line1, opts...))
}

// Caption describes an intersection result in one line of text.
func Caption(r intr.FindResult[float64]) string {
	switch r.Kind() {
	case intr.UniquePoint:
		return fmt.Sprintf("point (%.4g, %.4g) s0=%.4g s1=%.4g",
			r.Point.X, r.Point.Y, r.Line0Parameter[0], r.Line1Parameter[0])
	case intr.Coincident:
		return "coincident"
	default:
		return "no intersection"
	}
}

type viewport struct {
	width, height, scale float64
}

func (v viewport) toScreen(p intr.Point[float64]) intr.Point[float64] {
	return intr.Pt(v.width/2+p.X*v.scale, v.height/2-p.Y*v.scale)
}

func (v viewport) contains(p intr.Point[float64]) bool {
	return p.X >= 0 && p.X <= v.width && p.Y >= 0 && p.Y <= v.height
}

// worldBounds returns the visible world rectangle as xmin, xmax, ymin, ymax.
func (v viewport) worldBounds() (float64, float64, float64, float64) {
	hw := v.width / 2 / v.scale
	hh := v.height / 2 / v.scale
	return -hw, hw, -hh, hh
}

// clip returns the parameter interval of l inside the visible rectangle
// (Liang-Barsky). ok is false if the line misses the rectangle or has a
// zero direction.
func clip(l intr.Line[float64], v viewport) (t0, t1 float64, ok bool) {
	xmin, xmax, ymin, ymax := v.worldBounds()
	o, d := l.Origin, l.Direction
	t0, t1 = math.Inf(-1), math.Inf(1)
	edges := [4]struct{ p, q float64 }{
		{-d.X, o.X - xmin},
		{d.X, xmax - o.X},
		{-d.Y, o.Y - ymin},
		{d.Y, ymax - o.Y},
	}
	for _, e := range edges {
		if e.p == 0 {
			if e.q < 0 {
				return 0, 0, false
			}
			continue
		}
		r := e.q / e.p
		if e.p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
	}
	if math.IsInf(t0, 0) || math.IsInf(t1, 0) || t0 > t1 {
		return 0, 0, false
	}
	return t0, t1, true
}

func strokeLine(z *vector.Rasterizer, dst draw.Image, v viewport, l intr.Line[float64], width float64, c color.RGBA) {
	t0, t1, ok := clip(l, v)
	if !ok {
		return
	}
	a := v.toScreen(l.At(t0))
	b := v.toScreen(l.At(t1))
	n := b.Sub(a).Perp().Normalize().Mul(width / 2)
	if n.IsZero() {
		return
	}

	z.Reset(int(v.width), int(v.height))
	moveTo(z, a.Add(n))
	lineTo(z, b.Add(n))
	lineTo(z, b.Add(n.Neg()))
	lineTo(z, a.Add(n.Neg()))
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func fillMarker(z *vector.Rasterizer, dst draw.Image, p intr.Point[float64], radius float64, c color.RGBA) {
	z.Reset(dst.Bounds().Dx(), dst.Bounds().Dy())
	moveTo(z, p.Add(intr.V2(-radius, -radius)))
	lineTo(z, p.Add(intr.V2(radius, -radius)))
	lineTo(z, p.Add(intr.V2(radius, radius)))
	lineTo(z, p.Add(intr.V2(-radius, radius)))
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func moveTo(z *vector.Rasterizer, p intr.Point[float64]) {
	z.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(z *vector.Rasterizer, p intr.Point[float64]) {
	z.LineTo(float32(p.X), float32(p.Y))
}

func drawLabel(dst draw.Image, s string, c color.RGBA) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(6, 6+face.Ascent),
	}
	d.DrawString(s)
}

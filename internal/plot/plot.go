// Package plot renders fans of rotated vectors to raster images.
//
// Vectors are drawn from the image centre in a y-up frame, so a positive
// rotation turns counterclockwise on screen just as it does in vecmath.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/vector"

	"github.com/gogpu/vecmath"
)

// ErrInvalidConfig is returned when a Config cannot be rendered.
var ErrInvalidConfig = errors.New("plot: invalid config")

// MaxCount is the largest fan Validate accepts.
const MaxCount = 1 << 16

// Config describes a vector fan.
type Config struct {
	Width, Height int

	// Base is the first vector of the fan. Each following vector is the
	// previous one rotated by Step degrees.
	Base  vecmath.Vec2
	Step  float64
	Count int

	Background color.Color
	Stroke     color.Color
	LineWidth  float64

	// Labels draws each vector's angle next to its tip.
	Labels bool
}

// DefaultConfig returns a 12 vector fan on a 400x400 canvas.
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		Base:       vecmath.V2(150, 0),
		Step:       30,
		Count:      12,
		Background: color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff},
		Stroke:     color.RGBA{R: 0xff, G: 0xc8, B: 0x3c, A: 0xff},
		LineWidth:  2,
		Labels:     true,
	}
}

// Validate reports whether c can be rendered.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Count < 0 || c.Count > MaxCount:
		return fmt.Errorf("%w: count %d (max %d)", ErrInvalidConfig, c.Count, MaxCount)
	case !finite(c.Base.X) || !finite(c.Base.Y):
		return fmt.Errorf("%w: base %v", ErrInvalidConfig, c.Base)
	case c.LineWidth <= 0 || !finite(c.LineWidth):
		return fmt.Errorf("%w: line width %v", ErrInvalidConfig, c.LineWidth)
	case !finite(c.Step):
		return fmt.Errorf("%w: step %v", ErrInvalidConfig, c.Step)
	case c.Background == nil || c.Stroke == nil:
		return fmt.Errorf("%w: missing colour", ErrInvalidConfig)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Vectors returns the fan described by c.
func Vectors(c Config) []vecmath.Vec2 {
	vecs := make([]vecmath.Vec2, 0, c.Count)
	v := c.Base
	for range c.Count {
		vecs = append(vecs, v)
		v.RotateInPlace(c.Step)
	}
	return vecs
}

// Render draws the fan described by c.
func Render(c Config) (*image.RGBA, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)

	size := vecmath.V2(float64(c.Width), float64(c.Height))
	origin := size.Scale(0.5)
	stroke := image.NewUniform(c.Stroke)
	z := vector.NewRasterizer(c.Width, c.Height)

	// Clip strokes to the canvas diagonal; the rasterizer works in fixed
	// point and cannot take far-off coordinates.
	reach := size.Length()
	vecs := Vectors(c)
	for i, v := range vecs {
		if v.Length() > reach {
			vecs[i] = vecmath.FromAngle(v.Angle(), reach)
		}
	}

	for _, v := range vecs {
		tip := origin.Add(v.ReflectX())
		z.Reset(c.Width, c.Height)
		line(z, origin, tip, c.LineWidth)
		z.Draw(img, img.Bounds(), stroke, image.Point{})
	}

	if c.Labels {
		d := &font.Drawer{Dst: img, Src: stroke, Face: basicfont.Face7x13}
		for _, v := range vecs {
			label(d, origin, v)
		}
	}

	vecmath.Logger().Debug("plot: rendered fan", "vectors", len(vecs), "width", c.Width, "height", c.Height)
	return img, nil
}

// line adds a quad of the given width covering the segment a-b.
func line(z *vector.Rasterizer, a, b vecmath.Vec2, width float64) {
	n := vecmath.Between(a, b).Normal().Scale(width / 2)
	if n.IsZero() {
		return
	}
	p := [4]vecmath.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	z.MoveTo(float32(p[0].X), float32(p[0].Y))
	for _, q := range p[1:] {
		z.LineTo(float32(q.X), float32(q.Y))
	}
	z.ClosePath()
}

// label writes the angle of v just past its tip.
func label(d *font.Drawer, origin, v vecmath.Vec2) {
	if v.IsZero() {
		return
	}
	text := fmt.Sprintf("%.0f", v.Angle())
	pad := v.WithLength(v.Length() + 12).ReflectX()
	at := origin.Add(pad)

	// Centre the text on the anchor. Face7x13 has a 13px line with an
	// ascent of 11.
	at.X -= float64(d.MeasureString(text).Round()) / 2
	at.Y += 11.0 / 2
	d.Dot = at.Fixed()
	d.DrawString(text)
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("plot: encode png: %w", err)
	}
	return nil
}

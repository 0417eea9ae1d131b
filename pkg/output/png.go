package output

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// PNGWriter collects pixels into an RGBA image and encodes it as PNG on End
type PNGWriter struct {
	w    io.Writer
	img  *image.RGBA
	next int // index of the next pixel in raster order
}

// NewPNGWriter creates a PNG writer on w
func NewPNGWriter(w io.Writer) *PNGWriter {
	return &PNGWriter{w: w}
}

// Begin allocates the image buffer
func (p *PNGWriter) Begin(width, height int) error {
	p.img = image.NewRGBA(image.Rect(0, 0, width, height))
	p.next = 0
	return nil
}

// WritePixel stores the next pixel
func (p *PNGWriter) WritePixel(c core.Vec3) error {
	if p.img == nil {
		return ErrIncompleteImage
	}
	width := p.img.Bounds().Dx()
	if p.next >= width*p.img.Bounds().Dy() {
		return ErrIncompleteImage
	}

	r, g, b := ToRGB(c)
	p.img.SetRGBA(p.next%width, p.next/width, color.RGBA{R: r, G: g, B: b, A: 255})
	p.next++
	return nil
}

// End encodes the image
func (p *PNGWriter) End() error {
	if p.img == nil || p.next != p.img.Bounds().Dx()*p.img.Bounds().Dy() {
		return ErrIncompleteImage
	}
	return png.Encode(p.w, p.img)
}

// Image returns the collected image
func (p *PNGWriter) Image() *image.RGBA {
	return p.img
}

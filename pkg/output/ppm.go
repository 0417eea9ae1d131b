package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// PPMWriter encodes the plain text "P3" portable pixmap format
type PPMWriter struct {
	out     *bufio.Writer
	pending int // pixels still expected
}

// NewPPMWriter creates a PPM writer on w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{out: bufio.NewWriter(w)}
}

// Begin writes the header
func (p *PPMWriter) Begin(width, height int) error {
	p.pending = width * height
	_, err := fmt.Fprintf(p.out, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one "R G B" line
func (p *PPMWriter) WritePixel(c core.Vec3) error {
	r, g, b := ToRGB(c)
	p.pending--
	_, err := fmt.Fprintf(p.out, "%d %d %d\n", r, g, b)
	return err
}

// End flushes buffered output
func (p *PPMWriter) End() error {
	if err := p.out.Flush(); err != nil {
		return err
	}
	if p.pending != 0 {
		return ErrIncompleteImage
	}
	return nil
}

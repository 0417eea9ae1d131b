package output

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ErrIncompleteImage is returned by End when fewer or more pixels were written than announced by Begin
var ErrIncompleteImage = errors.New("output: pixel count does not match image size")

// PixelWriter receives an image in raster order:
// rows top-to-bottom, columns left-to-right.
type PixelWriter interface {
	// Begin announces the image dimensions before any pixel is written
	Begin(width, height int) error
	// WritePixel consumes one linear color
	WritePixel(c core.Vec3) error
	// End flushes the image
	End() error
}

// NewWriterForPath picks an encoder from the file extension: PNG for .png, plain PPM otherwise
func NewWriterForPath(path string, w io.Writer) PixelWriter {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return NewPNGWriter(w)
	}
	return NewPPMWriter(w)
}

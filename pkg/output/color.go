package output

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// intensity is the range channel values are clamped to before quantization
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma applies gamma 2 correction; non-positive values map to 0
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ToByte maps a channel value in [0,1] to [0,255] by truncation
func ToByte(value float64) uint8 {
	return uint8(256 * intensity.Clamp(value))
}

// ToRGB gamma corrects and quantizes a linear color
func ToRGB(c core.Vec3) (r, g, b uint8) {
	return ToByte(LinearToGamma(c.X)), ToByte(LinearToGamma(c.Y)), ToByte(LinearToGamma(c.Z))
}

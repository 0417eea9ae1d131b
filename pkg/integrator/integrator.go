package integrator

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the color carried back along ray from the world
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
}

// Background supplies the color of rays that escape the scene
type Background interface {
	Evaluate(ray core.Ray) core.Vec3
}

// SkyGradient blends vertically between Bottom and Top on the ray direction
type SkyGradient struct {
	Bottom core.Vec3 // Color looking straight down
	Top    core.Vec3 // Color looking straight up
}

// DefaultSky returns the white to sky-blue gradient
func DefaultSky() SkyGradient {
	return SkyGradient{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Evaluate returns the gradient color for the ray's direction
func (s SkyGradient) Evaluate(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	// Map Y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)
	return s.Bottom.Lerp(s.Top, a)
}

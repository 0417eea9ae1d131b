package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene pairs a world with the camera it is meant to be viewed through
type Scene struct {
	Name        string
	Description string
	World       *geometry.HittableList
	Camera      renderer.CameraConfig
}

// ObjectCount returns the number of top-level objects in the world
func (s *Scene) ObjectCount() int {
	return s.World.Len()
}

// sceneCamera returns the camera settings most built-in scenes start from
func sceneCamera() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.AspectRatio = 16.0 / 9.0
	config.ImageWidth = 400
	config.SamplesPerPixel = 100
	config.MaxDepth = 50
	return config
}

package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// NewTwoSpheresScene creates a diffuse sphere resting on a huge diffuse
// ground sphere. At one sample per pixel it is cheap enough to use as a
// regression render.
func NewTwoSpheresScene(seed int64) (*Scene, error) {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	camera := sceneCamera()
	camera.SamplesPerPixel = 1

	return &Scene{
		Name:        "two-spheres",
		Description: "Two diffuse spheres under a sky gradient",
		World: geometry.NewHittableList(
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
		),
		Camera: camera,
	}, nil
}

// NewMaterialsScene creates a blue diffuse sphere flanked by a lightly fuzzed
// silver metal sphere and a fully fuzzed gold one
func NewMaterialsScene(seed int64) (*Scene, error) {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	return &Scene{
		Name:        "materials",
		Description: "Diffuse sphere between two fuzzy metal spheres",
		World: geometry.NewHittableList(
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
			geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
			geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left),
			geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right),
		),
		Camera: sceneCamera(),
	}, nil
}

// NewGlassScene replaces the left sphere of the materials scene with a glass
// shell. The air bubble inside uses the inverse index so rays leaving the
// glass bend back out. The camera is pulled back with a narrow field of view
// and focused on the center sphere.
func NewGlassScene(seed int64) (*Scene, error) {
	glass, err := material.NewDielectric(1.50)
	if err != nil {
		return nil, err
	}
	bubble, err := material.NewDielectric(1.00 / 1.50)
	if err != nil {
		return nil, err
	}

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	camera := sceneCamera()
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(-2, 2, 1)
	camera.LookAt = core.NewVec3(0, 0, -1)
	camera.VUp = core.NewVec3(0, 1, 0)
	camera.DefocusAngle = 10.0
	camera.FocusDist = 3.4

	return &Scene{
		Name:        "glass",
		Description: "Hollow glass sphere with defocus blur",
		World: geometry.NewHittableList(
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
			geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
			geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
			geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble),
			geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right),
		),
		Camera: camera,
	}, nil
}

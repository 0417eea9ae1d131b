package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

const (
	coverGridMin   = -11
	coverGridMax   = 11
	smallRadius    = 0.2
	largeRadius    = 1.0
	clearanceRange = 0.9
)

// Small spheres must keep this far from the front large sphere
var coverClearPoint = core.NewVec3(4, 0.2, 0)

// NewCoverScene creates the random sphere field: a grid of small spheres with
// jittered positions and random materials around three large spheres. The
// layout is fully determined by seed.
func NewCoverScene(seed int64) (*Scene, error) {
	sampler := core.NewSeededSampler(seed)
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	glass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}

	for a := coverGridMin; a < coverGridMax; a++ {
		for b := coverGridMin; b < coverGridMax; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				smallRadius,
				float64(b)+0.9*sampler.Get1D(),
			)
			if center.Subtract(coverClearPoint).Length() <= clearanceRange {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(sampler, 0, 1).MultiplyVec(randomColor(sampler, 0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := randomColor(sampler, 0.5, 1)
				mat = material.NewMetal(albedo, randomRange(sampler, 0, 0.5))
			default:
				mat = glass
			}
			world.Add(geometry.NewSphere(center, smallRadius, mat))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), largeRadius, glass))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), largeRadius, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), largeRadius, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	camera := sceneCamera()
	camera.ImageWidth = 1200
	camera.SamplesPerPixel = 500
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)
	camera.VUp = core.NewVec3(0, 1, 0)
	camera.DefocusAngle = 0.6
	camera.FocusDist = 10.0

	return &Scene{
		Name:        "cover",
		Description: "Random field of small spheres around three large ones",
		World:       world,
		Camera:      camera,
	}, nil
}

func randomRange(sampler core.Sampler, min, max float64) float64 {
	return min + (max-min)*sampler.Get1D()
}

func randomColor(sampler core.Sampler, min, max float64) core.Vec3 {
	s := sampler.Get3D()
	return core.NewVec3(
		min+(max-min)*s.X,
		min+(max-min)*s.Y,
		min+(max-min)*s.Z,
	)
}

package material

import "github.com/df07/go-weekend-raytracer/pkg/core"

// stubSampler returns the same values on every call
type stubSampler struct {
	v1 float64
	v2 core.Vec2
	v3 core.Vec3
}

func (s stubSampler) Get1D() float64   { return s.v1 }
func (s stubSampler) Get2D() core.Vec2 { return s.v2 }
func (s stubSampler) Get3D() core.Vec3 { return s.v3 }

// downSampler makes core.RandomUnitVector return (0, 0, -1)
var downSampler = stubSampler{v1: 0.5, v2: core.NewVec2(0.5, 0.5), v3: core.NewVec3(0.5, 0.5, 0)}

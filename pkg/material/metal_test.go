package material

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewSeededSampler(42)
	normal := core.NewVec3(0, 0, 1)
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}

	incoming := []core.Vec3{
		core.NewVec3(0, -1, -1),
		core.NewVec3(3, 1, -0.5),
		core.NewVec3(0, 0, -2),
	}

	for _, dir := range incoming {
		rayIn := core.NewRay(dir.Negate(), dir)
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("Metal should scatter for incoming %v", dir)
		}

		in := dir.Normalize()
		out := scatter.Scattered.Direction.Normalize()

		// Angle of incidence equals angle of reflection
		if math.Abs(in.Negate().Dot(normal)-out.Dot(normal)) > 1e-10 {
			t.Errorf("Mirror law violated: in %v, out %v", in, out)
		}
		// Tangential component is preserved
		inTangent := in.Subtract(normal.Multiply(in.Dot(normal)))
		outTangent := out.Subtract(normal.Multiply(out.Dot(normal)))
		if inTangent.Subtract(outTangent).Length() > 1e-10 {
			t.Errorf("Tangential component changed: in %v, out %v", inTangent, outTangent)
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
	}
}

func TestMetal_FuzzedBelowSurfaceIsAbsorbed(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}

	// Grazing ray: the mirror direction barely leaves the surface and the
	// fuzz sample (0, 0, -1) pushes it underneath
	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01))
	if _, didScatter := metal.Scatter(rayIn, hit, downSampler); didScatter {
		t.Error("Expected fuzzed reflection below the surface to be absorbed")
	}
}

func TestMetal_FuzzyReflectionStaysNearMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	sampler := core.NewSeededSampler(42)
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 200; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("Normal-incidence reflection with fuzz 0.3 should never be absorbed")
		}
		// Unnormalized direction is mirror + fuzz * unit vector
		deviation := scatter.Scattered.Direction.Subtract(core.NewVec3(0, 0, 1)).Length()
		if math.Abs(deviation-0.3) > 1e-9 {
			t.Fatalf("Expected perturbation of length 0.3, got %f", deviation)
		}
	}
}

package core

import (
	"math"
	"testing"
)

func TestRandomUnitVector_UnitLength(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Sample %d: expected unit length, got %f (%v)", i, v.Length(), v)
		}
	}
}

func TestRandomUnitVector_Uniform(t *testing.T) {
	sampler := NewSeededSampler(7)
	const numSamples = 20000

	// The mean of a uniform distribution on the sphere is the origin
	sum := Vec3{}
	for i := 0; i < numSamples; i++ {
		sum = sum.Add(RandomUnitVector(sampler))
	}
	mean := sum.Multiply(1.0 / numSamples)

	if mean.Length() > 0.03 {
		t.Errorf("Expected mean near origin, got %v", mean)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample should lie on the XY plane, got %v", p)
		}
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Disk sample outside unit disk: %v", p)
		}
	}
}

func TestSampleSquare(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := SampleSquare(sampler)
		if p.X < -0.5 || p.X >= 0.5 || p.Y < -0.5 || p.Y >= 0.5 || p.Z != 0 {
			t.Fatalf("Square sample out of range: %v", p)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(1234)
	b := NewSeededSampler(1234)

	for i := 0; i < 100; i++ {
		if x, y := a.Get1D(), b.Get1D(); x != y {
			t.Fatalf("Sample %d differs: %f vs %f", i, x, y)
		}
	}
}

package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

func TestHittableList_Empty(t *testing.T) {
	world := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := world.Hit(ray, defaultRange); isHit || hit != nil {
		t.Errorf("Empty list should never report a hit, got %+v", hit)
	}
}

func TestHittableList_ClosestHitWins(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 1, 0))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name    string
		objects []Hittable
	}{
		{
			name: "near first",
			objects: []Hittable{
				NewSphere(core.NewVec3(0, 0, -2), 0.5, near),
				NewSphere(core.NewVec3(0, 0, -5), 0.5, far),
			},
		},
		{
			name: "far first",
			objects: []Hittable{
				NewSphere(core.NewVec3(0, 0, -5), 0.5, far),
				NewSphere(core.NewVec3(0, 0, -2), 0.5, near),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := NewHittableList(tt.objects...)
			hit, isHit := world.Hit(ray, defaultRange)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected closest t=1.5, got %f", hit.T)
			}
			if hit.Material != near {
				t.Errorf("Expected hit on nearer sphere")
			}
		})
	}
}

func TestHittableList_ClosestHitInvariant(t *testing.T) {
	sampler := core.NewSeededSampler(99)

	for n := 0; n <= 12; n++ {
		world := NewHittableList()
		for i := 0; i < n; i++ {
			center := core.NewVec3(4*sampler.Get1D()-2, 4*sampler.Get1D()-2, -1-6*sampler.Get1D())
			world.Add(NewSphere(center, 0.2+0.8*sampler.Get1D(), nil))
		}

		for k := 0; k < 200; k++ {
			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(sampler.Get1D()-0.5, sampler.Get1D()-0.5, -1))
			hit, isHit := world.Hit(ray, defaultRange)

			for _, object := range world.Objects {
				candidate, ok := object.Hit(ray, defaultRange)
				if !ok {
					continue
				}
				if !isHit {
					t.Fatalf("n=%d: member hit at t=%f but list reported no hit", n, candidate.T)
				}
				if hit.T > candidate.T {
					t.Fatalf("n=%d: reported t=%f but member has closer t=%f", n, hit.T, candidate.T)
				}
			}
		}
	}
}

func TestHittableList_AddClearLen(t *testing.T) {
	world := NewHittableList()
	world.Add(NewSphere(core.NewVec3(0, 0, -1), 0.5, nil))
	world.Add(NewSphere(core.NewVec3(0, -100.5, -1), 100, nil))

	if world.Len() != 2 {
		t.Errorf("Expected 2 objects, got %d", world.Len())
	}

	world.Clear()
	if world.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d", world.Len())
	}
}

func TestHittableList_Nested(t *testing.T) {
	inner := NewHittableList(NewSphere(core.NewVec3(0, 0, -2), 0.5, nil))
	outer := NewHittableList(inner, NewSphere(core.NewVec3(0, 0, -4), 0.5, nil))

	hit, isHit := outer.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), defaultRange)
	if !isHit || math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected nested hit at t=1.5, got hit=%t", isHit)
	}
}

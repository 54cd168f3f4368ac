package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-terminal-raytracer/pkg/core"
)

func TestSphere_Intersect_RadiusDistance(t *testing.T) {
	for _, radius := range []float64{0.25, 0.5, 1, 3} {
		sphere := NewSphere(core.NewVec3(0, 0, 0), radius)
		ray := core.NewRay(core.NewVec3(0, 0, -2*radius), core.NewVec3(0, 0, 1))

		hit, ok := sphere.Intersect(ray)
		if !ok {
			t.Fatalf("radius %v: expected hit, got miss", radius)
		}
		if math.Abs(hit.Distance-radius) > 1e-9 {
			t.Errorf("radius %v: expected distance %v, got %v", radius, radius, hit.Distance)
		}
		// Normal points back toward the ray origin
		if !hit.Normal.Equals(core.NewVec3(0, 0, -1), 1e-9) {
			t.Errorf("radius %v: expected normal (0,0,-1), got %v", radius, hit.Normal)
		}
	}
}

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
		shouldHit    bool
		expectedT    float64
	}{
		{
			name:         "Head-on hit",
			rayOrigin:    core.NewVec3(0, 0, 3),
			rayDirection: core.NewVec3(0, 0, -1),
			shouldHit:    true,
			expectedT:    2,
		},
		{
			name:         "Offset hit",
			rayOrigin:    core.NewVec3(0.6, 0, -5),
			rayDirection: core.NewVec3(0, 0, 1),
			shouldHit:    true,
			expectedT:    5 - 0.8,
		},
		{
			name:         "Miss beside the sphere",
			rayOrigin:    core.NewVec3(2, 0, -5),
			rayDirection: core.NewVec3(0, 0, 1),
			shouldHit:    false,
		},
		{
			name:         "Sphere behind the origin",
			rayOrigin:    core.NewVec3(0, 0, 3),
			rayDirection: core.NewVec3(0, 0, 1),
			shouldHit:    false,
		},
		{
			// Origin inside, center ahead: the near root lies behind the origin
			name:         "Origin inside sphere",
			rayOrigin:    core.NewVec3(0, 0, -0.5),
			rayDirection: core.NewVec3(0, 0, 1),
			shouldHit:    true,
			expectedT:    -0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Intersect(core.NewRay(tt.rayOrigin, tt.rayDirection))
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.Distance)
			}
			if math.Abs(hit.Normal.Length()-1) > 1e-9 {
				t.Errorf("Expected unit normal, got %v", hit.Normal)
			}
		})
	}
}

func TestIntersection_HitPosition(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit := Intersection{Distance: 2, Normal: core.NewVec3(-1, 0, 0)}

	expected := core.NewVec3(2-core.Epsilon, 0, 0)
	if got := hit.HitPosition(ray); !got.Equals(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

package core

import (
	"math"
	"testing"
)

// fixedSampler replays a fixed list of 3D samples
type fixedSampler struct {
	samples []Vec3
	next    int
}

func (f *fixedSampler) Get1D() float64 { return f.Get3D().X }

func (f *fixedSampler) Get3D() Vec3 {
	s := f.samples[f.next%len(f.samples)]
	f.next++
	return s
}

func TestRandomUnit_IsNormalized(t *testing.T) {
	sampler := NewSeededSampler(42, 0)
	for i := 0; i < 1000; i++ {
		v := RandomUnit(sampler)
		if v.LengthSquared() == 0 {
			continue
		}
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Sample %d not normalized: %v (length %f)", i, v, v.Length())
		}
	}
}

func TestRandomHemisphere_RejectsWrongSide(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	// First two samples map below the plane, the third above it
	sampler := &fixedSampler{samples: []Vec3{
		NewVec3(0.5, 0.0, 0.5),
		NewVec3(0.9, 0.4, 0.1),
		NewVec3(0.5, 1.0, 0.5),
	}}

	v := RandomHemisphere(normal, sampler)

	if sampler.next != 3 {
		t.Errorf("Expected 3 draws, got %d", sampler.next)
	}
	if !v.Equals(NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected (0,1,0), got %v", v)
	}
}

func TestRandomHemisphere_AlwaysOnNormalSide(t *testing.T) {
	sampler := NewSeededSampler(7, 3)
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
	}
	for _, n := range normals {
		for i := 0; i < 200; i++ {
			if d := RandomHemisphere(n, sampler).Dot(n); d <= 0 {
				t.Fatalf("Sample on wrong side of %v: dot=%f", n, d)
			}
		}
	}
}

func TestDiffuseDirection_StaysNearMirror(t *testing.T) {
	sampler := NewSeededSampler(1, 1)
	incident := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)
	mirror := incident.Reflect(normal)

	for i := 0; i < 100; i++ {
		d := DiffuseDirection(incident, normal, 0.1, sampler)
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Direction not normalized: %v", d)
		}
		// A bias of 0.1 tilts the mirror direction by at most ~5.7 degrees
		if d.Dot(mirror) < math.Cos(0.11) {
			t.Errorf("Direction %v strays too far from mirror %v", d, mirror)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99, 12)
	b := NewSeededSampler(99, 12)
	for i := 0; i < 10; i++ {
		if a.Get3D() != b.Get3D() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

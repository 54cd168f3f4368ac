package core

import (
	"math/rand/v2"
)

// Sampler provides random numbers for the diffuse bounce.
// Can be swapped out for deterministic testing.
type Sampler interface {
	Get1D() float64
	Get3D() Vec3
}

// RandomSampler wraps a Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler on a PCG stream. Streams with different
// sequence numbers are independent, which lets every pixel own one.
func NewSeededSampler(seed, sequence uint64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewPCG(seed, sequence)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomUnit maps a sample from the unit cube onto the unit sphere.
// The result is not uniformly distributed over the sphere.
func RandomUnit(sampler Sampler) Vec3 {
	return sampler.Get3D().Multiply(2).AddScalar(-1).Normalize()
}

// RandomHemisphere draws unit vectors until one lies strictly on the normal's side
func RandomHemisphere(normal Vec3, sampler Sampler) Vec3 {
	for {
		candidate := RandomUnit(sampler)
		if candidate.Dot(normal) > 0 {
			return candidate
		}
	}
}

// DiffuseDirection reflects incident about normal and perturbs the mirror
// direction by a hemisphere sample scaled by bias.
func DiffuseDirection(incident, normal Vec3, bias float64, sampler Sampler) Vec3 {
	perturbation := RandomHemisphere(normal, sampler).Multiply(bias)
	return incident.Reflect(normal).Add(perturbation).Normalize()
}

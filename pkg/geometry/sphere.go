package geometry

import (
	"math"

	"github.com/df07/go-terminal-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Intersect tests the ray against the sphere using the closest-approach form of the
// quadratic. Spheres whose center lies behind the ray origin are never hit.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	originToCenter := s.Center.Subtract(ray.Origin)

	// Distance along the ray to the midpoint between the two roots
	originToMid := originToCenter.Dot(ray.Direction)
	if originToMid < 0 {
		return Intersection{}, false
	}

	// Squared distance from the center to that midpoint
	centerToMidSq := originToCenter.LengthSquared() - originToMid*originToMid
	radiusSq := s.Radius * s.Radius
	if centerToMidSq < 0 || centerToMidSq > radiusSq {
		return Intersection{}, false
	}

	// Near root
	distance := originToMid - math.Sqrt(radiusSq-centerToMidSq)
	point := ray.At(distance)

	return Intersection{
		Distance: distance,
		Normal:   point.Subtract(s.Center).Normalize(),
	}, true
}

package geometry

import (
	"github.com/df07/go-terminal-raytracer/pkg/core"
)

// Box represents an axis-aligned box. It doubles as the bounding volume of a mesh.
type Box struct {
	Min core.Vec3 // Minimum corner
	Max core.Vec3 // Maximum corner
}

// NewBox creates a new box from min and max corners
func NewBox(min, max core.Vec3) *Box {
	return &Box{Min: min, Max: max}
}

// NewCenteredBox creates a cube around center whose faces are halfExtent away from it
func NewCenteredBox(center core.Vec3, halfExtent float64) *Box {
	return &Box{
		Min: center.AddScalar(-halfExtent),
		Max: center.AddScalar(halfExtent),
	}
}

// Union returns a box that bounds both this box and another
func (b Box) Union(other Box) Box {
	return Box{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Intersect tests the ray against the box with the slab method.
//
// Zero direction components are not special-cased: their reciprocal is an infinity
// and the per-axis interval becomes (-Inf, +Inf) or empty, which the min/max
// reduction handles on its own.
func (b *Box) Intersect(ray core.Ray) (Intersection, bool) {
	// Time each component needs to cover one unit of distance
	delta := ray.Direction.Reciprocal()
	timeToMin := delta.MultiplyVec(b.Min.Subtract(ray.Origin))
	timeToMax := delta.MultiplyVec(b.Max.Subtract(ray.Origin))
	fastest := timeToMin.Min(timeToMax)
	slowest := timeToMin.Max(timeToMax)

	// Entry is on the last slab plane crossed, exit on the first one left
	near := fastest.MaxComponent()
	far := slowest.MinComponent()
	if !(far > 0 && near < far) {
		return Intersection{}, false
	}

	return Intersection{
		Distance: near - core.Epsilon,
		Normal:   ray.Direction.Signum().Negate().MultiplyVec(fastest.Step(near)),
	}, true
}

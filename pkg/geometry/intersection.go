package geometry

import "github.com/df07/go-terminal-raytracer/pkg/core"

// Intersection is the nearest point where a ray meets a surface
type Intersection struct {
	Distance float64   // Distance along the ray
	Normal   core.Vec3 // Unit surface normal at the hit
}

// HitPosition returns the hit point pulled back toward the ray origin by core.Epsilon,
// so rays spawned from it do not immediately re-hit the same surface.
func (i Intersection) HitPosition(ray core.Ray) core.Vec3 {
	return ray.At(i.Distance - core.Epsilon)
}

// Closer reports whether i lies strictly nearer than other. Equal distances are not closer,
// so the first of several equidistant hits is kept by callers that scan in order.
func (i Intersection) Closer(other Intersection) bool {
	return i.Distance < other.Distance
}

// Intersectable is anything a ray can be tested against
type Intersectable interface {
	Intersect(ray core.Ray) (Intersection, bool)
}

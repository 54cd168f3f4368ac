package geometry

import (
	"math"

	"github.com/df07/go-terminal-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached face normal
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{
		V0: v0,
		V1: v1,
		V2: v2,
	}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return t
}

// Intersect tests the ray against the triangle using the Möller-Trumbore algorithm.
// The cached face normal is returned for every hit, giving flat shading.
func (t *Triangle) Intersect(ray core.Ray) (Intersection, bool) {
	u, v, distance, ok := t.barycentric(ray)
	if !ok || u < 0 || u > 1 || v < 0 || u+v > 1 || !(distance > core.Epsilon) {
		return Intersection{}, false
	}
	return Intersection{Distance: distance, Normal: t.normal}, true
}

// barycentric returns the (u, v) coordinates of the ray's crossing with the triangle's
// plane and the distance to it. ok is false when the ray is parallel to the plane.
func (t *Triangle) barycentric(ray core.Ray) (u, v, distance float64, ok bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if math.Abs(det) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u = f * s.Dot(h)

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)
	distance = f * edge2.Dot(q)
	return u, v, distance, true
}

// BoundingBox returns the axis-aligned bounding box of the triangle
func (t *Triangle) BoundingBox() Box {
	return Box{
		Min: t.V0.Min(t.V1).Min(t.V2),
		Max: t.V0.Max(t.V1).Max(t.V2),
	}
}

// Normal returns the triangle's face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

package geometry

import (
	"fmt"

	"github.com/df07/go-terminal-raytracer/pkg/core"
)

// TriangleMesh is a flat list of triangles culled by a single bounding box
type TriangleMesh struct {
	triangles []*Triangle
	bbox      Box
}

// NewTriangleMesh creates a mesh from triangles and precomputes its bounding box.
// An empty mesh gets a degenerate box at the origin.
func NewTriangleMesh(triangles []*Triangle) *TriangleMesh {
	var bbox Box
	switch len(triangles) {
	case 0:
	case 1:
		bbox = triangles[0].BoundingBox()
	default:
		bbox = triangles[0].BoundingBox()
		for _, triangle := range triangles[1:] {
			bbox = bbox.Union(triangle.BoundingBox())
		}
	}

	return &TriangleMesh{
		triangles: triangles,
		bbox:      bbox,
	}
}

// NewTriangleMeshFromIndices creates a mesh from vertices and zero-based face indices
// (each group of 3 indices forms a triangle). Panics on malformed input.
func NewTriangleMeshFromIndices(vertices []core.Vec3, faces []int) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}

	triangles := make([]*Triangle, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, index := range [3]int{i0, i1, i2} {
			if index < 0 || index >= len(vertices) {
				panic(fmt.Sprintf("Face index %d out of bounds (%d vertices)", index, len(vertices)))
			}
		}
		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2]))
	}

	return NewTriangleMesh(triangles)
}

// Intersect returns the nearest triangle hit. The bounding box is tested first and a
// miss skips the scan entirely. Equidistant hits keep the first triangle found.
func (tm *TriangleMesh) Intersect(ray core.Ray) (Intersection, bool) {
	if _, ok := tm.bbox.Intersect(ray); !ok {
		return Intersection{}, false
	}

	var closest Intersection
	found := false
	for _, triangle := range tm.triangles {
		hit, ok := triangle.Intersect(ray)
		if !ok {
			continue
		}
		if !found || hit.Closer(closest) {
			closest = hit
			found = true
		}
	}

	return closest, found
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() Box {
	return tm.bbox
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}

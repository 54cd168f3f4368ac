package scene

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/df07/go-terminal-raytracer/pkg/core"
	"github.com/df07/go-terminal-raytracer/pkg/geometry"
	"github.com/df07/go-terminal-raytracer/pkg/loaders"
)

//go:embed assets/icosphere.obj
var defaultMeshData []byte

// Colors of the default scene objects
var (
	SphereColor = core.NewVec3(1, 0, 0)
	MeshColor   = core.NewVec3(0, 1, 0)
	BoxColor    = core.NewVec3(0, 0, 1)
)

// DefaultMesh parses the mesh bundled with the binary
func DefaultMesh() (*geometry.TriangleMesh, error) {
	data, err := loaders.ParseOBJ(bytes.NewReader(defaultMeshData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in mesh: %w", err)
	}
	return data.Mesh(), nil
}

// NewDefaultScene creates the demo scene around the bundled mesh
func NewDefaultScene() (*Scene, error) {
	mesh, err := DefaultMesh()
	if err != nil {
		return nil, err
	}
	return NewSceneWithMesh(mesh), nil
}

// NewSceneWithMesh creates the demo scene: a red sphere on the left, the mesh in the
// middle and a blue box on the right.
func NewSceneWithMesh(mesh *geometry.TriangleMesh) *Scene {
	s := NewScene()

	s.Spawn(Object{
		Color: SphereColor,
		Shape: geometry.NewSphere(core.NewVec3(-1, -1, 0), 0.5),
	})
	s.Spawn(Object{
		Color: MeshColor,
		Shape: mesh,
	})
	s.Spawn(Object{
		Color: BoxColor,
		Shape: geometry.NewCenteredBox(core.NewVec3(1, -1, 0), 1.0/3.0),
	})

	return s
}

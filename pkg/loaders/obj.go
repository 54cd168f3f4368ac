package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-terminal-raytracer/pkg/core"
	"github.com/df07/go-terminal-raytracer/pkg/geometry"
)

// OBJData contains the raw data loaded from a mesh file
type OBJData struct {
	Vertices []core.Vec3 // Vertex positions in file order
	Faces    []int       // Zero-based triangle indices (3 per triangle)
}

// TriangleCount returns the number of faces read
func (d *OBJData) TriangleCount() int {
	return len(d.Faces) / 3
}

// Mesh builds a triangle mesh from the loaded data
func (d *OBJData) Mesh() *geometry.TriangleMesh {
	return geometry.NewTriangleMeshFromIndices(d.Vertices, d.Faces)
}

// LoadOBJ loads a mesh file from disk
func LoadOBJ(filename string, logger core.Logger) (*OBJData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	logger.Printf("Loaded mesh %s: %d vertices, %d triangles in %v\n",
		filename, len(data.Vertices), data.TriangleCount(), time.Since(startTime))

	return data, nil
}

// ParseOBJ reads the subset of the OBJ format made of two record kinds:
//
//	v <x> <y> <z>   vertex position
//	f <i> <j> <k>   triangle of 1-based vertex indices
//
// Blank lines are skipped. Any other record is an error. Face indices are resolved
// once the whole input has been read, so faces may precede the vertices they use.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vertex, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			data.Vertices = append(data.Vertices, vertex)
		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			data.Faces = append(data.Faces, face[:]...)
		default:
			return nil, fmt.Errorf("line %d: unsupported record %q", lineNumber, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mesh data: %w", err)
	}

	for i, index := range data.Faces {
		if index < 0 || index >= len(data.Vertices) {
			return nil, fmt.Errorf("face %d references vertex %d, but only %d vertices exist",
				i/3+1, index+1, len(data.Vertices))
		}
	}

	return data, nil
}

func parseVertex(values []string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(values))
	}
	var coords [3]float64
	for i, value := range values {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid vertex coordinate %q: %w", value, err)
		}
		coords[i] = f
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

func parseFace(values []string) ([3]int, error) {
	var face [3]int
	if len(values) != 3 {
		return face, fmt.Errorf("face needs 3 vertex indices, got %d", len(values))
	}
	for i, value := range values {
		index, err := strconv.Atoi(value)
		if err != nil {
			return face, fmt.Errorf("invalid face index %q: %w", value, err)
		}
		if index < 1 {
			return face, fmt.Errorf("face index %d is not 1-based", index)
		}
		face[i] = index - 1
	}
	return face, nil
}

package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MeshInfo describes a mesh file found on disk
type MeshInfo struct {
	Name        string // File name without extension
	DisplayName string // Title-cased name
	FilePath    string
}

// MeshDirs lists the directories searched for mesh files, in order
var MeshDirs = []string{"meshes", "../meshes"}

// ListMeshes scans the first existing mesh directory and returns its .obj files
func ListMeshes() ([]MeshInfo, error) {
	var meshDir string
	for _, path := range MeshDirs {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			meshDir = path
			break
		}
	}

	if meshDir == "" {
		return []MeshInfo{}, nil
	}

	return listMeshesIn(meshDir)
}

func listMeshesIn(dir string) ([]MeshInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.obj"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan mesh directory: %w", err)
	}

	meshes := make([]MeshInfo, 0, len(files))
	for _, filePath := range files {
		name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		meshes = append(meshes, MeshInfo{
			Name:        name,
			DisplayName: titleCase(name),
			FilePath:    filePath,
		})
	}

	sort.Slice(meshes, func(i, j int) bool {
		return meshes[i].Name < meshes[j].Name
	})

	return meshes, nil
}

// ResolveMesh maps a mesh argument to a file path. An existing file is used as is,
// otherwise the argument is looked up by name among the discovered meshes.
func ResolveMesh(arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}

	meshes, err := ListMeshes()
	if err != nil {
		return "", err
	}
	for _, mesh := range meshes {
		if mesh.Name == arg {
			return mesh.FilePath, nil
		}
	}

	names := make([]string, len(meshes))
	for i, mesh := range meshes {
		names[i] = mesh.Name
	}
	return "", fmt.Errorf("mesh %q not found (available: %s)", arg, strings.Join(names, ", "))
}

// titleCase converts a filename-style string to title case
// e.g., "low-poly_bunny" -> "Low Poly Bunny"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}

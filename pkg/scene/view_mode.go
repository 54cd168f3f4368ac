package scene

import "fmt"

// ViewMode selects what a traced ray's color encodes
type ViewMode int

const (
	ViewColor      ViewMode = iota // Shaded color with sky and shadows
	ViewNormal                     // Surface normal of the primary hit
	ViewDepth                      // Distance of the primary hit
	ViewComplexity                 // Heat map of rays spent per pixel
)

// ViewModes lists every view mode in key order
var ViewModes = []ViewMode{ViewColor, ViewNormal, ViewDepth, ViewComplexity}

func (m ViewMode) String() string {
	switch m {
	case ViewColor:
		return "color"
	case ViewNormal:
		return "normal"
	case ViewDepth:
		return "depth"
	case ViewComplexity:
		return "complexity"
	}
	return fmt.Sprintf("ViewMode(%d)", int(m))
}

// ParseViewMode resolves a view mode by name
func ParseViewMode(name string) (ViewMode, error) {
	for _, m := range ViewModes {
		if m.String() == name {
			return m, nil
		}
	}
	return ViewColor, fmt.Errorf("unknown view mode %q", name)
}

package scene

import (
	"github.com/df07/go-terminal-raytracer/pkg/core"
	"github.com/df07/go-terminal-raytracer/pkg/palette"
)

// Sky is the directional sun light and the gradient backdrop behind the scene
type Sky struct {
	SunDirection core.Vec3 // Unit direction the sunlight travels in
}

// DefaultSky returns a sun shining down diagonally from (+X, +Y, +Z)
func DefaultSky() Sky {
	return Sky{SunDirection: core.Splat(-0.5).Normalize()}
}

// Color returns the backdrop seen along direction. Looking straight at the sun maps to
// the end of the sky palette, looking away from it to the start.
func (s Sky) Color(direction core.Vec3) core.Vec3 {
	ratio := 0.5*s.SunDirection.Dot(direction.Negate()) + 0.5
	// Unit vectors can produce dot products a rounding error outside [-1, 1]
	ratio = max(0, min(1, ratio))
	return palette.Sky.Color(ratio)
}

// Package palette provides fixed color gradients sampled by position.
package palette

import (
	"fmt"
	"math"

	"github.com/df07/go-terminal-raytracer/pkg/core"
)

// Palette is an ordered list of gradient control colors
type Palette struct {
	colors []core.Vec3
}

// New creates a palette from control colors. Panics if no colors are given.
func New(colors ...core.Vec3) Palette {
	if len(colors) == 0 {
		panic("palette: at least one color is required")
	}
	return Palette{colors: colors}
}

// FromHex creates a palette from 0xRRGGBB control colors
func FromHex(values ...uint32) Palette {
	colors := make([]core.Vec3, len(values))
	for i, v := range values {
		colors[i] = core.ColorFromHex(v)
	}
	return New(colors...)
}

// Len returns the number of control colors
func (p Palette) Len() int {
	return len(p.colors)
}

// Color samples the gradient at position in [0, 1).
//
// A position within core.Epsilon of 1 is nudged down by core.Epsilon before the range
// check, so callers may pass a ratio that reaches 1 exactly. Any other position outside
// [0, 1) panics.
func (p Palette) Color(position float64) core.Vec3 {
	if len(p.colors) == 0 {
		panic("palette: empty palette")
	}
	if len(p.colors) == 1 {
		return p.colors[0]
	}
	if math.Abs(position-1) <= core.Epsilon {
		position -= core.Epsilon
	}
	if !(position >= 0 && position < 1) {
		panic(fmt.Sprintf("palette: position %v outside [0, 1)", position))
	}

	position *= float64(len(p.colors) - 1)
	index, ratio := math.Modf(position)
	i := int(index)
	return core.Mix(p.colors[i], p.colors[i+1], ratio)
}

// Sky runs from a pale horizon blue to a deep teal
var Sky = FromHex(
	0xeef5ff,
	0xb4d4ff,
	0x86b6f6,
	0x176b87,
)

// Temperature is the heat map used for the complexity view: black, blue, pale blue,
// pale red, red.
var Temperature = FromHex(
	0x000000,
	0x0000ff,
	0x7f7fff,
	0xff7f7f,
	0xff0000,
)

package terminal

import (
	"github.com/nsf/termbox-go"

	"github.com/df07/go-terminal-raytracer/pkg/core"
	"github.com/df07/go-terminal-raytracer/pkg/renderer"
)

// Cell is one character cell ready to be written to the terminal
type Cell struct {
	Ch rune
	Fg termbox.Attribute
	Bg termbox.Attribute
}

// channel converts a linear color component to a byte, saturating outside [0, 1]
func channel(value float64) uint8 {
	return uint8(255 * max(0, min(1, value)))
}

// ColorAttribute returns the 24-bit termbox attribute for a color
func ColorAttribute(c core.Vec3) termbox.Attribute {
	return termbox.RGBToAttribute(channel(c.X), channel(c.Y), channel(c.Z))
}

// Inverted returns a color that contrasts with c, used for text drawn over it
func Inverted(c core.Vec3) core.Vec3 {
	return c.AddScalar(0.5).Frac()
}

// ComposeCells turns a frame into cells, writing each overlay line over the start of
// the matching row. Text that does not fit on the grid is dropped.
func ComposeCells(frame *renderer.Frame, overlay []string) []Cell {
	cells := make([]Cell, len(frame.Colors))
	for i, color := range frame.Colors {
		cells[i] = Cell{
			Ch: ' ',
			Fg: ColorAttribute(Inverted(color)),
			Bg: ColorAttribute(color),
		}
	}

	for j, line := range overlay {
		if j >= frame.Height {
			break
		}
		i := 0
		for _, ch := range line {
			if i >= frame.Width {
				break
			}
			cells[j*frame.Width+i].Ch = ch
			i++
		}
	}

	return cells
}

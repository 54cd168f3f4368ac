package terminal

import (
	"fmt"

	"github.com/nsf/termbox-go"

	"github.com/df07/go-terminal-raytracer/pkg/renderer"
)

// Font cell size assumed when the terminal does not report its size in pixels
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// PixelAspect returns the width/height ratio of a cols x rows terminal in pixels,
// falling back to the default cell size when the pixel size is unknown
func PixelAspect(cols, rows, xpixel, ypixel int) float64 {
	if xpixel <= 0 || ypixel <= 0 {
		xpixel = cols * DefaultCellWidth
		ypixel = rows * DefaultCellHeight
	}
	if ypixel == 0 {
		return 1
	}
	return float64(xpixel) / float64(ypixel)
}

// Screen draws frames to the terminal with termbox
type Screen struct {
	overlay []string
}

// Open switches the terminal to raw 24-bit color mode. Close must be called to restore it.
func Open() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputRGB)
	termbox.HideCursor()
	return &Screen{}, nil
}

// Close restores the terminal
func (s *Screen) Close() {
	termbox.Close()
}

// Size returns the screen size in cells
func (s *Screen) Size() (width, height int) {
	return termbox.Size()
}

// Aspect returns the screen's width/height ratio in pixels
func (s *Screen) Aspect() float64 {
	cols, rows := s.Size()
	xpixel, ypixel := windowPixels()
	return PixelAspect(cols, rows, xpixel, ypixel)
}

// AppendOverlayLine queues a line of text to draw over the next frame
func (s *Screen) AppendOverlayLine(line string) {
	s.overlay = append(s.overlay, line)
}

// Draw writes the frame and the queued overlay text, then clears the overlay
func (s *Screen) Draw(frame *renderer.Frame) error {
	cells := ComposeCells(frame, s.overlay)
	s.overlay = s.overlay[:0]

	for index, cell := range cells {
		termbox.SetCell(index%frame.Width, index/frame.Width, cell.Ch, cell.Fg, cell.Bg)
	}
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("failed to draw frame: %w", err)
	}
	return nil
}

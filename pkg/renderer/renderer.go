package renderer

import (
	"fmt"

	"github.com/df07/go-terminal-raytracer/pkg/core"
	"github.com/df07/go-terminal-raytracer/pkg/scene"
)

// Config contains configuration for the frame renderer
type Config struct {
	NumWorkers int    // Worker goroutines per frame (0 = number of hardware threads)
	Seed       uint64 // Seed for diffuse sampling
	FixedSeed  bool   // Reuse Seed for every frame instead of advancing it
}

// DefaultConfig returns sensible default configuration values
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
		Seed:       0,
		FixedSeed:  false,
	}
}

// Frame is one rendered grid of colors with the statistics of every ray traced for it
type Frame struct {
	Width  int
	Height int
	Colors []core.Vec3 // Row-major, top row first
	Stats  scene.TraceStats
}

// At returns the color of cell (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Colors[y*f.Width+x]
}

// Renderer traces frames with a fresh worker pool per frame
type Renderer struct {
	config     Config
	numWorkers int
	frames     uint64
	logger     core.Logger
}

// NewRenderer creates a renderer, discovering the worker count if it is not configured
func NewRenderer(config Config, logger core.Logger) *Renderer {
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = DiscoverWorkers()
	}

	logger.Printf("Renderer using %d workers\n", numWorkers)

	return &Renderer{
		config:     config,
		numWorkers: numWorkers,
		logger:     logger,
	}
}

// NumWorkers returns the number of workers started per frame
func (r *Renderer) NumWorkers() int {
	return r.numWorkers
}

func (r *Renderer) nextSeed() uint64 {
	seed := r.config.Seed
	if !r.config.FixedSeed {
		seed += r.frames
	}
	r.frames++
	return seed
}

// Render traces one ray per cell of a width x height grid and blocks until every cell
// has been reported. aspect is the width/height ratio of the display in pixels. The
// scene and camera must not change until Render returns. If any worker fails no frame
// is returned.
func (r *Renderer) Render(s *scene.Scene, camera *Camera, mode scene.ViewMode, width, height int, aspect float64) (*Frame, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	pixelCount := width * height
	frame := &Frame{
		Width:  width,
		Height: height,
		Colors: make([]core.Vec3, pixelCount),
	}
	if pixelCount == 0 {
		return frame, nil
	}

	job := &FrameJob{
		Scene:  s,
		Camera: camera,
		Mode:   mode,
		Width:  width,
		Height: height,
		Aspect: aspect,
		Seed:   r.nextSeed(),
	}

	pool := NewWorkerPool(job, r.numWorkers)
	pool.Start()

	// Drain until the pool closes so no worker is left blocked on a send
	var firstErr error
	received := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		frame.Colors[result.Index] = result.Payload.Color
		frame.Stats.Add(result.Payload.Stats)
		received++
	}

	if firstErr != nil {
		r.logger.Printf("Frame failed: %v\n", firstErr)
		return nil, fmt.Errorf("render failed: %w", firstErr)
	}
	if received != pixelCount {
		return nil, fmt.Errorf("render incomplete: %d of %d pixels reported", received, pixelCount)
	}

	return frame, nil
}

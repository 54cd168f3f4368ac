package renderer

import (
	"io"
	"strings"
	"testing"

	"github.com/df07/go-terminal-raytracer/pkg/core"
	"github.com/df07/go-terminal-raytracer/pkg/geometry"
	"github.com/df07/go-terminal-raytracer/pkg/scene"
)

func newTestRenderer(workers int, seed uint64) *Renderer {
	return NewRenderer(Config{NumWorkers: workers, Seed: seed, FixedSeed: true}, NewWriterLogger(io.Discard))
}

func defaultScene(t *testing.T) *scene.Scene {
	t.Helper()
	s, err := scene.NewDefaultScene()
	if err != nil {
		t.Fatalf("Failed to build default scene: %v", err)
	}
	return s
}

func TestPartitionPixels(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		workers  int
		expected []PixelRange
	}{
		{"Even split", 8, 4, []PixelRange{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"Ceiling size", 7, 3, []PixelRange{{0, 3}, {3, 6}, {6, 7}}},
		{"More workers than pixels", 5, 4, []PixelRange{{0, 2}, {2, 4}, {4, 5}}},
		{"Single worker", 5, 1, []PixelRange{{0, 5}}},
		{"No workers", 3, 0, []PixelRange{{0, 3}}},
		{"No pixels", 0, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges := PartitionPixels(tt.count, tt.workers)
			if len(ranges) != len(tt.expected) {
				t.Fatalf("Expected %d ranges, got %d: %v", len(tt.expected), len(ranges), ranges)
			}
			for i := range ranges {
				if ranges[i] != tt.expected[i] {
					t.Errorf("Range %d: expected %v, got %v", i, tt.expected[i], ranges[i])
				}
			}
		})
	}
}

func TestPartitionPixels_Coverage(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 7, 16, 100} {
		ranges := PartitionPixels(997, workers)
		next := 0
		for _, r := range ranges {
			if r.Start != next || r.Len() <= 0 {
				t.Fatalf("workers=%d: gap or empty range at %v", workers, r)
			}
			next = r.End
		}
		if next != 997 {
			t.Errorf("workers=%d: ranges end at %d, want 997", workers, next)
		}
	}
}

func TestDiscoverWorkers(t *testing.T) {
	if n := DiscoverWorkers(); n < 1 {
		t.Errorf("Expected at least one worker, got %d", n)
	}
}

func TestNewRenderer_DiscoversWorkers(t *testing.T) {
	r := NewRenderer(DefaultConfig(), NewWriterLogger(io.Discard))
	if r.NumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", r.NumWorkers())
	}
}

func TestRenderer_DeterministicAcrossWorkerCounts(t *testing.T) {
	s := defaultScene(t)
	camera := NewCamera(core.NewVec3(0, 0.5, 2), core.Vec3{})

	for _, mode := range scene.ViewModes {
		t.Run(mode.String(), func(t *testing.T) {
			single, err := newTestRenderer(1, 42).Render(s, camera, mode, 24, 12, 2)
			if err != nil {
				t.Fatalf("Single worker render failed: %v", err)
			}
			parallel, err := newTestRenderer(5, 42).Render(s, camera, mode, 24, 12, 2)
			if err != nil {
				t.Fatalf("Parallel render failed: %v", err)
			}

			if single.Stats != parallel.Stats {
				t.Errorf("Stats differ: %+v vs %+v", single.Stats, parallel.Stats)
			}
			for i := range single.Colors {
				if single.Colors[i] != parallel.Colors[i] {
					t.Fatalf("Pixel %d differs: %v vs %v", i, single.Colors[i], parallel.Colors[i])
				}
			}
		})
	}
}

func TestRenderer_FrameStats(t *testing.T) {
	s := defaultScene(t)
	camera := NewCamera(core.NewVec3(0, 0.5, 2), core.Vec3{})
	width, height := 20, 10

	frame, err := newTestRenderer(3, 1).Render(s, camera, scene.ViewColor, width, height, 2)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	stats := frame.Stats
	pixels := width * height
	if stats.Traced != pixels+stats.Reflected {
		t.Errorf("Traced %d != %d primary + %d reflected", stats.Traced, pixels, stats.Reflected)
	}
	if stats.ShadowTraced != stats.Hit {
		t.Errorf("Shadow rays %d != hits %d", stats.ShadowTraced, stats.Hit)
	}
	if stats.Hit == 0 || stats.Hit == stats.Traced {
		t.Errorf("Expected a mix of hits and misses, got %+v", stats)
	}
	if stats.Traced > pixels*scene.MaxSampleCount {
		t.Errorf("Traced %d exceeds %d rays per pixel", stats.Traced, scene.MaxSampleCount)
	}
}

func TestRenderer_DepthSphere(t *testing.T) {
	s := scene.NewScene()
	s.Spawn(scene.Object{
		Color: scene.SphereColor,
		Shape: geometry.NewSphere(core.NewVec3(-1, -1, 0), 0.5),
	})
	camera := NewCamera(core.NewVec3(-1, -1, 3), core.NewVec3(-1, -1, 0))
	size := 21

	frame, err := newTestRenderer(4, 0).Render(s, camera, scene.ViewDepth, size, size, 1)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	center := frame.At(size/2, size/2)
	if center.X < 2.5/scene.FarDistance || center.X > 2.6/scene.FarDistance {
		t.Errorf("Expected center depth of about %f, got %f", 2.5/scene.FarDistance, center.X)
	}

	for _, corner := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
		if c := frame.At(corner[0], corner[1]); c != core.Splat(1) {
			t.Errorf("Expected far value at corner %v, got %v", corner, c)
		}
	}

	hits := 0
	for _, c := range frame.Colors {
		if c.X < 1 {
			hits++
		}
	}
	if hits != frame.Stats.Hit {
		t.Errorf("Expected %d pixels closer than the far value, got %d", frame.Stats.Hit, hits)
	}
}

// panicShape fails whenever a ray reaches it
type panicShape struct{}

func (panicShape) Intersect(ray core.Ray) (geometry.Intersection, bool) {
	if ray.Direction.X > 0.5 {
		panic("corrupt geometry")
	}
	return geometry.Intersection{}, false
}

func TestRenderer_WorkerPanic(t *testing.T) {
	s := scene.NewScene()
	s.Spawn(scene.Object{Shape: panicShape{}})
	camera := NewCamera(core.NewVec3(0, 0, 2), core.Vec3{})

	frame, err := newTestRenderer(4, 0).Render(s, camera, scene.ViewColor, 16, 8, 2)
	if err == nil {
		t.Fatal("Expected error from panicking worker")
	}
	if frame != nil {
		t.Error("Expected no frame when a worker fails")
	}
	if !strings.Contains(err.Error(), "corrupt geometry") {
		t.Errorf("Expected panic value in error, got %v", err)
	}
}

func TestRenderer_FrameSize(t *testing.T) {
	r := newTestRenderer(2, 0)
	s := scene.NewScene()
	camera := NewCamera(core.NewVec3(0, 0, 2), core.Vec3{})

	if _, err := r.Render(s, camera, scene.ViewColor, -1, 4, 1); err == nil {
		t.Error("Expected error for negative width")
	}

	frame, err := r.Render(s, camera, scene.ViewColor, 0, 4, 1)
	if err != nil {
		t.Fatalf("Unexpected error for empty frame: %v", err)
	}
	if len(frame.Colors) != 0 || frame.Stats.Traced != 0 {
		t.Errorf("Expected empty frame, got %d colors and %+v", len(frame.Colors), frame.Stats)
	}

	frame, err = r.Render(s, camera, scene.ViewDepth, 3, 2, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if frame.Stats.Traced != 6 {
		t.Errorf("Expected one ray per pixel in an empty scene, got %d", frame.Stats.Traced)
	}
}

func TestRenderer_Seeds(t *testing.T) {
	advancing := NewRenderer(Config{NumWorkers: 1, Seed: 5}, NewWriterLogger(io.Discard))
	for _, expected := range []uint64{5, 6, 7} {
		if seed := advancing.nextSeed(); seed != expected {
			t.Errorf("Expected seed %d, got %d", expected, seed)
		}
	}

	fixed := newTestRenderer(1, 5)
	for i := 0; i < 3; i++ {
		if seed := fixed.nextSeed(); seed != 5 {
			t.Errorf("Expected fixed seed 5, got %d", seed)
		}
	}
}

func TestWriterLogger(t *testing.T) {
	var sb strings.Builder
	logger := NewWriterLogger(&sb)
	logger.Printf("%d workers\n", 3)
	if sb.String() != "3 workers\n" {
		t.Errorf("Unexpected log output %q", sb.String())
	}
}

func TestFrame_At(t *testing.T) {
	frame := &Frame{Width: 2, Height: 2, Colors: []core.Vec3{
		core.Splat(0), core.Splat(1), core.Splat(2), core.Splat(3),
	}}
	if c := frame.At(1, 1); c.X != 3 {
		t.Errorf("Expected bottom right cell 3, got %v", c)
	}
	if c := frame.At(0, 1); c.X != 2 {
		t.Errorf("Expected bottom left cell 2, got %v", c)
	}
}

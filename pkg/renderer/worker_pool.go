package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/cpu"

	"github.com/df07/go-terminal-raytracer/pkg/core"
	"github.com/df07/go-terminal-raytracer/pkg/scene"
)

// PixelRange is a half-open range of row-major pixel indices
type PixelRange struct {
	Start int
	End   int
}

// Len returns the number of pixels in the range
func (r PixelRange) Len() int {
	return r.End - r.Start
}

// PartitionPixels splits count pixels into contiguous ranges of ceil(count/workers)
// pixels. Fewer ranges than workers are returned when there are not enough pixels.
func PartitionPixels(count, workers int) []PixelRange {
	if count <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}

	size := (count + workers - 1) / workers
	ranges := make([]PixelRange, 0, workers)
	for start := 0; start < count; start += size {
		ranges = append(ranges, PixelRange{Start: start, End: min(start+size, count)})
	}
	return ranges
}

// DiscoverWorkers returns the number of hardware threads, or 1 if it cannot be found
func DiscoverWorkers() int {
	if counts, err := cpu.Counts(true); err == nil && counts > 0 {
		return counts
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// FrameJob holds the read-only inputs shared by every worker of one frame
type FrameJob struct {
	Scene  *scene.Scene
	Camera *Camera
	Mode   scene.ViewMode
	Width  int
	Height int
	Aspect float64
	Seed   uint64
}

// PixelResult reports one traced pixel, or the failure of a worker
type PixelResult struct {
	Index   int
	Payload scene.TracePayload
	Error   error
}

// WorkerPool runs one frame's workers, each over its own pixel range
type WorkerPool struct {
	resultQueue chan PixelResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker traces every pixel of its range
type Worker struct {
	ID          int
	job         *FrameJob
	pixels      PixelRange
	resultQueue chan PixelResult
}

// NewWorkerPool creates one worker per pixel range of the job
func NewWorkerPool(job *FrameJob, numWorkers int) *WorkerPool {
	ranges := PartitionPixels(job.Width*job.Height, numWorkers)

	wp := &WorkerPool{
		resultQueue: make(chan PixelResult, 256*max(1, len(ranges))),
		numWorkers:  len(ranges),
	}

	for i, pixels := range ranges {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			job:         job,
			pixels:      pixels,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start launches all workers. The result queue is closed once every worker has exited.
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}

	go func() {
		wp.wg.Wait()
		close(wp.resultQueue)
	}()
}

// GetResult retrieves the next result; ok is false once all workers are done
func (wp *WorkerPool) GetResult() (PixelResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	defer func() {
		if r := recover(); r != nil {
			w.resultQueue <- PixelResult{
				Index: -1,
				Error: fmt.Errorf("worker %d panicked: %v", w.ID, r),
			}
		}
	}()

	job := w.job
	for index := w.pixels.Start; index < w.pixels.End; index++ {
		i := index % job.Width
		j := index / job.Width

		ray := job.Camera.ViewportRay(ViewportPosition(i, j, job.Width, job.Height, job.Aspect))
		sampler := core.NewSeededSampler(job.Seed, uint64(index))

		w.resultQueue <- PixelResult{
			Index:   index,
			Payload: job.Scene.Trace(ray, job.Mode, sampler),
		}
	}
}

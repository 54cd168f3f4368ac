package renderer

import (
	"fmt"
	"time"
)

// RollingAverage averages the most recent values added to it
type RollingAverage struct {
	values []float64
	window int
	next   int
	sum    float64
}

// NewRollingAverage creates an average over the last window values
func NewRollingAverage(window int) *RollingAverage {
	if window <= 0 {
		panic(fmt.Sprintf("rolling average window must be positive, got %d", window))
	}
	return &RollingAverage{
		values: make([]float64, 0, window),
		window: window,
	}
}

// Add records a value, evicting the oldest one once the window is full
func (ra *RollingAverage) Add(value float64) {
	if len(ra.values) < ra.window {
		ra.values = append(ra.values, value)
	} else {
		ra.sum -= ra.values[ra.next]
		ra.values[ra.next] = value
		ra.next = (ra.next + 1) % ra.window
	}
	ra.sum += value
}

// Value returns the average of the recorded values, or 0 when there are none
func (ra *RollingAverage) Value() float64 {
	if len(ra.values) == 0 {
		return 0
	}
	return ra.sum / float64(len(ra.values))
}

// Len returns the number of values currently averaged
func (ra *RollingAverage) Len() int {
	return len(ra.values)
}

// FrameTimerWindow is the number of frames the timer averages over
const FrameTimerWindow = 100

// FrameTimer measures the time between frames
type FrameTimer struct {
	now   func() time.Time
	last  time.Time
	delta time.Duration
	ms    *RollingAverage
	fps   *RollingAverage
}

// NewFrameTimer creates a timer that starts counting now
func NewFrameTimer() *FrameTimer {
	return newFrameTimer(time.Now)
}

func newFrameTimer(now func() time.Time) *FrameTimer {
	return &FrameTimer{
		now:  now,
		last: now(),
		ms:   NewRollingAverage(FrameTimerWindow),
		fps:  NewRollingAverage(FrameTimerWindow),
	}
}

// Tick ends the current frame and returns its duration
func (ft *FrameTimer) Tick() time.Duration {
	current := ft.now()
	ft.delta = current.Sub(ft.last)
	ft.last = current

	seconds := ft.delta.Seconds()
	ft.ms.Add(1e3 * seconds)
	if seconds > 0 {
		ft.fps.Add(1 / seconds)
	}
	return ft.delta
}

// Delta returns the duration of the last completed frame
func (ft *FrameTimer) Delta() time.Duration {
	return ft.delta
}

// String formats the last and average frame times and rates
func (ft *FrameTimer) String() string {
	seconds := ft.delta.Seconds()
	fps := 0.0
	if seconds > 0 {
		fps = 1 / seconds
	}
	return fmt.Sprintf("%.0f ~%.0f ms, %.1f ~%.1f fps", 1e3*seconds, ft.ms.Value(), fps, ft.fps.Value())
}

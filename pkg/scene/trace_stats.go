package scene

import (
	"fmt"

	"github.com/df07/go-terminal-raytracer/pkg/core"
)

// TraceStats counts the work done while tracing
type TraceStats struct {
	Traced       int // Rays intersected against the scene, shadow rays excluded
	Reflected    int // Diffuse bounce rays spawned
	Hit          int // Traced rays that hit an object
	ShadowTraced int // Shadow rays cast toward the sun
	ShadowHit    int // Shadow rays that were blocked
}

// Add accumulates other into s
func (s *TraceStats) Add(other TraceStats) {
	s.Traced += other.Traced
	s.Reflected += other.Reflected
	s.Hit += other.Hit
	s.ShadowTraced += other.ShadowTraced
	s.ShadowHit += other.ShadowHit
}

func (s TraceStats) String() string {
	return fmt.Sprintf("%d rays (%d reflected, %d hit), %d shadow rays (%d hit)",
		s.Traced, s.Reflected, s.Hit, s.ShadowTraced, s.ShadowHit)
}

// TracePayload is the result of tracing one primary ray
type TracePayload struct {
	Color core.Vec3
	Stats TraceStats
}

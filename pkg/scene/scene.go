package scene

import (
	"math"

	"github.com/df07/go-terminal-raytracer/pkg/core"
	"github.com/df07/go-terminal-raytracer/pkg/geometry"
	"github.com/df07/go-terminal-raytracer/pkg/palette"
)

const (
	ReflectionDepth = 2   // Bounces below the primary ray
	ReflectionCount = 2   // Diffuse rays spawned per hit
	ReflectionBias  = 0.1 // Hemisphere perturbation of the mirror direction
	AmbientLight    = 0.2 // Light floor for shadowed or back-facing points
	FarDistance     = 4.0 // Distance that maps to white in the depth view
	Attenuation     = 0.1 // Weight multiplier per bounce
)

// MaxSampleCount is the number of samples one primary ray produces when every ray hits
var MaxSampleCount = sampleCount(ReflectionDepth, ReflectionCount)

func sampleCount(depth, fanOut int) int {
	count := 1
	level := 1
	for d := 1; d <= depth; d++ {
		level *= fanOut
		count += level
	}
	return count
}

// Object pairs a flat color with a shape
type Object struct {
	Color core.Vec3
	Shape geometry.Intersectable
}

// Scene contains all the elements needed for tracing. It must not be modified while
// a render is in progress; concurrent reads are safe.
type Scene struct {
	Objects []Object
	Sky     Sky
}

// NewScene creates an empty scene under the default sky
func NewScene() *Scene {
	return &Scene{
		Objects: make([]Object, 0),
		Sky:     DefaultSky(),
	}
}

// Spawn adds an object to the scene
func (s *Scene) Spawn(object Object) {
	s.Objects = append(s.Objects, object)
}

// Intersect returns the nearest hit over all objects and the color of the object hit
func (s *Scene) Intersect(ray core.Ray) (geometry.Intersection, core.Vec3, bool) {
	var closest geometry.Intersection
	var color core.Vec3
	found := false

	for _, object := range s.Objects {
		hit, ok := object.Shape.Intersect(ray)
		if !ok {
			continue
		}
		if !found || hit.Closer(closest) {
			closest = hit
			color = object.Color
			found = true
		}
	}

	return closest, color, found
}

// incident is a pending ray on the trace work list
type incident struct {
	ray   core.Ray
	depth int
}

// Trace follows a primary ray and its diffuse bounces and returns the color the view
// mode asks for. Normal and depth views stop at the first sample.
func (s *Scene) Trace(ray core.Ray, mode ViewMode, sampler core.Sampler) TracePayload {
	var stats TraceStats
	var sum core.Vec3
	samples := 0

	pending := make([]incident, 1, 1+ReflectionDepth*ReflectionCount)
	pending[0] = incident{ray: ray, depth: 0}

	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		stats.Traced++

		color, final := s.sample(current, mode, sampler, &pending, &stats)
		if final {
			sum = sum.Add(color)
			samples++
			break
		}

		sum = sum.Add(color.Multiply(math.Pow(Attenuation, float64(current.depth))))
		samples++
	}

	if mode == ViewComplexity {
		ratio := float64(samples) / float64(MaxSampleCount)
		return TracePayload{Color: palette.Temperature.Color(ratio), Stats: stats}
	}
	return TracePayload{Color: sum, Stats: stats}
}

// sample shades one work-list entry. final reports that the whole trace ends with this
// sample, in which case the color is used as is.
func (s *Scene) sample(current incident, mode ViewMode, sampler core.Sampler, pending *[]incident, stats *TraceStats) (color core.Vec3, final bool) {
	ray := current.ray
	hit, objectColor, ok := s.Intersect(ray)
	if !ok {
		return s.missColor(ray, mode), false
	}
	stats.Hit++

	switch mode {
	case ViewNormal:
		return hit.Normal.Multiply(0.5).AddScalar(0.5), true
	case ViewDepth:
		return core.Splat(hit.Distance / FarDistance), true
	}

	position := hit.HitPosition(ray)
	if current.depth < ReflectionDepth {
		for i := 0; i < ReflectionCount; i++ {
			direction := core.DiffuseDirection(ray.Direction, hit.Normal, ReflectionBias, sampler)
			*pending = append(*pending, incident{
				ray:   core.NewRay(position, direction),
				depth: current.depth + 1,
			})
			stats.Reflected++
		}
	}

	toSun := s.Sky.SunDirection.Negate()
	stats.ShadowTraced++
	if _, _, blocked := s.Intersect(core.NewRay(position, toSun)); blocked {
		stats.ShadowHit++
		return objectColor.Multiply(AmbientLight), false
	}
	intensity := max(hit.Normal.Dot(toSun), AmbientLight)
	return objectColor.Multiply(intensity), false
}

func (s *Scene) missColor(ray core.Ray, mode ViewMode) core.Vec3 {
	switch mode {
	case ViewNormal:
		return ray.Direction.Negate().Multiply(0.5).AddScalar(0.5)
	case ViewDepth:
		return core.Splat(1)
	case ViewComplexity:
		return core.Vec3{}
	}
	return s.Sky.Color(ray.Direction)
}

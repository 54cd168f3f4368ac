package control

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/df07/go-terminal-raytracer/pkg/core"
	"github.com/df07/go-terminal-raytracer/pkg/renderer"
	"github.com/df07/go-terminal-raytracer/pkg/scene"
)

const (
	Acceleration  = 10.0 // Velocity gained per second of key press
	VerticalLimit = 2.0  // Largest camera height above or below the target
	OrbitRadius   = 2.0  // Horizontal distance from the camera to the target
)

// Orbit moves a camera around a target. X is the angle around the vertical axis in
// radians and Y the camera height.
type Orbit struct {
	Target   core.Vec3
	Position vec.Vec2
	Velocity vec.Vec2
}

// NewOrbit creates an orbit at rest in front of target on the +Z side
func NewOrbit(target core.Vec3) *Orbit {
	return &Orbit{Target: target}
}

// Accelerate pushes the orbit along direction for dt seconds
func (o *Orbit) Accelerate(direction vec.Vec2, dt float64) {
	o.Velocity = o.Velocity.Add(direction.Mul(Acceleration * dt))
}

// Step advances the orbit by dt seconds. Movement that would take the camera to the
// vertical limit is dropped and stops vertical motion. Velocity decays by dt per second.
func (o *Orbit) Step(dt float64) {
	next := o.Position.Add(o.Velocity.Mul(dt))
	o.Position.X = next.X
	if math.Abs(next.Y) < VerticalLimit {
		o.Position.Y = next.Y
	} else {
		o.Velocity.Y = 0
	}
	o.Velocity = o.Velocity.Sub(o.Velocity.Mul(dt))
}

// Camera returns the camera for the current orbit position
func (o *Orbit) Camera() *renderer.Camera {
	offset := core.NewVec3(
		OrbitRadius*math.Sin(o.Position.X),
		o.Position.Y,
		OrbitRadius*math.Cos(o.Position.X),
	)
	return renderer.NewCamera(o.Target.Add(offset), o.Target)
}

// State is everything the user controls between frames
type State struct {
	Mode  scene.ViewMode
	Orbit *Orbit
	Quit  bool
}

// NewState creates the initial state: color view, orbiting the origin
func NewState(mode scene.ViewMode) *State {
	return &State{
		Mode:  mode,
		Orbit: NewOrbit(core.Vec3{}),
	}
}

// Handle applies one key press received during a frame of dt seconds
func (s *State) Handle(key rune, dt float64) {
	command := MapKey(key)
	switch command.Action {
	case ActionQuit:
		s.Quit = true
	case ActionViewMode:
		s.Mode = command.Mode
	case ActionOrbit:
		s.Orbit.Accelerate(command.Direction, dt)
	}
}

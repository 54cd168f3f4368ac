package control

import (
	"seehuhn.de/go/geom/vec"

	"github.com/df07/go-terminal-raytracer/pkg/scene"
)

// Action is what a key press asks the application to do
type Action int

const (
	ActionNone     Action = iota // Key has no binding
	ActionQuit                   // Leave the render loop
	ActionViewMode               // Switch to Command.Mode
	ActionOrbit                  // Accelerate the orbit along Command.Direction
)

// Key codes delivered for control keys
const (
	KeyEscape rune = 0x1b
	KeyCtrlC  rune = 0x03
)

// Command is a decoded key press
type Command struct {
	Action    Action
	Mode      scene.ViewMode
	Direction vec.Vec2
}

// MapKey decodes a key press. Digits 1-4 select a view mode, q or Escape quit and
// h/j/k/l orbit left, down, up and right.
func MapKey(key rune) Command {
	switch key {
	case '1', '2', '3', '4':
		return Command{Action: ActionViewMode, Mode: scene.ViewModes[key-'1']}
	case 'q', KeyEscape, KeyCtrlC:
		return Command{Action: ActionQuit}
	case 'h':
		return Command{Action: ActionOrbit, Direction: vec.Vec2{X: -1}}
	case 'j':
		return Command{Action: ActionOrbit, Direction: vec.Vec2{Y: -1}}
	case 'k':
		return Command{Action: ActionOrbit, Direction: vec.Vec2{Y: 1}}
	case 'l':
		return Command{Action: ActionOrbit, Direction: vec.Vec2{X: 1}}
	}
	return Command{Action: ActionNone}
}

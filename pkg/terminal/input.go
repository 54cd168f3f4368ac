package terminal

import (
	"github.com/nsf/termbox-go"

	"github.com/df07/go-terminal-raytracer/pkg/control"
)

// Input pumps key presses from the terminal into a queue the render loop drains
type Input struct {
	keys chan rune
	done chan struct{}
}

// NewInput starts reading terminal events. The screen must be open.
func NewInput() *Input {
	in := &Input{
		keys: make(chan rune, 64),
		done: make(chan struct{}),
	}
	go in.run()
	return in
}

func (in *Input) run() {
	defer close(in.done)
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt, termbox.EventError:
			return
		case termbox.EventKey:
			if key, ok := KeyFromEvent(ev); ok {
				select {
				case in.keys <- key:
				default:
					// Render loop is behind; drop the key
				}
			}
		}
	}
}

// Pop returns the next pending key without blocking
func (in *Input) Pop() (rune, bool) {
	select {
	case key := <-in.keys:
		return key, true
	default:
		return 0, false
	}
}

// Stop ends the event pump and waits for it to exit
func (in *Input) Stop() {
	termbox.Interrupt()
	<-in.done
}

// KeyFromEvent converts a termbox key event into the key codes the controls understand
func KeyFromEvent(ev termbox.Event) (rune, bool) {
	if ev.Type != termbox.EventKey {
		return 0, false
	}
	if ev.Ch != 0 {
		return ev.Ch, true
	}
	switch ev.Key {
	case termbox.KeyEsc:
		return control.KeyEscape, true
	case termbox.KeyCtrlC:
		return control.KeyCtrlC, true
	}
	return 0, false
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-terminal-raytracer/pkg/control"
	"github.com/df07/go-terminal-raytracer/pkg/core"
	"github.com/df07/go-terminal-raytracer/pkg/loaders"
	"github.com/df07/go-terminal-raytracer/pkg/renderer"
	"github.com/df07/go-terminal-raytracer/pkg/scene"
	"github.com/df07/go-terminal-raytracer/pkg/terminal"
)

// options holds the parsed command line
type options struct {
	mesh     string
	mode     scene.ViewMode
	workers  int
	seed     uint64
	headless bool
	width    int
	height   int
	frames   int
}

func parseOptions(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("terminal-raytracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.mesh, "mesh", "", "Mesh to show in the middle of the scene: a .obj path or a name from meshes/ (default: built-in icosphere)")
	mode := fs.String("mode", scene.ViewColor.String(), "Initial view mode: color, normal, depth or complexity")
	fs.IntVar(&opts.workers, "workers", 0, "Render workers per frame (0 = number of hardware threads)")
	fs.Uint64Var(&opts.seed, "seed", 0, "Seed for diffuse sampling; with -headless every frame reuses it")
	fs.BoolVar(&opts.headless, "headless", false, "Render without a terminal and log timings")
	fs.IntVar(&opts.width, "width", 120, "Headless frame width in cells")
	fs.IntVar(&opts.height, "height", 40, "Headless frame height in cells")
	fs.IntVar(&opts.frames, "frames", 10, "Number of headless frames")
	help := fs.Bool("help", false, "Show help information")

	fs.Usage = func() {
		fmt.Fprintln(output, "Terminal Ray Tracer")
		fmt.Fprintln(output, "Usage: terminal-raytracer [options]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Keys: 1-4 view mode, h/j/k/l orbit, q or Esc quit")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if *help {
		fs.Usage()
		return opts, flag.ErrHelp
	}

	var err error
	if opts.mode, err = scene.ParseViewMode(*mode); err != nil {
		return opts, err
	}
	if opts.headless && (opts.width <= 0 || opts.height <= 0 || opts.frames <= 0) {
		return opts, fmt.Errorf("headless width, height and frames must be positive")
	}
	return opts, nil
}

// createScene builds the demo scene around the built-in mesh or the one named by meshArg
func createScene(meshArg string, logger core.Logger) (*scene.Scene, error) {
	if meshArg == "" {
		return scene.NewDefaultScene()
	}

	path, err := scene.ResolveMesh(meshArg)
	if err != nil {
		return nil, err
	}
	data, err := loaders.LoadOBJ(path, logger)
	if err != nil {
		return nil, err
	}
	return scene.NewSceneWithMesh(data.Mesh()), nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseOptions(args, os.Stderr)
	if err != nil {
		return err
	}

	logger := renderer.NewWriterLogger(os.Stderr)
	if opts.headless {
		logger = renderer.NewDefaultLogger()
	}

	s, err := createScene(opts.mesh, logger)
	if err != nil {
		return err
	}

	config := renderer.DefaultConfig()
	config.NumWorkers = opts.workers
	config.Seed = opts.seed
	config.FixedSeed = opts.headless
	r := renderer.NewRenderer(config, logger)

	state := control.NewState(opts.mode)
	if opts.headless {
		return runHeadless(s, state, r, opts, logger)
	}
	return runInteractive(s, state, r)
}

// runHeadless renders a fixed number of frames into memory
func runHeadless(s *scene.Scene, state *control.State, r *renderer.Renderer, opts options, logger core.Logger) error {
	aspect := terminal.PixelAspect(opts.width, opts.height, 0, 0)
	timer := renderer.NewFrameTimer()

	for i := 0; i < opts.frames; i++ {
		frame, err := r.Render(s, state.Orbit.Camera(), state.Mode, opts.width, opts.height, aspect)
		if err != nil {
			return err
		}
		timer.Tick()
		logger.Printf("Frame %d: %s, %s\n", i+1, timer, frame.Stats)
	}
	return nil
}

// runInteractive renders to the terminal until the user quits
func runInteractive(s *scene.Scene, state *control.State, r *renderer.Renderer) error {
	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer screen.Close()

	input := terminal.NewInput()
	defer input.Stop()

	timer := renderer.NewFrameTimer()
	for {
		dt := timer.Tick().Seconds()

		if key, ok := input.Pop(); ok {
			state.Handle(key, dt)
		}
		if state.Quit {
			return nil
		}
		state.Orbit.Step(dt)

		width, height := screen.Size()
		frame, err := r.Render(s, state.Orbit.Camera(), state.Mode, width, height, screen.Aspect())
		if err != nil {
			return err
		}

		screen.AppendOverlayLine("Terminal Ray Tracer")
		screen.AppendOverlayLine(fmt.Sprintf("View mode: %s (use 1-4 keys to change)", state.Mode))
		screen.AppendOverlayLine(timer.String())
		screen.AppendOverlayLine(fmt.Sprintf("Symbol size: %dx%d (%d total)", width, height, width*height))
		screen.AppendOverlayLine(frame.Stats.String())
		if err := screen.Draw(frame); err != nil {
			return err
		}
	}
}

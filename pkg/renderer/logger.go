package renderer

import (
	"fmt"
	"io"

	"github.com/df07/go-terminal-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// WriterLogger implements core.Logger on top of any writer
type WriterLogger struct {
	w io.Writer
}

func (wl *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(wl.w, format, args...)
}

// NewWriterLogger creates a logger writing to w. The terminal front end logs to stderr
// so messages do not land on the screen it draws.
func NewWriterLogger(w io.Writer) core.Logger {
	return &WriterLogger{w: w}
}

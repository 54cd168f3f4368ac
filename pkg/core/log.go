package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger drops every message
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}

package ui

import (
	"github.com/charmbracelet/log"
	"github.com/dcmpixel/dcmpixel/diagnostic"
)

// LogSink adapts a *log.Logger to diagnostic.Sink, the only place in this
// repository where a core package's diagnostic messages are connected to
// charmbracelet/log. The core packages themselves never import this
// package.
type LogSink struct {
	Logger *log.Logger
}

// Message implements diagnostic.Sink.
func (s LogSink) Message(severity diagnostic.Severity, text string) {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	switch severity {
	case diagnostic.Error:
		logger.Error(text)
	case diagnostic.Warning:
		logger.Warn(text)
	default:
		logger.Info(text)
	}
}

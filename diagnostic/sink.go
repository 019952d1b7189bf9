// Package diagnostic provides a pluggable diagnostic message sink used by
// the core packages to report validation failures and other notable events
// without depending on any particular logging library.
//
// Core packages never log directly; they call a Sink if one has been
// installed for their Context. cmd/dcmpixel installs a Sink backed by
// github.com/charmbracelet/log so operators see these messages, but the
// core has no dependency on that choice.
package diagnostic

import (
	"fmt"
	"sync/atomic"
)

// Severity is the level of a diagnostic message.
type Severity int

const (
	// Info reports a notable but non-actionable event.
	Info Severity = iota
	// Warning reports a recoverable anomaly.
	Warning
	// Error reports a failure that aborted the operation that raised it.
	Error
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// maxMessageBytes is the truncation limit for formatted messages.
const maxMessageBytes = 512

// Sink receives diagnostic messages. Implementations must be safe for
// concurrent use.
type Sink interface {
	Message(severity Severity, text string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(severity Severity, text string)

// Message implements Sink.
func (f SinkFunc) Message(severity Severity, text string) {
	f(severity, text)
}

// nopSink discards every message. It is the default when no Sink has been
// installed for a Context.
type nopSink struct{}

func (nopSink) Message(Severity, string) {}

// Nop is a Sink that discards everything.
var Nop Sink = nopSink{}

// Context holds the current Sink for an owning object (e.g. a transforms
// Chain or a Renderer) and allows it to be retrieved or replaced atomically.
// The zero Context reports to Nop.
type Context struct {
	sink atomic.Value // sinkBox
}

// sinkBox gives every stored Sink the same concrete type, as atomic.Value
// requires across Store calls.
type sinkBox struct{ Sink }

// Sink returns the currently installed Sink, or Nop if none was installed.
func (c *Context) Sink() Sink {
	if v := c.sink.Load(); v != nil {
		return v.(sinkBox).Sink
	}
	return Nop
}

// SetSink installs s as the Context's Sink. Passing nil restores Nop.
func (c *Context) SetSink(s Sink) {
	if s == nil {
		s = Nop
	}
	c.sink.Store(sinkBox{s})
}

// Report formats a message with fmt.Sprintf, truncates it to 512 bytes, and
// sends it to the Context's installed Sink (a no-op if none is installed).
func (c *Context) Report(severity Severity, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if len(text) > maxMessageBytes {
		text = text[:maxMessageBytes]
	}
	c.Sink().Message(severity, text)
}

// ReportError is a convenience wrapper reporting err's message at Error
// severity. It does nothing if err is nil.
func (c *Context) ReportError(err error) {
	if err == nil {
		return
	}
	c.Report(Error, "%s", err.Error())
}

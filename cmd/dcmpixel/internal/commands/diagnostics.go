package commands

import (
	"github.com/charmbracelet/log"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/ui"
	"github.com/dcmpixel/dcmpixel/diagnostic"
)

// newDiagnosticSink returns the diagnostic.Sink every command installs into
// the chain.Chain / bitmap.Renderer it constructs, via that object's own
// Diagnostics.SetSink — a diagnostic.Context must not be copied once a sink
// has been installed on it, so commands install the sink directly on each
// owning object rather than sharing one preconfigured Context.
func newDiagnosticSink(logger *log.Logger) diagnostic.Sink {
	return ui.LogSink{Logger: logger}
}

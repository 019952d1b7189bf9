package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/ui"
	"github.com/dcmpixel/dcmpixel/diagnostic"
	"github.com/stretchr/testify/assert"
)

func TestLogSink_RoutesBySeverity(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{ReportTimestamp: false})
	logger.SetLevel(log.DebugLevel)
	sink := ui.LogSink{Logger: logger}

	sink.Message(diagnostic.Info, "info message")
	sink.Message(diagnostic.Warning, "warning message")
	sink.Message(diagnostic.Error, "error message")

	out := buf.String()
	assert.True(t, strings.Contains(out, "info message"))
	assert.True(t, strings.Contains(out, "warning message"))
	assert.True(t, strings.Contains(out, "error message"))
	assert.True(t, strings.Contains(out, "ERRO"))
	assert.True(t, strings.Contains(out, "WARN"))
}

func TestLogSink_NilLoggerFallsBackToDefault(t *testing.T) {
	var sink ui.LogSink
	assert.NotPanics(t, func() {
		sink.Message(diagnostic.Info, "fallback message")
	})
}

package cli_test

import (
	"testing"

	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Render(t *testing.T) {
	c, ctx, err := cli.ParseArgs(
		[]string{"render", "testdata.dcm", "--out", "out.rgb", "--format", "bgra", "--frame", "2"},
		"1.0.0", "abcdef", "2026-01-01",
	)
	require.NoError(t, err)
	assert.Equal(t, "render <path>", ctx.Command())
	assert.Equal(t, "testdata.dcm", c.Render.Path)
	assert.Equal(t, "out.rgb", c.Render.Out)
	assert.Equal(t, "bgra", c.Render.Format)
	assert.Equal(t, 2, c.Render.Frame)
}

func TestParseArgs_Info(t *testing.T) {
	c, ctx, err := cli.ParseArgs([]string{"info", "testdata.dcm"}, "dev", "none", "unknown")
	require.NoError(t, err)
	assert.Equal(t, "info <path>", ctx.Command())
	assert.Equal(t, "testdata.dcm", c.Info.Path)
}

func TestParseArgs_Window(t *testing.T) {
	c, _, err := cli.ParseArgs([]string{"window", "testdata.dcm", "--frame", "1"}, "dev", "none", "unknown")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Window.Frame)
}

func TestParseArgs_Bench(t *testing.T) {
	c, _, err := cli.ParseArgs([]string{"bench", "testdata.dcm", "--iterations", "10"}, "dev", "none", "unknown")
	require.NoError(t, err)
	assert.Equal(t, 10, c.Bench.Iterations)
}

func TestParseArgs_GlobalDefaults(t *testing.T) {
	c, _, err := cli.ParseArgs([]string{"info", "testdata.dcm"}, "dev", "none", "unknown")
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel)
	assert.True(t, c.Pretty)
}

func TestParseArgs_MissingRequiredOut(t *testing.T) {
	_, _, err := cli.ParseArgs([]string{"render", "testdata.dcm"}, "dev", "none", "unknown")
	assert.Error(t, err)
}

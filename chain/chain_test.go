package chain_test

import (
	"testing"

	"github.com/dcmpixel/dcmpixel/chain"
	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/diagnostic"
	"github.com/dcmpixel/dcmpixel/voilut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_EmptyIsIdentity(t *testing.T) {
	c := chain.New()
	assert.True(t, c.IsEmpty())

	src, err := dcmimage.New(2, 2, "MONOCHROME2", dcmimage.U8, 7)
	require.NoError(t, err)
	dst, err := c.AllocateOutputImage(src)
	require.NoError(t, err)
	assert.Equal(t, src.Width(), dst.Width())
	assert.Equal(t, src.Height(), dst.Height())
}

func TestChain_Run_ReportsErrorToDiagnostics(t *testing.T) {
	c := chain.New()

	var reported []string
	c.Diagnostics.SetSink(diagnostic.SinkFunc(func(severity diagnostic.Severity, text string) {
		if severity == diagnostic.Error {
			reported = append(reported, text)
		}
	}))

	src, err := dcmimage.New(2, 2, "MONOCHROME2", dcmimage.U8, 7)
	require.NoError(t, err)
	// A 1x1 destination can't hold a 2x2 source: Run must fail and report.
	dst, err := dcmimage.New(1, 1, "MONOCHROME2", dcmimage.U8, 7)
	require.NoError(t, err)

	err = c.Run(src, dst)
	require.Error(t, err)
	require.Len(t, reported, 1)
	assert.Contains(t, reported[0], "area")
}

func TestChain_Run_NopSinkByDefault(t *testing.T) {
	c := chain.New()
	src, err := dcmimage.New(2, 2, "MONOCHROME2", dcmimage.U8, 7)
	require.NoError(t, err)
	dst, err := dcmimage.New(1, 1, "MONOCHROME2", dcmimage.U8, 7)
	require.NoError(t, err)

	// A zero Diagnostics must not panic even though no Sink was installed.
	assert.Error(t, c.Run(src, dst))
}

func TestChain_AddFiltersNilAndEmpty(t *testing.T) {
	c := chain.New()
	c.Add(nil)
	c.Add(voilut.Transform{})
	assert.True(t, c.IsEmpty())
}

// A chain of 2+ non-empty stages must allocate an output sized to the real
// source dimensions, not the 1x1 placeholder a prior bug threaded through
// intermediate shapes.
func TestChain_AllocateOutputImage_MultiStagePreservesDimensions(t *testing.T) {
	c := chain.New()
	c.Add(voilut.ModalityTransform{RescaleSlope: 2, RescaleIntercept: -1, HasRescale: true})
	c.Add(voilut.Transform{Center: 128, Width: 256, Function: dcmimage.VOILinear})

	src, err := dcmimage.New(5, 3, "MONOCHROME2", dcmimage.U8, 7)
	require.NoError(t, err)

	dst, err := c.AllocateOutputImage(src)
	require.NoError(t, err)
	assert.Equal(t, 5, dst.Width())
	assert.Equal(t, 3, dst.Height())

	require.NoError(t, c.Run(src, dst))
}

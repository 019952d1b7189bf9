package colortransform_test

import (
	"testing"

	"github.com/dcmpixel/dcmpixel/colortransform"
	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMono(t *testing.T, width, height int, samples []int64) *dcmimage.Image {
	t.Helper()
	img, err := dcmimage.New(width, height, "MONOCHROME2", dcmimage.U8, 7)
	require.NoError(t, err)
	wh := img.NewWriteHandler()
	for i, v := range samples {
		wh.Set(i, v)
	}
	wh.Release()
	return img
}

func readSamples(img *dcmimage.Image, n int) []int64 {
	rh := img.NewReadHandler()
	out := make([]int64, n)
	for i := range out {
		out[i] = rh.At(i)
	}
	return out
}

func TestInvert_IsItsOwnInverse(t *testing.T) {
	src := newMono(t, 3, 1, []int64{0, 128, 255})

	toM1 := colortransform.Invert{From: "MONOCHROME2", To: "MONOCHROME1"}
	mid, err := toM1.AllocateOutputImage(src)
	require.NoError(t, err)
	require.NoError(t, toM1.Run(src, src.Rect(), mid, 0, 0))
	assert.Equal(t, []int64{255, 127, 0}, readSamples(mid, 3))

	toM2 := colortransform.Invert{From: "MONOCHROME1", To: "MONOCHROME2"}
	back, err := toM2.AllocateOutputImage(mid)
	require.NoError(t, err)
	require.NoError(t, toM2.Run(mid, mid.Rect(), back, 0, 0))
	assert.Equal(t, []int64{0, 128, 255}, readSamples(back, 3))
}

func TestInvert_RejectsWrongSourceColorSpace(t *testing.T) {
	src, err := dcmimage.New(1, 1, "RGB", dcmimage.U8, 7)
	require.NoError(t, err)
	dst, err := dcmimage.New(1, 1, "MONOCHROME2", dcmimage.U8, 7)
	require.NoError(t, err)

	xform := colortransform.Invert{From: "MONOCHROME1", To: "MONOCHROME2"}
	err = xform.Run(src, src.Rect(), dst, 0, 0)
	assert.ErrorIs(t, err, transform.ErrWrongColorSpace)
}

func TestMono2ToRGB_ReplicatesSampleAcrossChannels(t *testing.T) {
	src := newMono(t, 2, 1, []int64{10, 200})
	xform := colortransform.Mono2ToRGB{}

	dst, err := xform.AllocateOutputImage(src)
	require.NoError(t, err)
	require.NoError(t, xform.Run(src, src.Rect(), dst, 0, 0))

	assert.Equal(t, []int64{10, 10, 10, 200, 200, 200}, readSamples(dst, 6))
}

func TestRGBToMono2_LumaOfGrayIsItself(t *testing.T) {
	src, err := dcmimage.New(1, 1, "RGB", dcmimage.U8, 7)
	require.NoError(t, err)
	wh := src.NewWriteHandler()
	wh.Set(0, 128)
	wh.Set(1, 128)
	wh.Set(2, 128)
	wh.Release()

	xform := colortransform.RGBToMono2{}
	dst, err := xform.AllocateOutputImage(src)
	require.NoError(t, err)
	require.NoError(t, xform.Run(src, src.Rect(), dst, 0, 0))

	rh := dst.NewReadHandler()
	assert.InDelta(t, 128, rh.At(0), 1)
}

func TestPaletteToRGB_ExpandsThroughLUTs(t *testing.T) {
	img, err := dcmimage.New(1, 1, "PALETTE COLOR", dcmimage.U8, 7)
	require.NoError(t, err)
	wh := img.NewWriteHandler()
	wh.Set(0, 1)
	wh.Release()

	red := dcmimage.NewLUT(8, 2, 0, "red")
	red.Set(1, 255)
	green := dcmimage.NewLUT(8, 2, 0, "green")
	green.Set(1, 64)
	blue := dcmimage.NewLUT(8, 2, 0, "blue")
	blue.Set(1, 0)
	pal, err := dcmimage.NewPalette(red, green, blue)
	require.NoError(t, err)
	require.NoError(t, img.SetPalette(pal))

	xform := colortransform.PaletteToRGB{}
	dst, err := xform.AllocateOutputImage(img)
	require.NoError(t, err)
	require.NoError(t, xform.Run(img, img.Rect(), dst, 0, 0))

	assert.Equal(t, []int64{255, 64, 0}, readSamples(dst, 3))
}

func TestPaletteToRGB_ErrorsWithoutBoundPalette(t *testing.T) {
	img, err := dcmimage.New(1, 1, "PALETTE COLOR", dcmimage.U8, 7)
	require.NoError(t, err)
	dst, err := dcmimage.New(1, 1, "RGB", dcmimage.U8, 7)
	require.NoError(t, err)

	err = colortransform.PaletteToRGB{}.Run(img, img.Rect(), dst, 0, 0)
	assert.ErrorIs(t, err, colortransform.ErrNoPalette)
}

func TestRGBToYBRFull_RoundTripsThroughCatalog(t *testing.T) {
	src, err := dcmimage.New(1, 1, "RGB", dcmimage.U8, 7)
	require.NoError(t, err)
	wh := src.NewWriteHandler()
	wh.Set(0, 200)
	wh.Set(1, 50)
	wh.Set(2, 10)
	wh.Release()

	toYBR, err := transform.Global().Lookup("RGB", "YBR_FULL")
	require.NoError(t, err)
	ybr, err := toYBR.AllocateOutputImage(src)
	require.NoError(t, err)
	require.NoError(t, toYBR.Run(src, src.Rect(), ybr, 0, 0))

	toRGB, err := transform.Global().Lookup("YBR_FULL", "RGB")
	require.NoError(t, err)
	back, err := toRGB.AllocateOutputImage(ybr)
	require.NoError(t, err)
	require.NoError(t, toRGB.Run(ybr, ybr.Rect(), back, 0, 0))

	out := readSamples(back, 3)
	assert.InDelta(t, 200, out[0], 2)
	assert.InDelta(t, 50, out[1], 2)
	assert.InDelta(t, 10, out[2], 2)
}

func TestCatalog_ComposesMono2ToYBRFullThroughRGB(t *testing.T) {
	xform, err := transform.Global().Lookup("MONOCHROME2", "YBR_FULL")
	require.NoError(t, err)
	assert.False(t, xform.IsEmpty())
}

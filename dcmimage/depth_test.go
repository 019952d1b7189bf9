package dcmimage_test

import (
	"testing"

	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/stretchr/testify/assert"
)

func TestDepth_Valid(t *testing.T) {
	assert.True(t, dcmimage.U8.Valid())
	assert.True(t, dcmimage.S32.Valid())
	assert.False(t, dcmimage.Depth(99).Valid())
}

func TestDepth_Signed(t *testing.T) {
	assert.False(t, dcmimage.U8.Signed())
	assert.True(t, dcmimage.S8.Signed())
	assert.True(t, dcmimage.S16.Signed())
	assert.True(t, dcmimage.S32.Signed())
}

func TestDepth_NativeHighBit(t *testing.T) {
	assert.Equal(t, 7, dcmimage.U8.NativeHighBit())
	assert.Equal(t, 15, dcmimage.U16.NativeHighBit())
	assert.Equal(t, 31, dcmimage.S32.NativeHighBit())
}

func TestDepth_BytesPerSample(t *testing.T) {
	assert.Equal(t, 1, dcmimage.U8.BytesPerSample())
	assert.Equal(t, 2, dcmimage.S16.BytesPerSample())
	assert.Equal(t, 4, dcmimage.U32.BytesPerSample())
}

func TestDepth_UnsignedEquivalent(t *testing.T) {
	assert.Equal(t, dcmimage.U8, dcmimage.S8.UnsignedEquivalent())
	assert.Equal(t, dcmimage.U16, dcmimage.S16.UnsignedEquivalent())
	assert.Equal(t, dcmimage.U32, dcmimage.U32.UnsignedEquivalent())
}

func TestSmallestFor(t *testing.T) {
	assert.Equal(t, dcmimage.U8, dcmimage.SmallestFor(7, false))
	assert.Equal(t, dcmimage.S8, dcmimage.SmallestFor(7, true))
	assert.Equal(t, dcmimage.U16, dcmimage.SmallestFor(12, false))
	assert.Equal(t, dcmimage.S32, dcmimage.SmallestFor(20, true))
}

func TestMinMaxValue_Unsigned(t *testing.T) {
	assert.Equal(t, int64(0), dcmimage.MinValue(dcmimage.U8, 7))
	assert.Equal(t, int64(255), dcmimage.MaxValue(dcmimage.U8, 7))
}

func TestMinMaxValue_Signed(t *testing.T) {
	assert.Equal(t, int64(-128), dcmimage.MinValue(dcmimage.S8, 7))
	assert.Equal(t, int64(127), dcmimage.MaxValue(dcmimage.S8, 7))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, int64(0), dcmimage.Clamp(-10, dcmimage.U8, 7))
	assert.Equal(t, int64(255), dcmimage.Clamp(1000, dcmimage.U8, 7))
	assert.Equal(t, int64(42), dcmimage.Clamp(42, dcmimage.U8, 7))
}

package membuf_test

import (
	"testing"

	"github.com/dcmpixel/dcmpixel/membuf"
	"github.com/stretchr/testify/assert"
)

func TestAllocate_ZeroFilled(t *testing.T) {
	b := membuf.Allocate(4)
	assert.Equal(t, 4, b.Size())
	assert.Equal(t, []byte{0, 0, 0, 0}, b.Bytes())
}

func TestWrap_TakesOwnershipWithoutCopying(t *testing.T) {
	src := []byte{1, 2, 3}
	b := membuf.Wrap(src)
	src[0] = 9
	assert.Equal(t, byte(9), b.Bytes()[0], "Wrap must not copy")
}

func TestResize_Grow_ZeroFillsNewBytes(t *testing.T) {
	b := membuf.Allocate(2)
	b.Assign([]byte{1, 2})
	b.Resize(4)
	assert.Equal(t, []byte{1, 2, 0, 0}, b.Bytes())
}

func TestResize_Shrink_TruncatesContent(t *testing.T) {
	b := membuf.Allocate(0)
	b.Assign([]byte{1, 2, 3, 4})
	b.Resize(2)
	assert.Equal(t, []byte{1, 2}, b.Bytes())
}

func TestReserve_DoesNotChangeLength(t *testing.T) {
	b := membuf.Allocate(0)
	b.Assign([]byte{1, 2, 3})
	b.Reserve(10)
	assert.Equal(t, 3, b.Size())
	assert.Equal(t, []byte{1, 2, 3}, b.Bytes())
}

func TestAssignRegion_OverwritesSubrange(t *testing.T) {
	b := membuf.Allocate(5)
	b.AssignRegion(1, []byte{7, 8, 9})
	assert.Equal(t, []byte{0, 7, 8, 9, 0}, b.Bytes())
}

func TestClear_ZeroesWithoutResizing(t *testing.T) {
	b := membuf.Allocate(0)
	b.Assign([]byte{1, 2, 3})
	b.Clear()
	assert.Equal(t, []byte{0, 0, 0}, b.Bytes())
}

func TestClone_IsIndependent(t *testing.T) {
	b := membuf.Allocate(0)
	b.Assign([]byte{1, 2, 3})
	clone := b.Clone()
	clone.Bytes()[0] = 99
	assert.Equal(t, byte(1), b.Bytes()[0], "mutating the clone must not affect the original")
}

func TestCell_StoreThenLoad(t *testing.T) {
	var c membuf.Cell
	assert.Nil(t, c.Load())

	b := membuf.Allocate(2)
	c.Store(b)
	assert.Same(t, b, c.Load())
}

func TestCell_StoreReplacesPriorBuffer(t *testing.T) {
	var c membuf.Cell
	first := membuf.Allocate(2)
	c.Store(first)

	second := membuf.Allocate(4)
	c.Store(second)

	assert.Same(t, second, c.Load())
}

func TestNilBuffer_SizeAndBytesAreSafe(t *testing.T) {
	var b *membuf.Buffer
	assert.Equal(t, 0, b.Size())
	assert.Nil(t, b.Bytes())
}

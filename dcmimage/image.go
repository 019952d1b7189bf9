// Package dcmimage is the in-memory image model: a decoded raster plus its
// descriptive metadata (color space, depth, high bit, optional palette),
// the LUT/Palette/Overlay/VOIDescription types transforms operate on, and
// the reading/writing handler pair that mediates access to an Image's pixel
// buffer.
package dcmimage

import (
	"encoding/binary"

	"github.com/dcmpixel/dcmpixel/colorspace"
	"github.com/dcmpixel/dcmpixel/membuf"
)

// Image is a decoded raster: a contiguous, row-major, channel-interleaved
// pixel buffer plus the metadata needed to interpret it.
//
// An Image is created empty (no backing memory) and lazily materializes its
// pixel buffer the first time a reading or writing handler is requested; the
// buffer's lifetime equals the Image's.
type Image struct {
	width, height int
	colorSpace    string
	channels      int
	depth         Depth
	highBit       int
	palette       *Palette

	cell membuf.Cell
}

// New constructs an Image. width and height must be >= 1
// (ErrInvalidImageSize), depth must be one of the six supported depths
// (ErrUnknownDepth), and colorSpace must be a registered color space
// (colorspace.ErrUnknownColorSpace). highBit is clamped to depth's native
// high bit.
func New(width, height int, colorSpace_ string, depth Depth, highBit int) (*Image, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidImageSize
	}
	if !depth.Valid() {
		return nil, ErrUnknownDepth
	}
	norm := colorspace.Normalize(colorSpace_)
	channels, err := colorspace.Channels(norm)
	if err != nil {
		return nil, err
	}
	if highBit > depth.NativeHighBit() {
		highBit = depth.NativeHighBit()
	}
	if highBit < 0 {
		highBit = 0
	}
	return &Image{
		width:      width,
		height:     height,
		colorSpace: norm,
		channels:   channels,
		depth:      depth,
		highBit:    highBit,
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// ColorSpace returns the normalized color space name.
func (img *Image) ColorSpace() string { return img.colorSpace }

// Channels returns the number of samples per pixel implied by ColorSpace.
func (img *Image) Channels() int { return img.channels }

// Depth returns the element storage type.
func (img *Image) Depth() Depth { return img.depth }

// HighBit returns the 0-based index of the most significant bit used per
// sample; a sample uses HighBit()+1 bits.
func (img *Image) HighBit() int { return img.highBit }

// Signed reports whether the image's depth is a signed type.
func (img *Image) Signed() bool { return img.depth.Signed() }

// Palette returns the bound palette, or nil if the image's color space is
// not PALETTE COLOR or no palette has been set.
func (img *Image) Palette() *Palette { return img.palette }

// SetPalette binds p to the image. The image's color space must already be
// PALETTE COLOR.
func (img *Image) SetPalette(p *Palette) error {
	if img.colorSpace != "PALETTE COLOR" {
		return ErrWrongColorSpaceForPalette
	}
	img.palette = p
	return nil
}

// Rect returns the whole-image rectangle (0, 0, width, height).
func (img *Image) Rect() Rect {
	return Rect{X: 0, Y: 0, W: img.width, H: img.height}
}

// bufferSize returns the backing buffer's required size in bytes.
func (img *Image) bufferSize() int {
	return img.width * img.height * img.channels * img.depth.BytesPerSample()
}

// ensureBuffer returns the current backing buffer, materializing a
// zero-filled one of the correct size on first use.
func (img *Image) ensureBuffer() *membuf.Buffer {
	size := img.bufferSize()
	b := img.cell.Load()
	if b == nil || b.Size() != size {
		b = membuf.Allocate(size)
		img.cell.Store(b)
	}
	return b
}

// Clone returns an independent Image sharing no backing memory with img.
func (img *Image) Clone() *Image {
	out := &Image{
		width:      img.width,
		height:     img.height,
		colorSpace: img.colorSpace,
		channels:   img.channels,
		depth:      img.depth,
		highBit:    img.highBit,
		palette:    img.palette,
	}
	if b := img.cell.Load(); b != nil {
		out.cell.Store(b.Clone())
	}
	return out
}

// NewReadHandler returns a handler observing the image's current pixel
// buffer. The handler shares that buffer with the image rather than holding
// a snapshot: writes made through a write handler acquired later are
// visible to it as soon as they are made.
func (img *Image) NewReadHandler() *ReadHandler {
	return &ReadHandler{depth: img.depth, buf: img.ensureBuffer()}
}

// NewWriteHandler returns a handler over the image's backing buffer. Writes
// through the handler are visible to the image (and to readers created
// afterward) once Release is called.
//
// Within the synchronous, single-writer execution model of this package
// (see the concurrency notes in the root documentation), the handler
// operates on the image's own buffer rather than a private clone so that
// successive handler acquisitions — as happens across the row-strips of a
// transforms chain — accumulate into the same image instead of each
// resetting it.
func (img *Image) NewWriteHandler() *WriteHandler {
	return &WriteHandler{depth: img.depth, buf: img.ensureBuffer(), img: img}
}

// ReadHandler observes an Image's pixel buffer without mutating it.
type ReadHandler struct {
	depth Depth
	buf   *membuf.Buffer
}

// Depth returns the handler's element type.
func (h *ReadHandler) Depth() Depth { return h.depth }

// Len returns the number of samples observable through the handler.
func (h *ReadHandler) Len() int {
	bps := h.depth.BytesPerSample()
	if bps == 0 {
		return 0
	}
	return h.buf.Size() / bps
}

// At returns the sample at index i, sign-extended to int64 when the
// handler's depth is signed.
func (h *ReadHandler) At(i int) int64 {
	data := h.buf.Bytes()
	off := i * h.depth.BytesPerSample()
	switch h.depth {
	case U8:
		return int64(data[off])
	case S8:
		return int64(int8(data[off]))
	case U16:
		return int64(binary.LittleEndian.Uint16(data[off : off+2]))
	case S16:
		return int64(int16(binary.LittleEndian.Uint16(data[off : off+2])))
	case U32:
		return int64(binary.LittleEndian.Uint32(data[off : off+4]))
	case S32:
		return int64(int32(binary.LittleEndian.Uint32(data[off : off+4])))
	default:
		return 0
	}
}

// WriteHandler produces samples into an Image's pixel buffer. Call Release
// when done writing so the image (and future readers) observe the result.
type WriteHandler struct {
	depth Depth
	buf   *membuf.Buffer
	img   *Image
}

// Depth returns the handler's element type.
func (h *WriteHandler) Depth() Depth { return h.depth }

// Len returns the number of samples the handler can address.
func (h *WriteHandler) Len() int {
	bps := h.depth.BytesPerSample()
	if bps == 0 {
		return 0
	}
	return h.buf.Size() / bps
}

// Set stores v at sample index i, truncating to the handler's depth width.
func (h *WriteHandler) Set(i int, v int64) {
	data := h.buf.Bytes()
	off := i * h.depth.BytesPerSample()
	switch h.depth {
	case U8, S8:
		data[off] = byte(v)
	case U16, S16:
		binary.LittleEndian.PutUint16(data[off:off+2], uint16(v))
	case U32, S32:
		binary.LittleEndian.PutUint32(data[off:off+4], uint32(v))
	}
}

// Release commits the handler's writes to the owning image.
func (h *WriteHandler) Release() {
	h.img.cell.Store(h.buf)
}

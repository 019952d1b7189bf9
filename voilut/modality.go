package voilut

import (
	"math"

	"github.com/dcmpixel/dcmpixel/colorspace"
	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/transform"
)

// minNormalFloat64 is the smallest positive normalized float64 (DBL_MIN);
// a slope whose magnitude falls below it is treated as unset rather than
// risking a near-zero division downstream.
const minNormalFloat64 = 2.2250738585072014e-308

// ModalityTransform converts stored pixel values into modality-specific
// units (e.g. Hounsfield units for CT), via either a rescale slope/
// intercept pair or a modality LUT (DICOM PS3.3 C.11.1).
type ModalityTransform struct {
	transform.Base

	RescaleIntercept float64
	RescaleSlope     float64
	HasRescale       bool

	LUT *dcmimage.LUT
}

func (t ModalityTransform) hasLUT() bool {
	return t.LUT != nil && t.LUT.Size() > 0
}

func (t ModalityTransform) hasUsableSlope() bool {
	return t.HasRescale && math.Abs(t.RescaleSlope) >= minNormalFloat64
}

// IsEmpty reports whether the transform would leave samples unchanged:
// true when neither a non-empty LUT nor a usable slope was supplied.
func (t ModalityTransform) IsEmpty() bool {
	return !t.hasLUT() && !t.hasUsableSlope()
}

// AllocateOutputImage returns the input's shape unchanged when empty;
// otherwise the LUT's own (depth, high bit) when a LUT is present, or the
// smallest native (depth, high bit) pair containing the rescaled value
// range of the input when using slope/intercept.
func (t ModalityTransform) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	if t.IsEmpty() {
		return dcmimage.New(src.Width(), src.Height(), src.ColorSpace(), src.Depth(), src.HighBit())
	}
	if t.hasLUT() {
		depth, highBit := dcmimage.U8, t.LUT.Bits()-1
		if t.LUT.Bits() > 8 {
			depth = dcmimage.U16
		}
		return dcmimage.New(src.Width(), src.Height(), src.ColorSpace(), depth, highBit)
	}

	inMin := float64(dcmimage.MinValue(src.Depth(), src.HighBit()))
	inMax := float64(dcmimage.MaxValue(src.Depth(), src.HighBit()))
	end0 := inMin*t.RescaleSlope + t.RescaleIntercept
	end1 := inMax*t.RescaleSlope + t.RescaleIntercept
	lo, hi := end0, end1
	if lo > hi {
		lo, hi = hi, lo
	}

	depth, highBit := smallestContaining(lo, hi)
	return dcmimage.New(src.Width(), src.Height(), src.ColorSpace(), depth, highBit)
}

// smallestContaining picks the smallest of U8/7, S8/7, U16/15, S16/15,
// S32/31 whose native range contains [lo, hi].
func smallestContaining(lo, hi float64) (dcmimage.Depth, int) {
	candidates := []struct {
		depth   dcmimage.Depth
		highBit int
	}{
		{dcmimage.U8, 7}, {dcmimage.S8, 7},
		{dcmimage.U16, 15}, {dcmimage.S16, 15},
		{dcmimage.S32, 31},
	}
	for _, c := range candidates {
		min := float64(dcmimage.MinValue(c.depth, c.highBit))
		max := float64(dcmimage.MaxValue(c.depth, c.highBit))
		if lo >= min && hi <= max {
			return c.depth, c.highBit
		}
	}
	return dcmimage.S32, 31
}

// Run requires src and dst to be monochrome images. With a non-empty LUT,
// out = outMin + lut.map(in); otherwise out = trunc(in*slope + intercept).
func (t ModalityTransform) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	if err := t.ValidateRect(srcRect, src, dst, dstX, dstY); err != nil {
		return err
	}
	if !colorspace.IsMonochrome(src.ColorSpace()) || !colorspace.IsMonochrome(dst.ColorSpace()) {
		return ErrModalityVOI
	}

	rh := src.NewReadHandler()
	wh := dst.NewWriteHandler()
	outMin := dcmimage.MinValue(dst.Depth(), dst.HighBit())
	outMax := dcmimage.MaxValue(dst.Depth(), dst.HighBit())

	hasLUT := t.hasLUT()

	for r := 0; r < srcRect.H; r++ {
		srcRow := (srcRect.Y+r)*src.Width() + srcRect.X
		dstRow := (dstY+r)*dst.Width() + dstX
		for c := 0; c < srcRect.W; c++ {
			in := rh.At(srcRow + c)
			var out int64
			if hasLUT {
				out = outMin + int64(t.LUT.Map(in))
			} else {
				out = int64(float64(in)*t.RescaleSlope + t.RescaleIntercept)
				if out < outMin {
					out = outMin
				} else if out > outMax {
					out = outMax
				}
			}
			wh.Set(dstRow+c, out)
		}
	}
	wh.Release()
	return nil
}

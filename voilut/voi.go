package voilut

import (
	"math"

	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/transform"
)

// Transform applies a VOI/LUT window or lookup table (DICOM PS3.3 C.11.2,
// "VOI LUT Module"), mapping modality-unit samples to a display range.
type Transform struct {
	transform.Base

	LUT *dcmimage.LUT

	Center   float64
	Width    float64
	Function dcmimage.VOIFunction
}

func (t Transform) hasLUT() bool { return t.LUT != nil && t.LUT.Size() > 0 }

// IsEmpty reports whether the transform would leave samples unchanged: no
// LUT and a width below 1.0.
func (t Transform) IsEmpty() bool {
	return !t.hasLUT() && t.Width < 1.0
}

// AllocateOutputImage passes the input shape through when empty or when
// width <= 1 (hard threshold, no depth change needed); a LUT uses the
// LUT's own bit depth; a usable window maps S8 to U8 and S16, U32 and S32
// to U16 (U8 and U16 stay as they are) while keeping the input's high bit,
// which dcmimage.New clamps to 15 for a 32-bit input.
func (t Transform) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	switch {
	case t.IsEmpty():
		return dcmimage.New(src.Width(), src.Height(), src.ColorSpace(), src.Depth(), src.HighBit())
	case t.hasLUT():
		depth, highBit := dcmimage.U8, t.LUT.Bits()-1
		if t.LUT.Bits() > 8 {
			depth = dcmimage.U16
		}
		return dcmimage.New(src.Width(), src.Height(), src.ColorSpace(), depth, highBit)
	case t.Width <= 1:
		return dcmimage.New(src.Width(), src.Height(), src.ColorSpace(), src.Depth(), src.HighBit())
	default:
		depth := src.Depth().UnsignedEquivalent()
		if depth == dcmimage.U32 {
			depth = dcmimage.U16
		}
		return dcmimage.New(src.Width(), src.Height(), src.ColorSpace(), depth, src.HighBit())
	}
}

// Run applies the LUT when present, else the configured window function.
func (t Transform) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	if err := t.ValidateRect(srcRect, src, dst, dstX, dstY); err != nil {
		return err
	}

	rh := src.NewReadHandler()
	wh := dst.NewWriteHandler()
	outMin := dcmimage.MinValue(dst.Depth(), dst.HighBit())
	outMax := dcmimage.MaxValue(dst.Depth(), dst.HighBit())
	n := int64(1) << uint(dst.HighBit()+1)
	span := float64(n - 1)

	hasLUT := t.hasLUT()

	convert := func(in int64) int64 {
		if hasLUT {
			return outMin + int64(t.LUT.Map(in))
		}
		return t.windowValue(float64(in), float64(outMin), span, outMin, outMax)
	}

	for r := 0; r < srcRect.H; r++ {
		srcRow := (srcRect.Y+r)*src.Width() + srcRect.X
		dstRow := (dstY+r)*dst.Width() + dstX
		for c := 0; c < srcRect.W; c++ {
			wh.Set(dstRow+c, convert(rh.At(srcRow+c)))
		}
	}
	wh.Release()
	return nil
}

// windowValue implements the three VOI window functions of spec §4.8.
func (t Transform) windowValue(in, outMinF, span float64, outMin, outMax int64) int64 {
	if t.Function == dcmimage.VOILinear && t.Width <= 1 {
		if in <= t.Center-0.5 {
			return outMin
		}
		return outMax
	}

	var v float64
	switch t.Function {
	case dcmimage.VOILinearExact:
		v = ((in-t.Center)/t.Width)*span + outMinF
	case dcmimage.VOISigmoid:
		v = span/(1+math.Exp(-4*(in-t.Center)/t.Width)) + outMinF
	default: // VOILinear
		v = ((in-(t.Center-0.5))/(t.Width-1)+0.5)*span + outMinF
	}

	switch {
	case v < float64(outMin):
		return outMin
	case v > float64(outMax):
		return outMax
	default:
		return int64(v)
	}
}

// OptimalWindow scans rect of img and returns the tightest linear window
// covering its observed sample range: center = (max+min+1)/2,
// width = 2*(center-min).
func OptimalWindow(img *dcmimage.Image, rect dcmimage.Rect) (center, width float64, err error) {
	if !rect.Within(img.Width(), img.Height()) {
		return 0, 0, transform.ErrInvalidTransformArea
	}

	rh := img.NewReadHandler()
	channels := img.Channels()
	first := true
	var minV, maxV int64

	for y := rect.Y; y < rect.Y+rect.H; y++ {
		rowStart := (y*img.Width() + rect.X) * channels
		for x := 0; x < rect.W*channels; x++ {
			v := rh.At(rowStart + x)
			if first {
				minV, maxV = v, v
				first = false
				continue
			}
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}

	c := float64(maxV+minV+1) / 2
	return c, 2 * (c - float64(minV)), nil
}

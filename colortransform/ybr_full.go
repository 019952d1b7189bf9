package colortransform

import (
	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/transform"
)

// RGBToYBRFull converts RGB to YBR_FULL using the ITU-R BT.601 full-range
// matrix, fixed-point with 14 fractional bits.
type RGBToYBRFull struct {
	transform.Base
	finalColorSpace string // "YBR_FULL" or "YBR_ICT" (identical numerics)
}

// NewRGBToYBRFull returns the RGB->YBR_FULL transform.
func NewRGBToYBRFull() transform.Transform { return RGBToYBRFull{finalColorSpace: "YBR_FULL"} }

// NewRGBToYBRICT returns the RGB->YBR_ICT transform, which reuses
// RGBToYBRFull's numerics and differs only in the reported color space.
func NewRGBToYBRICT() transform.Transform { return RGBToYBRFull{finalColorSpace: "YBR_ICT"} }

func (t RGBToYBRFull) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	return dcmimage.New(src.Width(), src.Height(), t.finalColorSpace, src.Depth(), src.HighBit())
}

func (t RGBToYBRFull) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	if err := t.ValidateRect(srcRect, src, dst, dstX, dstY); err != nil {
		return err
	}
	if err := t.ValidateColorSpaces(src, "RGB"); err != nil {
		return err
	}
	if err := t.ValidateSameHighBit(src, dst); err != nil {
		return err
	}

	inMin := dcmimage.MinValue(src.Depth(), src.HighBit())
	outMin := dcmimage.MinValue(dst.Depth(), dst.HighBit())
	outMiddle := outMin + (int64(1) << uint(dst.HighBit()))
	outMax := dcmimage.MaxValue(dst.Depth(), dst.HighBit())

	rh := src.NewReadHandler()
	wh := dst.NewWriteHandler()
	for r := 0; r < srcRect.H; r++ {
		srcRow := ((srcRect.Y+r)*src.Width() + srcRect.X) * 3
		dstRow := ((dstY+r)*dst.Width() + dstX) * 3
		for c := 0; c < srcRect.W; c++ {
			i := srcRow + c*3
			rr := rh.At(i) - inMin
			g := rh.At(i+1) - inMin
			b := rh.At(i+2) - inMin

			yy := outMin + (4899*rr+9617*g+1868*b+8191)>>14
			cb := outMiddle + (-2765*rr-5427*g+8192*b+8191)>>14
			cr := outMiddle + (8192*rr-6860*g-1332*b+8191)>>14

			o := dstRow + c*3
			wh.Set(o, clampRange(yy, outMin, outMax))
			wh.Set(o+1, clampRange(cb, outMin, outMax))
			wh.Set(o+2, clampRange(cr, outMin, outMax))
		}
	}
	wh.Release()
	return nil
}

func (t RGBToYBRFull) IsEmpty() bool { return false }

// YBRFullToRGB inverts the BT.601 full-range transform. Used directly for
// YBR_FULL->RGB, and reused (with a different reported initial color
// space) for YBR_ICT->RGB and YBR_PARTIAL->RGB, since the spec's reuse
// note for YBR_ICT generalizes: none of these three source spaces carry a
// distinct documented inverse matrix.
type YBRFullToRGB struct {
	transform.Base
	initialColorSpace string
}

// NewYBRFullToRGB returns the YBR_FULL->RGB transform.
func NewYBRFullToRGB() transform.Transform { return YBRFullToRGB{initialColorSpace: "YBR_FULL"} }

// NewYBRICTToRGB returns the YBR_ICT->RGB transform, reusing YBRFullToRGB's
// numerics per spec.
func NewYBRICTToRGB() transform.Transform { return YBRFullToRGB{initialColorSpace: "YBR_ICT"} }

// NewYBRPartialToRGB returns the YBR_PARTIAL->RGB transform. No distinct
// inverse matrix is documented for YBR_PARTIAL, so it reuses the same
// full-range inverse as YBR_ICT does.
func NewYBRPartialToRGB() transform.Transform {
	return YBRFullToRGB{initialColorSpace: "YBR_PARTIAL"}
}

func (t YBRFullToRGB) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	return dcmimage.New(src.Width(), src.Height(), "RGB", src.Depth(), src.HighBit())
}

func (t YBRFullToRGB) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	if err := t.ValidateRect(srcRect, src, dst, dstX, dstY); err != nil {
		return err
	}
	if err := t.ValidateColorSpaces(src, t.initialColorSpace); err != nil {
		return err
	}
	if err := t.ValidateSameHighBit(src, dst); err != nil {
		return err
	}

	inMin := dcmimage.MinValue(src.Depth(), src.HighBit())
	inMiddle := inMin + (int64(1) << uint(src.HighBit()))
	outMin := dcmimage.MinValue(dst.Depth(), dst.HighBit())
	outMax := dcmimage.MaxValue(dst.Depth(), dst.HighBit())

	rh := src.NewReadHandler()
	wh := dst.NewWriteHandler()
	for r := 0; r < srcRect.H; r++ {
		srcRow := ((srcRect.Y+r)*src.Width() + srcRect.X) * 3
		dstRow := ((dstY+r)*dst.Width() + dstX) * 3
		for c := 0; c < srcRect.W; c++ {
			i := srcRow + c*3
			yy := rh.At(i) - inMin
			cb := rh.At(i+1) - inMiddle
			cr := rh.At(i+2) - inMiddle

			rr := outMin + yy + (22970*cr)>>14
			g := outMin + yy - (5638*cb+11700*cr)>>14
			b := outMin + yy + (29032*cb)>>14

			o := dstRow + c*3
			wh.Set(o, clampRange(rr, outMin, outMax))
			wh.Set(o+1, clampRange(g, outMin, outMax))
			wh.Set(o+2, clampRange(b, outMin, outMax))
		}
	}
	wh.Release()
	return nil
}

func (t YBRFullToRGB) IsEmpty() bool { return false }

func clampRange(v, lo, hi int64) int64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

package colortransform

import (
	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/transform"
)

// Mono2ToRGB replicates a MONOCHROME2 sample into all three RGB channels.
type Mono2ToRGB struct{ transform.Base }

func (t Mono2ToRGB) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	return dcmimage.New(src.Width(), src.Height(), "RGB", src.Depth(), src.HighBit())
}

// Run writes out = outMin + (in - inMin) into each of the three output
// channels per input sample.
func (t Mono2ToRGB) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	if err := t.ValidateRect(srcRect, src, dst, dstX, dstY); err != nil {
		return err
	}
	if err := t.ValidateColorSpaces(src, "MONOCHROME2"); err != nil {
		return err
	}
	if err := t.ValidateSameHighBit(src, dst); err != nil {
		return err
	}

	inMin := dcmimage.MinValue(src.Depth(), src.HighBit())
	outMin := dcmimage.MinValue(dst.Depth(), dst.HighBit())

	rh := src.NewReadHandler()
	wh := dst.NewWriteHandler()
	for r := 0; r < srcRect.H; r++ {
		srcRow := (srcRect.Y+r)*src.Width() + srcRect.X
		dstRow := ((dstY+r)*dst.Width() + dstX) * 3
		for c := 0; c < srcRect.W; c++ {
			v := outMin + (rh.At(srcRow+c) - inMin)
			o := dstRow + c*3
			wh.Set(o, v)
			wh.Set(o+1, v)
			wh.Set(o+2, v)
		}
	}
	wh.Release()
	return nil
}

func (t Mono2ToRGB) IsEmpty() bool { return false }

// BT.601 full-range luma weights (14 fractional bits), shared with
// RGBToYBRFull's Y channel.
const (
	lumaWR    = 4899
	lumaWG    = 9617
	lumaWB    = 1868
	lumaRound = 8191
)

// RGBToMono2 reduces an RGB image to MONOCHROME2 using the BT.601 luma
// weight (the same Y coefficients RGBToYBRFull uses for its luma channel).
type RGBToMono2 struct{ transform.Base }

func (t RGBToMono2) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	return dcmimage.New(src.Width(), src.Height(), "MONOCHROME2", src.Depth(), src.HighBit())
}

func (t RGBToMono2) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
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

	rh := src.NewReadHandler()
	wh := dst.NewWriteHandler()
	for r := 0; r < srcRect.H; r++ {
		srcRow := ((srcRect.Y+r)*src.Width() + srcRect.X) * 3
		dstRow := (dstY+r)*dst.Width() + dstX
		for c := 0; c < srcRect.W; c++ {
			i := srcRow + c*3
			rr := rh.At(i) - inMin
			g := rh.At(i+1) - inMin
			b := rh.At(i+2) - inMin
			y64 := outMin + (lumaWR*rr+lumaWG*g+lumaWB*b+lumaRound)>>14
			wh.Set(dstRow+c, dcmimage.Clamp(y64, dst.Depth(), dst.HighBit()))
		}
	}
	wh.Release()
	return nil
}

func (t RGBToMono2) IsEmpty() bool { return false }

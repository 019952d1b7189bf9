package colortransform

import (
	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/transform"
)

// RGBToYBRRCT implements the reversible color transform (DICOM PS3.5 Annex
// H, used by lossless JPEG 2000): Y = ((R+2G+B)>>2)+outMin,
// Cb = (B-G)+outMiddle, Cr = (R-G)+outMiddle. The output high bit is always
// one more than the input's, so the transform allocates its own output
// depth rather than using the default same-depth allocation.
type RGBToYBRRCT struct{ transform.Base }

func (t RGBToYBRRCT) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	outHighBit := src.HighBit() + 1
	depth := dcmimage.SmallestFor(outHighBit, src.Signed())
	return dcmimage.New(src.Width(), src.Height(), "YBR_RCT", depth, outHighBit)
}

func (t RGBToYBRRCT) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	if err := t.ValidateRect(srcRect, src, dst, dstX, dstY); err != nil {
		return err
	}
	if err := t.ValidateColorSpaces(src, "RGB"); err != nil {
		return err
	}
	if dst.HighBit() != src.HighBit()+1 {
		return transform.ErrDifferentHighBit
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

			yy := ((rr + 2*g + b) >> 2) + outMin
			cb := (b - g) + outMiddle
			cr := (rr - g) + outMiddle

			o := dstRow + c*3
			wh.Set(o, yy)
			wh.Set(o+1, clampRange(cb, outMin, outMax))
			wh.Set(o+2, clampRange(cr, outMin, outMax))
		}
	}
	wh.Release()
	return nil
}

func (t RGBToYBRRCT) IsEmpty() bool { return false }

// YBRRCTToRGB exactly inverts RGBToYBRRCT: G = Y - ((Cb+Cr)>>2), R = Cr+G,
// B = Cb+G (all relative to each image's own minimum). Given an RCT image
// produced by RGBToYBRRCT, running this transform reconstructs the
// original RGB samples exactly.
type YBRRCTToRGB struct{ transform.Base }

func (t YBRRCTToRGB) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	outHighBit := src.HighBit() - 1
	if outHighBit < 0 {
		outHighBit = 0
	}
	depth := dcmimage.SmallestFor(outHighBit, src.Signed())
	return dcmimage.New(src.Width(), src.Height(), "RGB", depth, outHighBit)
}

func (t YBRRCTToRGB) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	if err := t.ValidateRect(srcRect, src, dst, dstX, dstY); err != nil {
		return err
	}
	if err := t.ValidateColorSpaces(src, "YBR_RCT"); err != nil {
		return err
	}
	if src.HighBit() != dst.HighBit()+1 {
		return transform.ErrDifferentHighBit
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

			g := yy - ((cb + cr) >> 2)
			rr := cr + g
			b := cb + g

			o := dstRow + c*3
			wh.Set(o, clampRange(rr+outMin, outMin, outMax))
			wh.Set(o+1, clampRange(g+outMin, outMin, outMax))
			wh.Set(o+2, clampRange(b+outMin, outMin, outMax))
		}
	}
	wh.Release()
	return nil
}

func (t YBRRCTToRGB) IsEmpty() bool { return false }

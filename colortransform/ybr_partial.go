package colortransform

import (
	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/transform"
)

// RGBToYBRPartial converts RGB to YBR_PARTIAL using the BT.601 studio-range
// matrix (luma confined to the inner 7/8 of the output range).
type RGBToYBRPartial struct{ transform.Base }

func (t RGBToYBRPartial) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	return dcmimage.New(src.Width(), src.Height(), "YBR_PARTIAL", src.Depth(), src.HighBit())
}

func (t RGBToYBRPartial) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
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
	minY := outMin + (int64(1) << uint(dst.HighBit()-3))

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

			yy := minY + (4207*rr+8259*g+1604*b+8191)>>14
			cb := outMiddle + (7196*b-2428*rr-4768*g+8191)>>14
			cr := outMiddle + (7196*rr-6026*g-1170*b+8191)>>14

			o := dstRow + c*3
			wh.Set(o, clampRange(yy, outMin, outMax))
			wh.Set(o+1, clampRange(cb, outMin, outMax))
			wh.Set(o+2, clampRange(cr, outMin, outMax))
		}
	}
	wh.Release()
	return nil
}

func (t RGBToYBRPartial) IsEmpty() bool { return false }

package colortransform

import (
	"errors"

	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/transform"
)

// ErrNoPalette indicates PaletteToRGB ran against an image with no bound
// palette.
var ErrNoPalette = errors.New("colortransform: PALETTE COLOR image has no palette")

// PaletteToRGB expands a PALETTE COLOR image's per-pixel index through the
// image's bound red/green/blue LUTs.
type PaletteToRGB struct{ transform.Base }

func (t PaletteToRGB) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	return dcmimage.New(src.Width(), src.Height(), "RGB", src.Depth(), src.HighBit())
}

// Run reads each index as a signed sample and writes
// (outMin+red.map(i), outMin+green.map(i), outMin+blue.map(i)).
func (t PaletteToRGB) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	if err := t.ValidateRect(srcRect, src, dst, dstX, dstY); err != nil {
		return err
	}
	if err := t.ValidateColorSpaces(src, "PALETTE COLOR"); err != nil {
		return err
	}

	pal := src.Palette()
	if pal == nil {
		return ErrNoPalette
	}

	outMin := dcmimage.MinValue(dst.Depth(), dst.HighBit())

	rh := src.NewReadHandler()
	wh := dst.NewWriteHandler()
	for r := 0; r < srcRect.H; r++ {
		srcRow := (srcRect.Y+r)*src.Width() + srcRect.X
		dstRow := ((dstY+r)*dst.Width() + dstX) * 3
		for c := 0; c < srcRect.W; c++ {
			idx := rh.At(srcRow + c)
			o := dstRow + c*3
			wh.Set(o, outMin+int64(pal.Red.Map(idx)))
			wh.Set(o+1, outMin+int64(pal.Green.Map(idx)))
			wh.Set(o+2, outMin+int64(pal.Blue.Map(idx)))
		}
	}
	wh.Release()
	return nil
}

func (t PaletteToRGB) IsEmpty() bool { return false }

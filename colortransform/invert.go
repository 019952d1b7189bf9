// Package colortransform implements the concrete pixel transforms between
// DICOM photometric interpretations: monochrome inversion, palette
// expansion, and the RGB/YBR_FULL/YBR_PARTIAL/YBR_ICT/YBR_RCT conversions,
// all built on transform.Transform and registered into transform.Global()
// at package init.
package colortransform

import (
	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/transform"
)

// Invert converts MONOCHROME1 to MONOCHROME2 or back; the formula is its
// own inverse so one type serves both directions.
type Invert struct {
	transform.Base
	From, To string
}

// AllocateOutputImage returns an image of the same size, depth, and high
// bit as src, with color space To.
func (t Invert) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	return dcmimage.New(src.Width(), src.Height(), t.To, src.Depth(), src.HighBit())
}

// Run applies out = outMin + (inputNumValuesMinusOne - (in - inMin)).
func (t Invert) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	if err := t.ValidateRect(srcRect, src, dst, dstX, dstY); err != nil {
		return err
	}
	if err := t.ValidateColorSpaces(src, t.From); err != nil {
		return err
	}
	if err := t.ValidateSameHighBit(src, dst); err != nil {
		return err
	}

	inMin := dcmimage.MinValue(src.Depth(), src.HighBit())
	outMin := dcmimage.MinValue(dst.Depth(), dst.HighBit())
	numValuesMinusOne := dcmimage.NumValuesMinusOne(src.HighBit())

	rh := src.NewReadHandler()
	wh := dst.NewWriteHandler()
	for r := 0; r < srcRect.H; r++ {
		srcRow := (srcRect.Y+r)*src.Width() + srcRect.X
		dstRow := (dstY+r)*dst.Width() + dstX
		for c := 0; c < srcRect.W; c++ {
			wh.Set(dstRow+c, outMin+(numValuesMinusOne-(rh.At(srcRow+c)-inMin)))
		}
	}
	wh.Release()
	return nil
}

// IsEmpty is always false: inversion always changes sample values.
func (t Invert) IsEmpty() bool { return false }

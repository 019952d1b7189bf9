package transform

import "github.com/dcmpixel/dcmpixel/dcmimage"

// HighBit rescales an image's samples to a new high bit within the same
// color space, widening or narrowing the storage depth as needed
// (DICOM PS3.3 C.7.6.3.1.2, "Pixel Data Transformation").
type HighBit struct {
	Base
	TargetHighBit int
	TargetSigned  bool
}

// AllocateOutputImage returns an image of src's size and color space at
// TargetHighBit, using the smallest depth able to hold it.
func (t HighBit) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	depth := dcmimage.SmallestFor(t.TargetHighBit, t.TargetSigned)
	return dcmimage.New(src.Width(), src.Height(), src.ColorSpace(), depth, t.TargetHighBit)
}

// Run rescales every sample of srcRect from src's high bit to dst's.
// Input and output color spaces must already agree; otherwise
// ErrDifferentColorSpaces.
func (t HighBit) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	if err := t.ValidateRect(srcRect, src, dst, dstX, dstY); err != nil {
		return err
	}
	if src.ColorSpace() != dst.ColorSpace() {
		return ErrDifferentColorSpaces
	}

	srcHB, dstHB := src.HighBit(), dst.HighBit()
	srcMin := dcmimage.MinValue(src.Depth(), srcHB)
	dstMin := dcmimage.MinValue(dst.Depth(), dstHB)

	shift := dstHB - srcHB

	rh := src.NewReadHandler()
	wh := dst.NewWriteHandler()
	channels := src.Channels()

	for r := 0; r < srcRect.H; r++ {
		srcRow := ((srcRect.Y+r)*src.Width() + srcRect.X) * channels
		dstRow := ((dstY+r)*dst.Width() + dstX) * channels
		for c := 0; c < srcRect.W*channels; c++ {
			v := rh.At(srcRow+c) - srcMin
			if shift >= 0 {
				v <<= uint(shift)
			} else {
				v >>= uint(-shift)
			}
			wh.Set(dstRow+c, dcmimage.Clamp(v+dstMin, dst.Depth(), dstHB))
		}
	}
	wh.Release()
	return nil
}

// IsEmpty is always false: a HighBit transform always exists to perform a
// rescale, even when source and target high bit happen to coincide.
func (t HighBit) IsEmpty() bool { return false }

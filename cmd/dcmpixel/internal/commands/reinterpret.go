package commands

import (
	"fmt"

	"github.com/dcmpixel/dcmpixel/colorspace"
	"github.com/dcmpixel/dcmpixel/dcmimage"
)

// reinterpretColorSpace returns a copy of img whose reported color space is
// name instead of whatever the dataset's Photometric Interpretation said,
// carrying the same raw samples forward unchanged. This lets --colorspace
// force a specific transform.Catalog lookup (e.g. to exercise a conversion
// standalone) instead of always trusting the decoded metadata.
func reinterpretColorSpace(img *dcmimage.Image, name string) (*dcmimage.Image, error) {
	norm := colorspace.Normalize(name)
	channels, err := colorspace.Channels(norm)
	if err != nil {
		return nil, err
	}
	if channels != img.Channels() {
		return nil, fmt.Errorf("dcmpixel: --colorspace %s needs %d channels per pixel, decoded frame has %d",
			norm, channels, img.Channels())
	}

	out, err := dcmimage.New(img.Width(), img.Height(), norm, img.Depth(), img.HighBit())
	if err != nil {
		return nil, err
	}

	src := img.NewReadHandler()
	dst := out.NewWriteHandler()
	for i := 0; i < src.Len(); i++ {
		dst.Set(i, src.At(i))
	}
	dst.Release()

	return out, nil
}

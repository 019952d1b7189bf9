package dcmimage

import "errors"

var (
	// ErrInvalidImageSize indicates an Image was constructed with width==0
	// or height==0.
	ErrInvalidImageSize = errors.New("dcmimage: invalid image size")

	// ErrUnknownDepth indicates a Depth value outside the six supported
	// depths.
	ErrUnknownDepth = errors.New("dcmimage: unknown depth")

	// ErrMissingTag indicates an optional field (e.g. an overlay ROI
	// statistic) was accessed without having been set.
	ErrMissingTag = errors.New("dcmimage: missing tag")

	// ErrPaletteMismatch indicates the three LUTs passed to NewPalette do
	// not share bits/size.
	ErrPaletteMismatch = errors.New("dcmimage: palette LUTs must share bits and size")

	// ErrWrongColorSpaceForPalette indicates SetPalette was called on an
	// Image whose color space is not PALETTE COLOR.
	ErrWrongColorSpaceForPalette = errors.New("dcmimage: palette requires PALETTE COLOR color space")
)

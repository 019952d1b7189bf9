package transform

import "errors"

var (
	// ErrWrongColorSpace indicates a transform was run against an image
	// whose color space does not match the transform's expected input.
	ErrWrongColorSpace = errors.New("transform: wrong color space for this transform")

	// ErrDifferentHighBit indicates two images involved in a transform
	// (e.g. a chain's input and a pre-allocated output) disagree on high
	// bit where the transform requires them to match.
	ErrDifferentHighBit = errors.New("transform: images have different high bit")

	// ErrDifferentColorSpaces indicates two images disagree on color space
	// where the transform requires them to match.
	ErrDifferentColorSpaces = errors.New("transform: images have different color spaces")

	// ErrInvalidTransformArea indicates a requested Rect falls outside an
	// image's bounds.
	ErrInvalidTransformArea = errors.New("transform: area outside image bounds")

	// ErrNoTransformAvailable indicates the catalog has no registered path
	// (direct or two-step) between a pair of color spaces.
	ErrNoTransformAvailable = errors.New("transform: no transform available between color spaces")
)

// Package transform defines the pixel transform contract (DICOM PS3.3
// C.7.6.3.1.2): an operator that maps one Image to another, plus the
// catalog that looks up a transform by source/destination color space.
//
// transform depends on dcmimage and colorspace but neither of those depends
// back on transform, so colortransform and voilut (the concrete transforms)
// can import all three without creating a cycle.
package transform

import "github.com/dcmpixel/dcmpixel/dcmimage"

// Transform maps pixels from a source Image to a destination Image.
type Transform interface {
	// AllocateOutputImage returns a new Image of the size and color space
	// this transform produces for the given input.
	AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error)

	// Run applies the transform over srcRect of src, writing into dst
	// starting at (dstX, dstY). srcRect must lie within src, and the
	// equally-sized region at (dstX, dstY) must lie within dst.
	Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error

	// IsEmpty reports whether the transform is a no-op identity (used by
	// chain.Chain to skip allocating an intermediate image).
	IsEmpty() bool
}

// Factory constructs the Transform for one src/dst color-space pair.
type Factory func() Transform

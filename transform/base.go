package transform

import "github.com/dcmpixel/dcmpixel/dcmimage"

// Base is embedded by concrete transforms to share the validation steps
// every Run implementation performs before touching pixels.
type Base struct{}

// ValidateRect checks that srcRect lies within src and that the
// equally-sized region at (dstX, dstY) lies within dst.
func (Base) ValidateRect(srcRect dcmimage.Rect, src *dcmimage.Image, dst *dcmimage.Image, dstX, dstY int) error {
	if !srcRect.Within(src.Width(), src.Height()) {
		return ErrInvalidTransformArea
	}
	dstRect := dcmimage.Rect{X: dstX, Y: dstY, W: srcRect.W, H: srcRect.H}
	if !dstRect.Within(dst.Width(), dst.Height()) {
		return ErrInvalidTransformArea
	}
	return nil
}

// ValidateColorSpaces checks that src's color space equals want.
func (Base) ValidateColorSpaces(src *dcmimage.Image, want string) error {
	if src.ColorSpace() != want {
		return ErrWrongColorSpace
	}
	return nil
}

// ValidateSameHighBit checks that a and b share a high bit.
func (Base) ValidateSameHighBit(a, b *dcmimage.Image) error {
	if a.HighBit() != b.HighBit() {
		return ErrDifferentHighBit
	}
	return nil
}

// Sample is the set of element types dcmimage's six depths correspond to.
// The concrete transforms in this module do not use it: they read and write
// every depth as int64 through dcmimage's read/write handlers.
type Sample interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32
}

// ClampTo clamps v to [lo, hi] and converts the result to T.
func ClampTo[T Sample](v, lo, hi int64) T {
	switch {
	case v < lo:
		v = lo
	case v > hi:
		v = hi
	}
	return T(v)
}

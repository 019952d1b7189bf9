package bitmap

import "errors"

var (
	// ErrBufferTooSmall indicates the caller's buffer is nil or smaller
	// than the size GetBitmap requires for the requested format and row
	// alignment.
	ErrBufferTooSmall = errors.New("bitmap: destination buffer too small")

	// ErrInvalidRowAlign indicates a row alignment below 1.
	ErrInvalidRowAlign = errors.New("bitmap: row alignment must be at least 1")
)

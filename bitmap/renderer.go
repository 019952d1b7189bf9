// Package bitmap implements the bitmap renderer (DICOM PS3.3
// C.7.6.3.1.2-adjacent display path): it pipes an image through an optional
// user transforms chain, forces the result to RGB at (depth=U8, high_bit=7),
// and emits a row-aligned byte buffer in RGB, BGR, RGBA, or BGRA order.
package bitmap

import (
	"github.com/dcmpixel/dcmpixel/chain"
	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/diagnostic"
	"github.com/dcmpixel/dcmpixel/transform"
)

// Format selects the byte layout GetBitmap writes.
type Format int

const (
	RGB Format = iota
	BGR
	RGBA
	BGRA
)

// PixelSize returns the number of bytes GetBitmap writes per pixel for f: 3
// for RGB/BGR, 4 for RGBA/BGRA.
func (f Format) PixelSize() int {
	if f.hasAlpha() {
		return 4
	}
	return 3
}

func (f Format) hasAlpha() bool { return f == RGBA || f == BGRA }
func (f Format) reversed() bool { return f == BGR || f == BGRA }

// AlignUp rounds n up to the next multiple of align (align must be >= 1).
func AlignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	if rem := n % align; rem != 0 {
		return n + (align - rem)
	}
	return n
}

// Renderer assembles a user transforms chain with whatever color-space and
// high-bit transforms are needed to reach RGB U8 high_bit=7, and renders the
// result into a caller-supplied byte buffer.
type Renderer struct {
	// Chain is the caller's own transform sequence, run before the
	// renderer's own color-space/high-bit stages. A nil Chain behaves as
	// an empty one.
	Chain *chain.Chain

	// Catalog resolves the end_color_space -> RGB transform when the
	// chain's predicted output isn't already RGB. A nil Catalog uses
	// transform.Global().
	Catalog *transform.Catalog

	// Diagnostics receives a report at Error severity for every failure
	// GetBitmap returns, if a Sink has been installed. A zero Diagnostics
	// discards every report.
	Diagnostics diagnostic.Context
}

func (r *Renderer) catalog() *transform.Catalog {
	if r.Catalog != nil {
		return r.Catalog
	}
	return transform.Global()
}

// pipeline assembles the full stage sequence for src: the user chain's
// stages, followed by an end_color_space -> RGB transform if the predicted
// output isn't RGB, followed by a high-bit transform if the predicted output
// isn't (U8, high_bit=7).
func (r *Renderer) pipeline(src *dcmimage.Image) (*chain.Chain, error) {
	var stages []transform.Transform
	if r.Chain != nil {
		stages = r.Chain.Stages()
	}

	predicted := src
	if len(stages) > 0 {
		full := chain.FromStages(stages)
		out, err := full.AllocateOutputImage(src)
		if err != nil {
			return nil, err
		}
		predicted = out
	}

	if predicted.ColorSpace() != "RGB" {
		t, err := r.catalog().Lookup(predicted.ColorSpace(), "RGB")
		if err != nil {
			return nil, err
		}
		stages = append(stages, t)
		predicted, err = t.AllocateOutputImage(predicted)
		if err != nil {
			return nil, err
		}
	}

	if predicted.Depth() != dcmimage.U8 || predicted.HighBit() != 7 {
		stages = append(stages, transform.HighBit{TargetHighBit: 7, TargetSigned: false})
	}

	return chain.FromStages(stages), nil
}

// RequiredSize returns the number of bytes GetBitmap needs to render src at
// width x height in format f with the given row alignment.
func RequiredSize(width, height int, f Format, rowAlign int) int {
	return AlignUp(width*f.PixelSize(), rowAlign) * height
}

// GetBitmap renders src into buffer using format f and row alignment
// rowAlign. If buffer is nil or smaller than the required size, GetBitmap
// writes nothing and returns the required size alongside
// ErrBufferTooSmall. On success it returns the number of bytes written
// (equal to the required size) and a nil error.
func (r *Renderer) GetBitmap(src *dcmimage.Image, f Format, rowAlign int, buffer []byte) (int, error) {
	n, err := r.getBitmap(src, f, rowAlign, buffer)
	if err != nil && err != ErrBufferTooSmall {
		r.Diagnostics.ReportError(err)
	}
	return n, err
}

func (r *Renderer) getBitmap(src *dcmimage.Image, f Format, rowAlign int, buffer []byte) (int, error) {
	if rowAlign < 1 {
		return 0, ErrInvalidRowAlign
	}

	width, height := src.Width(), src.Height()
	pixelSize := f.PixelSize()
	rowBytes := AlignUp(width*pixelSize, rowAlign)
	required := rowBytes * height

	if buffer == nil || len(buffer) < required {
		return required, ErrBufferTooSmall
	}

	rgb := src
	pipe, err := r.pipeline(src)
	if err != nil {
		return 0, err
	}
	if !pipe.IsEmpty() {
		rgb, err = pipe.AllocateOutputImage(src)
		if err != nil {
			return 0, err
		}
		if err := pipe.Run(src, rgb); err != nil {
			return 0, err
		}
	}

	rh := rgb.NewReadHandler()
	pos := 0
	for y := 0; y < height; y++ {
		rowStart := y * width * 3
		for x := 0; x < width; x++ {
			i := rowStart + x*3
			red := byte(rh.At(i))
			green := byte(rh.At(i + 1))
			blue := byte(rh.At(i + 2))
			if f.reversed() {
				buffer[pos], buffer[pos+1], buffer[pos+2] = blue, green, red
			} else {
				buffer[pos], buffer[pos+1], buffer[pos+2] = red, green, blue
			}
			pos += 3
			if f.hasAlpha() {
				buffer[pos] = 0xFF
				pos++
			}
		}
		for pad := width * pixelSize; pad < rowBytes; pad++ {
			buffer[pos] = 0
			pos++
		}
	}

	return required, nil
}

// Package external declares the narrow collaborator interfaces that supply
// input to the core packages (dcmimage, colortransform, voilut, chain,
// bitmap); the core packages do not import it, and package dicomset
// implements DatasetSource and CodecFactory: a decoded dataset source, a codec that turns
// an encoded pixel-data fragment into an Image, and byte-stream reader/
// writer abstractions (DICOM PS3.3/PS3.5 kept firmly outside the core per
// spec.md §6).
package external

import "github.com/dcmpixel/dcmpixel/dcmimage"

// DatasetSource supplies the decoded values the core needs from a DICOM
// dataset: frame images, overlays, LUTs, VOI candidates, modality rescale
// parameters, and the per-frame functional-group sub-dataset used by
// multi-frame images whose imaging parameters vary frame to frame.
type DatasetSource interface {
	// FrameImage decodes and returns the Image for the given 0-based
	// frame index.
	FrameImage(frame int) (*dcmimage.Image, error)

	// Overlay returns the overlay bound to the given overlay group
	// (0x6000, 0x6002, ... 0x601E).
	Overlay(group uint16) (*dcmimage.Overlay, error)

	// LUT returns the lookup table stored under the given element tag
	// (group, element), e.g. the Modality LUT Sequence's LUT Data.
	LUT(group, element uint16) (*dcmimage.LUT, error)

	// Palette returns the red/green/blue LUT triple for a PALETTE COLOR
	// image.
	Palette() (*dcmimage.Palette, error)

	// VOIList returns the dataset's ordered VOI window candidates.
	VOIList() (dcmimage.VOIList, error)

	// ModalityRescale returns the Rescale Slope/Intercept pair, or ok=false
	// unless both are present.
	ModalityRescale() (slope, intercept float64, ok bool)

	// FunctionalGroup returns the per-frame functional-group sub-dataset
	// for the given 0-based frame index, for datasets whose imaging
	// parameters vary by frame (DICOM PS3.3 C.7.6.16).
	FunctionalGroup(frame int) (DatasetSource, error)
}

// CodecFactory decodes one encoded pixel-data frame into an Image. The core
// requires only this direction: it never encodes.
type CodecFactory interface {
	// DecodeFrame turns data (one frame's encoded bytes, in the transfer
	// syntax identified by transferSyntaxUID) into an Image matching the
	// given dataset attributes.
	DecodeFrame(
		data []byte,
		transferSyntaxUID string,
		columns, rows int,
		samplesPerPixel uint16,
		photometricInterpretation string,
		bitsAllocated, bitsStored, highBit, pixelRepresentation uint16,
	) (*dcmimage.Image, error)
}

// StreamReader is a sequential byte source the core never blocks on
// directly; it is read only by DatasetSource/CodecFactory implementations
// and the bitmap renderer's caller.
type StreamReader interface {
	Read(p []byte) (n int, err error)

	// Terminate releases any resources the reader holds, independent of
	// having reached EOF.
	Terminate() error
}

// StreamWriter is a sequential byte sink, the mirror of StreamReader.
type StreamWriter interface {
	Write(p []byte) (n int, err error)
	Terminate() error
}

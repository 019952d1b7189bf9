// Package voilut implements the Modality VOI/LUT and VOI/LUT transforms
// (DICOM PS3.3 C.11.2 "VOI LUT Module" and the C.11.1 Modality LUT that
// precedes it): rescale-slope/intercept or LUT-based conversion to modality units,
// and window/level or LUT-based conversion to a display range.
package voilut

import "errors"

// ErrModalityVOI indicates a Modality VOI/LUT transform ran against a
// non-monochrome image.
var ErrModalityVOI = errors.New("voilut: modality VOI/LUT requires a monochrome image")

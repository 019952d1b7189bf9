// Package colorspace normalizes DICOM photometric interpretation names and
// exposes their channel counts and subsampling eligibility. It knows nothing
// about transforms or images; the transform catalog (package transform)
// layers the transform-lookup behavior of DICOM PS3.3 C.7.6.3.1.2 on top of
// the naming oracle this package provides.
package colorspace

import (
	"errors"
	"strings"
)

// ErrUnknownColorSpace indicates a name outside the known registry.
var ErrUnknownColorSpace = errors.New("colorspace: unknown color space")

// Entry describes one recognized color space.
type Entry struct {
	Name         string // normalized name
	Channels     int
	CanSubsample bool
	Monochrome   bool
}

var registry = map[string]Entry{
	"RGB":           {"RGB", 3, false, false},
	"YBR_FULL":      {"YBR_FULL", 3, true, false},
	"YBR_PARTIAL":   {"YBR_PARTIAL", 3, true, false},
	"YBR_RCT":       {"YBR_RCT", 3, true, false},
	"YBR_ICT":       {"YBR_ICT", 3, true, false},
	"PALETTE COLOR": {"PALETTE COLOR", 1, false, false},
	"CMYK":          {"CMYK", 4, false, false},
	"CMY":           {"CMY", 3, false, false},
	"MONOCHROME2":   {"MONOCHROME2", 1, false, true},
	"MONOCHROME1":   {"MONOCHROME1", 1, false, true},
}

// Normalize strips a "_422" or "_420" chroma-subsampling suffix (matched
// from the first occurrence of "_42" onward) and upper-cases the result.
func Normalize(name string) string {
	if idx := strings.Index(name, "_42"); idx >= 0 {
		name = name[:idx]
	}
	return strings.ToUpper(name)
}

// IsSubsampledX reports whether name carries any "_42" chroma-subsampling
// marker (either 4:2:2 or 4:2:0).
func IsSubsampledX(name string) bool {
	return strings.Contains(name, "_42")
}

// IsSubsampledY reports whether name carries the 4:2:0 marker.
func IsSubsampledY(name string) bool {
	return strings.Contains(name, "_420")
}

// CanSubsample reports whether the normalized color space accepts a chroma
// subsampling suffix (every YBR_* space).
func CanSubsample(name string) bool {
	return strings.HasPrefix(Normalize(name), "YBR_")
}

// MakeSubsampled appends the subsampling suffix implied by sx/sy to the
// normalized name, or returns the normalized name unchanged if it cannot be
// subsampled.
func MakeSubsampled(name string, sx, sy bool) string {
	norm := Normalize(name)
	if !CanSubsample(norm) {
		return norm
	}
	switch {
	case sy:
		return norm + "_420"
	case sx:
		return norm + "_422"
	default:
		return norm
	}
}

// Lookup returns the registry Entry for name after normalization.
func Lookup(name string) (Entry, bool) {
	e, ok := registry[Normalize(name)]
	return e, ok
}

// Channels returns the channel count for name, or ErrUnknownColorSpace if
// name is not recognized.
func Channels(name string) (int, error) {
	e, ok := Lookup(name)
	if !ok {
		return 0, ErrUnknownColorSpace
	}
	return e.Channels, nil
}

// IsMonochrome reports whether name (after normalization) is a single-sample
// grayscale space (MONOCHROME1 or MONOCHROME2).
func IsMonochrome(name string) bool {
	e, ok := Lookup(name)
	return ok && e.Monochrome
}

package dcmimage

// LUT is a lookup table mapping integer sample indices to output values.
//
// Entries outside [firstMapped, firstMapped+size) clamp to the nearest
// boundary entry (DICOM PS3.3 C.11.1: "Lookup Table Data").
type LUT struct {
	bits        int
	size        int
	firstMapped int64
	entries     []uint32
	description string
}

// NewLUT allocates a LUT with size zero-valued entries of the given output
// bit width, rooted at firstMapped.
func NewLUT(bits, size int, firstMapped int64, description string) *LUT {
	return &LUT{
		bits:        bits,
		size:        size,
		firstMapped: firstMapped,
		entries:     make([]uint32, size),
		description: description,
	}
}

// Bits returns the output element width in bits (1..16).
func (l *LUT) Bits() int { return l.bits }

// Size returns the number of mapped entries.
func (l *LUT) Size() int { return l.size }

// FirstMapped returns the signed index of the first mapped entry.
func (l *LUT) FirstMapped() int64 { return l.firstMapped }

// Description returns the LUT's descriptive text.
func (l *LUT) Description() string { return l.description }

// Set stores v at entry i (0-based, not a sample index).
func (l *LUT) Set(i int, v uint32) { l.entries[i] = v }

// Get returns the raw entry at i (0-based, not a sample index).
func (l *LUT) Get(i int) uint32 { return l.entries[i] }

// Map applies the LUT-index clamp rule to a signed sample index: values
// below firstMapped clamp to entry 0, values at or beyond
// firstMapped+size clamp to the last entry, and values inside the range map
// to entry (index - firstMapped).
func (l *LUT) Map(index int64) uint32 {
	if l.size == 0 {
		return 0
	}
	rel := index - l.firstMapped
	switch {
	case rel < 0:
		return l.entries[0]
	case rel >= int64(l.size):
		return l.entries[l.size-1]
	default:
		return l.entries[rel]
	}
}

package dcmimage

// Palette is an ordered triple of LUTs (red, green, blue) that expand a
// PALETTE COLOR image's per-pixel index into RGB.
type Palette struct {
	Red, Green, Blue *LUT
}

// NewPalette validates that the three LUTs share bits and size before
// binding them into a Palette.
func NewPalette(red, green, blue *LUT) (*Palette, error) {
	if red.Bits() != green.Bits() || green.Bits() != blue.Bits() {
		return nil, ErrPaletteMismatch
	}
	if red.Size() != green.Size() || green.Size() != blue.Size() {
		return nil, ErrPaletteMismatch
	}
	return &Palette{Red: red, Green: green, Blue: blue}, nil
}

// Bits returns the shared output bit width of the three LUTs.
func (p *Palette) Bits() int { return p.Red.Bits() }

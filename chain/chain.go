// Package chain implements the transforms chain (DICOM PS3.3
// C.7.6.3.1.2): an ordered sequence of transform.Transform run end to end,
// streamed through row strips so the sequence's intermediate images stay
// bounded in size regardless of the input image's dimensions.
package chain

import "github.com/dcmpixel/dcmpixel/dcmimage"
import "github.com/dcmpixel/dcmpixel/diagnostic"
import "github.com/dcmpixel/dcmpixel/transform"

// maxStripPixels bounds a strip's pixel count so each per-stage
// intermediate image stays small regardless of the input's full height.
const maxStripPixels = 65536

// Chain holds an ordered sequence of non-empty transforms.
type Chain struct {
	transform.Base
	stages []transform.Transform

	// Diagnostics receives a report at Error severity for every failure
	// Run returns, if a Sink has been installed (see diagnostic.Context).
	// A zero Diagnostics discards every report.
	Diagnostics diagnostic.Context
}

// New returns an empty Chain.
func New() *Chain { return &Chain{} }

// Add appends t to the chain. A nil t is ignored; a t whose IsEmpty is
// true is a silent no-op, matching spec: empty transforms never appear in
// the stored sequence.
func (c *Chain) Add(t transform.Transform) {
	if t == nil || t.IsEmpty() {
		return
	}
	c.stages = append(c.stages, t)
}

// IsEmpty reports whether the chain holds no stages.
func (c *Chain) IsEmpty() bool { return len(c.stages) == 0 }

// Stages returns a copy of the chain's stage sequence, letting a caller
// (e.g. the bitmap renderer) inspect a user-supplied chain in order to
// assemble a longer chain that appends further stages after it.
func (c *Chain) Stages() []transform.Transform {
	out := make([]transform.Transform, len(c.stages))
	copy(out, c.stages)
	return out
}

// FromStages returns a Chain running exactly the given stages in order, with
// no filtering: callers that already filtered nil/empty transforms (e.g. via
// Stages) get them back unchanged.
func FromStages(stages []transform.Transform) *Chain {
	c := &Chain{stages: make([]transform.Transform, len(stages))}
	copy(c.stages, stages)
	return c
}

// AllocateOutputImage walks the stage sequence: each stage but the last
// allocates its predecessor's real, full-size output purely to learn the
// next stage's expected input shape; the final stage's allocation is the
// real chain output.
func (c *Chain) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	if c.IsEmpty() {
		return transform.HighBit{TargetHighBit: src.HighBit(), TargetSigned: src.Signed()}.AllocateOutputImage(src)
	}

	shape := src
	for i := 0; i < len(c.stages)-1; i++ {
		out, err := c.stages[i].AllocateOutputImage(shape)
		if err != nil {
			return nil, err
		}
		shape = out
	}
	return c.stages[len(c.stages)-1].AllocateOutputImage(shape)
}

// stripRows computes the strip height used by Run: enough rows to bound
// each intermediate to roughly maxStripPixels pixels, but at least one row
// and never more than the image's own height.
func stripRows(width, height int) int {
	rows := maxStripPixels / width
	if rows < 1 {
		rows = 1
	}
	if rows > height {
		rows = height
	}
	return rows
}

// Run executes the chain over the full extent of src into dst.
//
// An empty chain delegates to a same-shape high-bit transform. A
// single-stage chain runs that stage directly. Otherwise Run streams the
// image through the stage sequence strip by strip: one intermediate image
// per stage but the last, each sized width x stripRows and shaped by its
// predecessor's AllocateOutputImage, reused across every strip. This
// bounds intermediate memory to roughly
// maxStripPixels x len(stages) x bytes-per-pixel, independent of the
// image's total size.
func (c *Chain) Run(src, dst *dcmimage.Image) error {
	if err := c.run(src, dst); err != nil {
		c.Diagnostics.ReportError(err)
		return err
	}
	return nil
}

func (c *Chain) run(src, dst *dcmimage.Image) error {
	if c.IsEmpty() {
		ht := transform.HighBit{TargetHighBit: dst.HighBit(), TargetSigned: dst.Signed()}
		return ht.Run(src, src.Rect(), dst, 0, 0)
	}
	if len(c.stages) == 1 {
		return c.stages[0].Run(src, src.Rect(), dst, 0, 0)
	}

	width, height := src.Width(), src.Height()
	rows := stripRows(width, height)

	intermediates := make([]*dcmimage.Image, len(c.stages)-1)
	shape := src
	for i := 0; i < len(c.stages)-1; i++ {
		out, err := c.stages[i].AllocateOutputImage(shape)
		if err != nil {
			return err
		}
		strip, err := dcmimage.New(width, rows, out.ColorSpace(), out.Depth(), out.HighBit())
		if err != nil {
			return err
		}
		intermediates[i] = strip
		shape = strip
	}

	for y := 0; y < height; y += rows {
		h := rows
		if y+h > height {
			h = height - y
		}
		inRect := dcmimage.Rect{X: 0, Y: y, W: width, H: h}
		stripRect := dcmimage.Rect{X: 0, Y: 0, W: width, H: h}

		if err := c.stages[0].Run(src, inRect, intermediates[0], 0, 0); err != nil {
			return err
		}
		for i := 1; i < len(intermediates); i++ {
			if err := c.stages[i].Run(intermediates[i-1], stripRect, intermediates[i], 0, 0); err != nil {
				return err
			}
		}
		last := c.stages[len(c.stages)-1]
		if err := last.Run(intermediates[len(intermediates)-1], stripRect, dst, 0, y); err != nil {
			return err
		}
	}
	return nil
}

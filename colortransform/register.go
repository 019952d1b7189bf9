package colortransform

import "github.com/dcmpixel/dcmpixel/transform"

// init registers the built-in direct factory set (spec §4.2's "built-in
// factory set") into the shared catalog. A pair not registered here is
// reachable only when one registered pair leads from its source to an
// intermediate space that has a registered pair to its destination — e.g.
// MONOCHROME2<->YBR_FULL is never registered directly, it composes through
// RGB. Pairs that would need two intermediates (MONOCHROME1<->YBR_*) and
// every pair involving CMYK or CMY have no path: Lookup returns
// ErrNoTransformAvailable for them.
func init() {
	c := transform.Global()

	c.Register("MONOCHROME1", "MONOCHROME2", func() transform.Transform {
		return Invert{From: "MONOCHROME1", To: "MONOCHROME2"}
	})
	c.Register("MONOCHROME2", "MONOCHROME1", func() transform.Transform {
		return Invert{From: "MONOCHROME2", To: "MONOCHROME1"}
	})

	c.Register("MONOCHROME2", "RGB", func() transform.Transform { return Mono2ToRGB{} })
	c.Register("RGB", "MONOCHROME2", func() transform.Transform { return RGBToMono2{} })

	c.Register("PALETTE COLOR", "RGB", func() transform.Transform { return PaletteToRGB{} })

	c.Register("RGB", "YBR_FULL", func() transform.Transform { return NewRGBToYBRFull() })
	c.Register("YBR_FULL", "RGB", func() transform.Transform { return NewYBRFullToRGB() })

	c.Register("RGB", "YBR_ICT", func() transform.Transform { return NewRGBToYBRICT() })
	c.Register("YBR_ICT", "RGB", func() transform.Transform { return NewYBRICTToRGB() })

	c.Register("RGB", "YBR_PARTIAL", func() transform.Transform { return RGBToYBRPartial{} })
	c.Register("YBR_PARTIAL", "RGB", func() transform.Transform { return NewYBRPartialToRGB() })

	c.Register("RGB", "YBR_RCT", func() transform.Transform { return RGBToYBRRCT{} })
	c.Register("YBR_RCT", "RGB", func() transform.Transform { return YBRRCTToRGB{} })
}

package transform

import (
	"github.com/dcmpixel/dcmpixel/colorspace"
	"github.com/dcmpixel/dcmpixel/dcmimage"
)

// pair is a normalized (source, destination) color-space key.
type pair struct {
	src, dst string
}

// Catalog is a registry of direct transform factories keyed by
// (source color space, destination color space), with a two-step lookup
// ("registry as data, not inheritance": DICOM PS3.3 C.7.6.3.1.2 enumerates
// color-space conversions as pairwise rules, not a class hierarchy) that
// composes two direct factories through one intermediate color space when
// no direct path is registered.
type Catalog struct {
	direct map[pair]Factory
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{direct: make(map[pair]Factory)}
}

// global is the process-wide catalog colortransform and voilut register
// into from their init functions.
var global = NewCatalog()

// Global returns the shared catalog used by package init-time registration.
func Global() *Catalog { return global }

// Register binds a Factory for one direct src -> dst conversion.
func (c *Catalog) Register(src, dst string, f Factory) {
	c.direct[pair{colorspace.Normalize(src), colorspace.Normalize(dst)}] = f
}

// Lookup returns the Transform converting src to dst, trying a direct
// registration first and then a single intermediate hop through any
// color space reachable from src that also reaches dst.
func (c *Catalog) Lookup(src, dst string) (Transform, error) {
	src, dst = colorspace.Normalize(src), colorspace.Normalize(dst)
	if src == dst {
		return identity{}, nil
	}
	if f, ok := c.direct[pair{src, dst}]; ok {
		return f(), nil
	}
	for p, f1 := range c.direct {
		if p.src != src {
			continue
		}
		if f2, ok := c.direct[pair{p.dst, dst}]; ok {
			return compose{first: f1(), second: f2()}, nil
		}
	}
	return nil, ErrNoTransformAvailable
}

// identity is the Transform returned when src already equals dst. Chain
// never adds it as a stage (Add skips any IsEmpty transform), but
// catalog.Lookup can still hand one to a direct caller, so Run copies
// samples through rather than assuming src and dst are the same image.
type identity struct{ Base }

func (identity) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	return src, nil
}

func (identity) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	if src == dst && srcRect.X == dstX && srcRect.Y == dstY {
		return nil
	}
	channels := src.Channels()
	rh := src.NewReadHandler()
	wh := dst.NewWriteHandler()
	for r := 0; r < srcRect.H; r++ {
		srcRow := ((srcRect.Y+r)*src.Width() + srcRect.X) * channels
		dstRow := ((dstY+r)*dst.Width() + dstX) * channels
		for c := 0; c < srcRect.W*channels; c++ {
			wh.Set(dstRow+c, rh.At(srcRow+c))
		}
	}
	wh.Release()
	return nil
}

func (identity) IsEmpty() bool { return true }

// compose chains two direct transforms through an intermediate image.
type compose struct {
	Base
	first, second Transform
}

func (c compose) AllocateOutputImage(src *dcmimage.Image) (*dcmimage.Image, error) {
	mid, err := c.first.AllocateOutputImage(src)
	if err != nil {
		return nil, err
	}
	return c.second.AllocateOutputImage(mid)
}

func (c compose) Run(src *dcmimage.Image, srcRect dcmimage.Rect, dst *dcmimage.Image, dstX, dstY int) error {
	mid, err := c.first.AllocateOutputImage(src)
	if err != nil {
		return err
	}
	mid, err = dcmimage.New(srcRect.W, srcRect.H, mid.ColorSpace(), mid.Depth(), mid.HighBit())
	if err != nil {
		return err
	}
	if err := c.first.Run(src, srcRect, mid, 0, 0); err != nil {
		return err
	}
	midRect := dcmimage.Rect{X: 0, Y: 0, W: srcRect.W, H: srcRect.H}
	return c.second.Run(mid, midRect, dst, dstX, dstY)
}

func (c compose) IsEmpty() bool { return c.first.IsEmpty() && c.second.IsEmpty() }

package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dcmpixel/dcmpixel/bitmap"
	"github.com/dcmpixel/dcmpixel/chain"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/config"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/stream"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/ui"
	"github.com/dcmpixel/dcmpixel/dcmimage"
	"github.com/dcmpixel/dcmpixel/diagnostic"
	"github.com/dcmpixel/dcmpixel/dicomset"
	"github.com/dcmpixel/dcmpixel/voilut"
	"golang.org/x/time/rate"
)

// RenderCmd decodes one or more frames of a DICOM file and writes each as a
// row-aligned RGB/BGR(A) bitmap, through the Modality VOI/LUT and VOI/LUT
// transforms, a user color-space/high-bit pipeline, and the bitmap
// renderer.
type RenderCmd struct {
	Path string `arg:"" type:"existingfile" help:"DICOM file to render"`
	Out  string `name:"out" required:"" help:"Output path; a frame index is appended when more than one frame is rendered"`

	Frame     int  `name:"frame" default:"0" help:"0-based frame index to render"`
	AllFrames bool `name:"all-frames" help:"Render every frame instead of just --frame"`

	Format   string `name:"format" enum:"rgb,bgr,rgba,bgra" default:"rgb" help:"Output pixel layout"`
	RowAlign int    `name:"row-align" default:"1" help:"Row stride alignment in bytes"`

	ColorSpace string `name:"colorspace" help:"Force the decoded frame's color space (overrides the dataset's Photometric Interpretation), e.g. to exercise a specific conversion"`

	WindowCenter   float64 `name:"window-center" help:"VOI window center (overrides the dataset's own VOI list)"`
	WindowWidth    float64 `name:"window-width" help:"VOI window width (overrides the dataset's own VOI list)"`
	WindowFunction string  `name:"window-function" enum:"linear,linear_exact,sigmoid" default:"linear" help:"VOI window shaping function"`
	AutoWindow     bool    `name:"auto-window" help:"Compute the optimal VOI window from the frame's min/max instead of using --window-* or the dataset's VOI list"`

	// FramesPerSecond throttles multi-frame rendering so writing a long
	// series doesn't saturate disk I/O in one burst.
	FramesPerSecond float64 `name:"frames-per-second" default:"0" help:"Rate-limit frame output (0 = unlimited)"`
}

// Run executes the render command.
func (c *RenderCmd) Run(cfg *config.GlobalConfig) error {
	ui.PrintBanner()
	logger := log.Default()

	in, err := stream.OpenRead(c.Path)
	if err != nil {
		return fmt.Errorf("dcmpixel: opening %s: %w", c.Path, err)
	}
	defer in.Terminate()

	ds, err := dicomset.ParseReader(in)
	if err != nil {
		return fmt.Errorf("dcmpixel: parsing %s: %w", c.Path, err)
	}

	numFrames, err := ds.NumberOfFrames()
	if err != nil {
		return fmt.Errorf("dcmpixel: reading frame count: %w", err)
	}

	frames := []int{c.Frame}
	if c.AllFrames {
		frames = make([]int, numFrames)
		for i := range frames {
			frames[i] = i
		}
	}
	logger.Info("rendering", "file", c.Path, "frames", len(frames), "format", c.Format)

	format, err := parseFormat(c.Format)
	if err != nil {
		return err
	}
	windowFn, err := parseVOIFunction(c.WindowFunction)
	if err != nil {
		return err
	}

	var limiter *rate.Limiter
	if c.FramesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(c.FramesPerSecond), 1)
		logger.Info("frame output rate limited", "frames_per_sec", c.FramesPerSecond)
	}

	sink := newDiagnosticSink(logger)
	ctx := context.Background()

	for _, frame := range frames {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
		}
		if err := c.renderFrame(ds, frame, len(frames) > 1, format, windowFn, sink, logger); err != nil {
			return fmt.Errorf("dcmpixel: frame %d: %w", frame, err)
		}
	}

	return nil
}

func (c *RenderCmd) renderFrame(
	ds *dicomset.DataSet,
	frame int,
	multiFrame bool,
	format bitmap.Format,
	windowFn dcmimage.VOIFunction,
	sink diagnostic.Sink,
	logger *log.Logger,
) error {
	img, err := ds.FrameImage(frame)
	if err != nil {
		return err
	}
	if c.ColorSpace != "" {
		img, err = reinterpretColorSpace(img, c.ColorSpace)
		if err != nil {
			return err
		}
	}

	pipeline := chain.New()
	pipeline.Diagnostics.SetSink(sink)

	if slope, intercept, ok := ds.ModalityRescale(); ok {
		pipeline.Add(voilut.ModalityTransform{RescaleSlope: slope, RescaleIntercept: intercept, HasRescale: ok})
	}

	voi, err := c.voiTransform(ds, img, windowFn)
	if err != nil {
		return err
	}
	pipeline.Add(voi)

	renderer := &bitmap.Renderer{Chain: pipeline}
	renderer.Diagnostics.SetSink(sink)

	size := bitmap.RequiredSize(img.Width(), img.Height(), format, c.RowAlign)
	buf := make([]byte, size)
	if _, err := renderer.GetBitmap(img, format, c.RowAlign, buf); err != nil {
		return err
	}

	outPath := c.Out
	if multiFrame {
		outPath = fmt.Sprintf("%s.%04d", c.Out, frame)
	}

	out, err := stream.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Terminate()

	if _, err := out.Write(buf); err != nil {
		return err
	}

	logger.Debug("wrote frame", "frame", frame, "path", outPath, "bytes", size)
	return nil
}

// voiTransform builds the VOI/LUT transform for a frame: explicit
// --window-* flags win, otherwise --auto-window requests
// voilut.OptimalWindow, otherwise the dataset's first VOI list entry is
// used, otherwise the transform is the identity (IsEmpty).
func (c *RenderCmd) voiTransform(ds *dicomset.DataSet, img *dcmimage.Image, fn dcmimage.VOIFunction) (voilut.Transform, error) {
	if c.WindowWidth > 0 {
		return voilut.Transform{Center: c.WindowCenter, Width: c.WindowWidth, Function: fn}, nil
	}
	if c.AutoWindow {
		center, width, err := voilut.OptimalWindow(img, img.Rect())
		if err != nil {
			return voilut.Transform{}, err
		}
		return voilut.Transform{Center: center, Width: width, Function: dcmimage.VOILinear}, nil
	}
	list, err := ds.VOIList()
	if err != nil {
		return voilut.Transform{}, err
	}
	if len(list) > 0 {
		first := list[0]
		return voilut.Transform{Center: first.Center, Width: first.Width, Function: first.Function}, nil
	}
	return voilut.Transform{}, nil
}

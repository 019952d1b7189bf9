package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dcmpixel/dcmpixel/bitmap"
	"github.com/dcmpixel/dcmpixel/chain"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/config"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/stream"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/ui"
	"github.com/dcmpixel/dcmpixel/diagnostic"
	"github.com/dcmpixel/dcmpixel/dicomset"
	"github.com/dcmpixel/dcmpixel/voilut"
)

// BenchCmd re-decodes and re-renders a single frame repeatedly, reporting
// wall-clock percentiles for the decode+transform+render path.
type BenchCmd struct {
	Path       string `arg:"" type:"existingfile" help:"DICOM file to benchmark"`
	Frame      int    `name:"frame" default:"0" help:"0-based frame index"`
	Iterations int    `name:"iterations" default:"50" help:"Number of decode+render passes"`
	Format     string `name:"format" enum:"rgb,bgr,rgba,bgra" default:"rgb" help:"Output pixel layout"`
	RowAlign   int    `name:"row-align" default:"1" help:"Row stride alignment in bytes"`
}

type benchResult struct {
	Iterations int     `json:"iterations"`
	MinMS      float64 `json:"min_ms"`
	P50MS      float64 `json:"p50_ms"`
	P95MS      float64 `json:"p95_ms"`
	P99MS      float64 `json:"p99_ms"`
	MaxMS      float64 `json:"max_ms"`
}

// Run executes the bench command. The file is re-read and re-parsed on every
// iteration so the reported timings include decode cost, matching what a
// caller driving dcmpixel in a loop would actually pay.
func (c *BenchCmd) Run(cfg *config.GlobalConfig) error {
	ui.PrintBanner()
	logger := log.Default()

	format, err := parseFormat(c.Format)
	if err != nil {
		return err
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("dcmpixel: --iterations must be positive, got %d", c.Iterations)
	}

	sink := newDiagnosticSink(logger)
	durations := make([]time.Duration, 0, c.Iterations)

	for i := 0; i < c.Iterations; i++ {
		start := time.Now()
		if err := c.decodeAndRender(format, sink); err != nil {
			return fmt.Errorf("dcmpixel: iteration %d: %w", i, err)
		}
		durations = append(durations, time.Since(start))
	}

	result := summarize(durations)
	logger.Info("bench complete", "iterations", result.Iterations, "p50_ms", result.P50MS, "p95_ms", result.P95MS)

	if cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("iterations=%d min=%.3fms p50=%.3fms p95=%.3fms p99=%.3fms max=%.3fms\n",
		result.Iterations, result.MinMS, result.P50MS, result.P95MS, result.P99MS, result.MaxMS)
	return nil
}

// decodeAndRender runs one full pass of the decode/transform/render path
// used by RenderCmd against c.Path and c.Frame, discarding the bitmap.
func (c *BenchCmd) decodeAndRender(format bitmap.Format, sink diagnostic.Sink) error {
	in, err := stream.OpenRead(c.Path)
	if err != nil {
		return err
	}
	defer in.Terminate()

	ds, err := dicomset.ParseReader(in)
	if err != nil {
		return err
	}

	img, err := ds.FrameImage(c.Frame)
	if err != nil {
		return err
	}

	pipeline := chain.New()
	pipeline.Diagnostics.SetSink(sink)

	if slope, intercept, ok := ds.ModalityRescale(); ok {
		pipeline.Add(voilut.ModalityTransform{RescaleSlope: slope, RescaleIntercept: intercept, HasRescale: ok})
	}

	var voi voilut.Transform
	if list, err := ds.VOIList(); err == nil && len(list) > 0 {
		first := list[0]
		voi = voilut.Transform{Center: first.Center, Width: first.Width, Function: first.Function}
	}
	pipeline.Add(voi)

	renderer := &bitmap.Renderer{Chain: pipeline}
	renderer.Diagnostics.SetSink(sink)

	size := bitmap.RequiredSize(img.Width(), img.Height(), format, c.RowAlign)
	buf := make([]byte, size)
	_, err = renderer.GetBitmap(img, format, c.RowAlign, buf)
	return err
}

func summarize(durations []time.Duration) benchResult {
	sorted := append([]time.Duration(nil), durations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	pct := func(p float64) float64 {
		if len(sorted) == 0 {
			return 0
		}
		idx := int(p * float64(len(sorted)-1))
		return float64(sorted[idx]) / float64(time.Millisecond)
	}

	n := len(sorted)
	result := benchResult{Iterations: n, P50MS: pct(0.50), P95MS: pct(0.95), P99MS: pct(0.99)}
	if n > 0 {
		result.MinMS = float64(sorted[0]) / float64(time.Millisecond)
		result.MaxMS = float64(sorted[n-1]) / float64(time.Millisecond)
	}
	return result
}

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/config"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/stream"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/ui"
	"github.com/dcmpixel/dcmpixel/dicomset"
	"github.com/dcmpixel/dcmpixel/voilut"
)

// WindowCmd reports the optimal VOI window (DICOM PS3.3 C.11.2.1.2) for a
// frame: the linear window whose center/width span exactly the frame's
// observed min/max sample values.
type WindowCmd struct {
	Path  string `arg:"" type:"existingfile" help:"DICOM file to inspect"`
	Frame int    `name:"frame" default:"0" help:"0-based frame index"`
}

type windowResult struct {
	Frame    int     `json:"frame"`
	Center   float64 `json:"center"`
	Width    float64 `json:"width"`
	Function string  `json:"function"`
}

// Run executes the window command.
func (c *WindowCmd) Run(cfg *config.GlobalConfig) error {
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

	img, err := ds.FrameImage(c.Frame)
	if err != nil {
		return fmt.Errorf("dcmpixel: decoding frame %d: %w", c.Frame, err)
	}

	center, width, err := voilut.OptimalWindow(img, img.Rect())
	if err != nil {
		return fmt.Errorf("dcmpixel: computing optimal window: %w", err)
	}
	logger.Info("optimal window", "frame", c.Frame, "center", center, "width", width)

	result := windowResult{Frame: c.Frame, Center: center, Width: width, Function: "linear"}
	if cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("frame=%d center=%g width=%g function=%s\n", result.Frame, result.Center, result.Width, result.Function)
	return nil
}

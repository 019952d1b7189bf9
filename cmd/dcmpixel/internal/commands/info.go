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
)

// InfoCmd reports the decoded shape of every frame of a DICOM file's pixel
// data, without rendering anything.
type InfoCmd struct {
	Path string `arg:"" type:"existingfile" help:"DICOM file to inspect"`
}

// frameInfo is one frame's reported shape.
type frameInfo struct {
	Frame      int    `json:"frame"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ColorSpace string `json:"color_space"`
	Channels   int    `json:"channels"`
	Depth      string `json:"depth"`
	HighBit    int    `json:"high_bit"`
	Palette    bool   `json:"palette"`
}

// Run executes the info command.
func (c *InfoCmd) Run(cfg *config.GlobalConfig) error {
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

	frames := make([]frameInfo, 0, numFrames)
	for i := 0; i < numFrames; i++ {
		img, err := ds.FrameImage(i)
		if err != nil {
			logger.Error("failed to decode frame", "frame", i, "error", err)
			continue
		}
		frames = append(frames, frameInfo{
			Frame:      i,
			Width:      img.Width(),
			Height:     img.Height(),
			ColorSpace: img.ColorSpace(),
			Channels:   img.Channels(),
			Depth:      img.Depth().String(),
			HighBit:    img.HighBit(),
			Palette:    img.Palette() != nil,
		})
	}

	if cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(frames)
	}

	fmt.Printf("%-6s %-6s %-6s %-15s %-3s %-5s %-8s %-7s\n",
		"frame", "width", "height", "color_space", "ch", "depth", "highbit", "palette")
	for _, f := range frames {
		fmt.Printf("%-6d %-6d %-6d %-15s %-3d %-5s %-8d %-7t\n",
			f.Frame, f.Width, f.Height, f.ColorSpace, f.Channels, f.Depth, f.HighBit, f.Palette)
	}
	return nil
}

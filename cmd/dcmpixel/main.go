// Command dcmpixel is a thin front end over the dcmpixel image/transform
// core: it decodes a DICOM file's pixel data through the dicomset
// collaborator, builds a VOI/LUT and color-space pipeline, and renders or
// inspects the result.
package main

import (
	"os"

	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/cli"
)

// version, commit, and date are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.Run(version, commit, date); err != nil {
		os.Exit(1)
	}
}

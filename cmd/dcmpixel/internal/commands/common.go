// Package commands implements the dcmpixel subcommands: render, info,
// window, and bench.
package commands

import (
	"fmt"

	"github.com/dcmpixel/dcmpixel/bitmap"
	"github.com/dcmpixel/dcmpixel/dcmimage"
)

// parseFormat maps a CLI --format value to a bitmap.Format.
func parseFormat(s string) (bitmap.Format, error) {
	switch s {
	case "rgb":
		return bitmap.RGB, nil
	case "bgr":
		return bitmap.BGR, nil
	case "rgba":
		return bitmap.RGBA, nil
	case "bgra":
		return bitmap.BGRA, nil
	default:
		return 0, fmt.Errorf("unknown bitmap format %q (want rgb, bgr, rgba, or bgra)", s)
	}
}

// parseVOIFunction maps a CLI --window-function value to a
// dcmimage.VOIFunction.
func parseVOIFunction(s string) (dcmimage.VOIFunction, error) {
	switch s {
	case "linear":
		return dcmimage.VOILinear, nil
	case "linear_exact":
		return dcmimage.VOILinearExact, nil
	case "sigmoid":
		return dcmimage.VOISigmoid, nil
	default:
		return 0, fmt.Errorf("unknown window function %q (want linear, linear_exact, or sigmoid)", s)
	}
}

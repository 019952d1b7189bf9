// Package ui holds the CLI's terminal presentation: the startup banner and
// the diagnostic.Sink adapter that routes core package messages to the
// charmbracelet/log logger.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"
)

// BannerStyle colors the startup banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#2aa198")).
	Bold(true)

// SubtleStyle renders de-emphasized separators and annotations.
var SubtleStyle = lipgloss.NewStyle().Faint(true)

// PrintBanner writes the "dcmpixel" ASCII art banner to stderr.
func PrintBanner() {
	banner := figure.NewFigure("dcmpixel", "banner3", true)
	fmt.Fprintln(os.Stderr, BannerStyle.Render(banner.String()))
	fmt.Fprintln(os.Stderr)
}

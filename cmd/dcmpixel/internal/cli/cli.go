// Package cli wires kong's command-line parser to the dcmpixel subcommands
// and the shared logging/validation setup every subcommand depends on.
package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/build"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/commands"
	"github.com/dcmpixel/dcmpixel/cmd/dcmpixel/internal/config"
)

const (
	appName        = "dcmpixel"
	appDescription = "DICOM pixel data transform and rendering CLI"
)

// CLI represents the root command structure.
type CLI struct {
	config.GlobalConfig

	Render commands.RenderCmd `cmd:"" name:"render" help:"Decode, transform, and render DICOM frames to a bitmap"`
	Info   commands.InfoCmd   `cmd:"" name:"info" help:"Report the decoded shape of every frame"`
	Window commands.WindowCmd `cmd:"" name:"window" help:"Compute the optimal VOI window for a frame"`
	Bench  commands.BenchCmd  `cmd:"" name:"bench" help:"Benchmark the decode/transform/render path"`
}

// Run executes the dcmpixel CLI with the provided build info.
func Run(version, commit, date string) error {
	build.SetBuildInfo(version, commit, date)

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
			"commit":  commit,
			"date":    date,
		},
	)

	logger := setupLogger(&cli.GlobalConfig)

	if err := config.Validate(&cli.GlobalConfig); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	logger.Debug("dcmpixel CLI starting",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	if err := ctx.Run(&cli.GlobalConfig); err != nil {
		logger.Error("command failed", "error", err)
		return err
	}

	return nil
}

// setupLogger configures the global logger based on config.
func setupLogger(cfg *config.GlobalConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	switch cfg.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	if !cfg.Pretty {
		logger.SetFormatter(log.JSONFormatter)
	}

	log.SetDefault(logger)

	return logger
}

// ParseArgs is a convenience function for testing. It parses arguments and
// returns the CLI struct and Kong context without running any command.
func ParseArgs(args []string, version, commit, date string) (*CLI, *kong.Context, error) {
	build.SetBuildInfo(version, commit, date)

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.Vars{
			"version": version,
			"commit":  commit,
			"date":    date,
		},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create parser: %w", err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return cli, ctx, nil
}

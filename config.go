package stepreport

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/stepreport/stepreport/flags"
	"github.com/stepreport/stepreport/types"
)

// Config holds the application configuration
type Config struct {
	RunFile     string
	OutputDir   string
	Suite       string        // Suite name override; empty uses the run file's
	RunInterval time.Duration // Interval between re-renders
	RunOnce     bool          // Indicates if the service should exit after one render
	ServeAddr   string        // Address for the report file server; empty disables it
	ShowGroups  bool          // Include group steps in the console table
	Details     bool          // Include error details in text summaries
	Aggregator  types.Aggregator
	Log         log.Logger
}

// NewConfig creates a new Config from cli context
func NewConfig(ctx *cli.Context, logger log.Logger) (*Config, error) {
	if err := flags.CheckRequired(ctx); err != nil {
		return nil, fmt.Errorf("missing required flags: %w", err)
	}

	runFile := ctx.String(flags.RunFile.Name)
	if runFile == "" {
		return nil, errors.New("run file is required")
	}
	absRunFile, err := filepath.Abs(runFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for run file '%s': %w", runFile, err)
	}

	outputDir := ctx.String(flags.OutputDir.Name)
	if outputDir == "" {
		outputDir = "reports"
	}
	outputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for output directory '%s': %w", outputDir, err)
	}

	runInterval := ctx.Duration(flags.RunInterval.Name)

	var agg types.Aggregator = types.WorstFirstAggregator{}
	if ctx.Bool(flags.AnyFailurePolicy.Name) {
		agg = types.AnyFailureAggregator{}
	}

	return &Config{
		RunFile:     absRunFile,
		OutputDir:   outputDir,
		Suite:       ctx.String(flags.Suite.Name),
		RunInterval: runInterval,
		RunOnce:     runInterval == 0,
		ServeAddr:   ctx.String(flags.ServeAddr.Name),
		ShowGroups:  ctx.Bool(flags.ShowGroups.Name),
		Details:     ctx.Bool(flags.Details.Name),
		Aggregator:  agg,
		Log:         logger,
	}, nil
}

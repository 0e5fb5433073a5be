// Package stepreport renders acceptance-run step trees recorded by an
// execution engine into console, text and HTML reports.
package stepreport

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/stepreport/stepreport/exitcodes"
	"github.com/stepreport/stepreport/reporting"
	"github.com/stepreport/stepreport/runfile"
	"github.com/stepreport/stepreport/types"
)

// App loads a recorded run, resolves its step tree, and pushes the report
// through the configured sinks.
type App struct {
	config    *Config
	version   string
	scheduler RenderScheduler
	reporter  MetricsReporter

	textSink *reporting.TextSummarySink
	htmlSink *reporting.HTMLSink

	shutdownCallback func(error) // Callback to signal application shutdown
}

// New creates the application from its configuration.
func New(ctx context.Context, config *Config, version string, shutdownCallback func(error)) (*App, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}

	config.Log.Debug("Creating stepreport with config",
		"runFile", config.RunFile,
		"outputDir", config.OutputDir,
		"runInterval", config.RunInterval,
		"runOnce", config.RunOnce)

	htmlSink, err := reporting.NewHTMLSink(config.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTML sink: %w", err)
	}

	app := &App{
		config:           config,
		version:          version,
		reporter:         NewDefaultMetricsReporter(),
		textSink:         reporting.NewTextSummarySink(config.OutputDir, config.Details),
		htmlSink:         htmlSink,
		shutdownCallback: shutdownCallback,
	}
	app.scheduler = NewDefaultRenderScheduler(config.RunInterval, config.RunOnce, config.Log)
	app.scheduler.RegisterCallback(app.renderOnce)
	return app, nil
}

// Start begins rendering. In run-once mode it returns after the first render;
// the returned error carries the run outcome (RunFailureError on failure).
func (a *App) Start(ctx context.Context) error {
	// Ensure runtime panics surface as exit code 2 rather than a stack dump.
	defer func() {
		if r := recover(); r != nil {
			a.config.Log.Error("Runtime error occurred", "error", r)
			os.Exit(exitcodes.RuntimeErr)
		}
	}()

	return a.scheduler.Start(ctx)
}

// Stop shuts the renderer down.
func (a *App) Stop() error {
	return a.scheduler.Stop()
}

// renderOnce performs a single load-resolve-render cycle.
func (a *App) renderOnce() error {
	run, err := runfile.Load(a.config.RunFile)
	if err != nil {
		return NewRuntimeError(err)
	}

	suite := run.Suite
	if a.config.Suite != "" {
		suite = a.config.Suite
	}

	report := reporting.NewReportBuilder().
		WithAggregator(a.config.Aggregator).
		Build(run.Root, run.RunID, suite, run.StartedAt)

	a.config.Log.Info("Run resolved",
		"runID", report.RunID,
		"suite", report.Suite,
		"outcome", report.Overall,
		"steps", report.Stats.Total,
		"failed", report.Stats.Failed)

	table := reporting.NewTreeTableFormatter(
		fmt.Sprintf("Acceptance Run Results (%s)", report.RunID),
		a.config.ShowGroups,
	)
	fmt.Print(table.Format(report))

	if err := a.textSink.Write(report); err != nil {
		return NewRuntimeError(fmt.Errorf("failed to write text summary: %w", err))
	}
	if err := a.htmlSink.Write(report); err != nil {
		return NewRuntimeError(fmt.Errorf("failed to write HTML report: %w", err))
	}

	a.reporter.ReportRun(report)

	if report.Overall == types.OutcomeFailure {
		return NewRunFailureError(fmt.Sprintf("%d of %d steps failed", report.Stats.Failed, report.Stats.Total))
	}
	return nil
}

package stepreport

import (
	"github.com/stepreport/stepreport/metrics"
	"github.com/stepreport/stepreport/reporting"
)

// MetricsReporter is responsible for reporting metrics from resolved runs.
type MetricsReporter interface {
	ReportRun(report *reporting.ReportData)
}

// DefaultMetricsReporter implements the MetricsReporter interface.
type DefaultMetricsReporter struct{}

// NewDefaultMetricsReporter creates a new DefaultMetricsReporter.
func NewDefaultMetricsReporter() *DefaultMetricsReporter {
	return &DefaultMetricsReporter{}
}

// ReportRun reports a resolved run to the metrics system.
func (r *DefaultMetricsReporter) ReportRun(report *reporting.ReportData) {
	metrics.RecordRun(
		report.Suite,
		report.RunID,
		report.Overall,
		report.Stats.Total,
		report.Duration,
	)
	for _, item := range report.Steps {
		if item.IsGroup {
			continue
		}
		metrics.RecordStepOutcome(report.Suite, report.RunID, item.Outcome)
	}
}

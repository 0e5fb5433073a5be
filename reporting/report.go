package reporting

import (
	"time"

	"github.com/stepreport/stepreport/types"
)

// ReportStats contains aggregated leaf-step counts for a run. Group steps are
// containers and are not counted; their status is derived, not executed.
type ReportStats struct {
	Total    int
	Passed   int
	Failed   int
	Ignored  int
	Skipped  int
	Pending  int
	PassRate float64
}

// ReportStepItem is one row of a rendered report: a step plus the positional
// information the tree renderers need.
type ReportStepItem struct {
	Description  string
	Outcome      types.Outcome
	Duration     time.Duration
	ErrorMessage string

	// Artifact links
	ScreenshotPage string
	HTMLSource     string

	// Position in the tree
	Depth        int    // 1 = direct child of the root step
	IsGroup      bool
	IsLast       bool   // last among its siblings
	ParentIsLast []bool // outermost ancestor first
}

// ReportData contains everything a report format needs, computed once from
// the step tree so no renderer reimplements outcome resolution.
type ReportData struct {
	RunID     string
	Suite     string
	Timestamp time.Time
	Duration  time.Duration

	Overall     types.Outcome
	Stats       ReportStats
	Steps       []ReportStepItem // every step, depth-first, root excluded
	FailedSteps []ReportStepItem
	HasFailures bool
}

// ReportBuilder constructs ReportData from a step tree.
type ReportBuilder struct {
	agg types.Aggregator
}

// NewReportBuilder creates a builder using the default worst-first
// aggregation policy.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{agg: types.WorstFirstAggregator{}}
}

// WithAggregator overrides the aggregation policy used to resolve outcomes.
func (rb *ReportBuilder) WithAggregator(agg types.Aggregator) *ReportBuilder {
	rb.agg = agg
	return rb
}

// Build resolves the tree and assembles the report.
func (rb *ReportBuilder) Build(root *types.Step, runID, suite string, startedAt time.Time) *ReportData {
	report := &ReportData{
		RunID:     runID,
		Suite:     suite,
		Timestamp: startedAt,
		Duration:  root.Duration,
		Overall:   root.Resolve(rb.agg),
	}

	rb.collect(root, 1, nil, report)

	for _, leaf := range root.LeafSteps() {
		report.Stats.Total++
		switch leaf.Resolve(rb.agg) {
		case types.OutcomeSuccess:
			report.Stats.Passed++
		case types.OutcomeFailure:
			report.Stats.Failed++
		case types.OutcomeIgnored:
			report.Stats.Ignored++
		case types.OutcomeSkipped:
			report.Stats.Skipped++
		case types.OutcomePending:
			report.Stats.Pending++
		}
	}
	if report.Stats.Total > 0 {
		report.Stats.PassRate = float64(report.Stats.Passed) / float64(report.Stats.Total) * 100
	}
	report.HasFailures = report.Stats.Failed > 0

	return report
}

// collect walks the children of step depth-first, preserving child order.
func (rb *ReportBuilder) collect(step *types.Step, depth int, parentIsLast []bool, report *ReportData) {
	children := step.Children()
	for i, child := range children {
		isLast := i == len(children)-1

		item := ReportStepItem{
			Description:    child.Description,
			Outcome:        child.Resolve(rb.agg),
			Duration:       child.Duration,
			ErrorMessage:   child.ErrorMessage,
			ScreenshotPage: child.ScreenshotPage(),
			HTMLSource:     child.HTMLSourceFile,
			Depth:          depth,
			IsGroup:        child.IsGroup(),
			IsLast:         isLast,
			ParentIsLast:   append([]bool(nil), parentIsLast...),
		}
		report.Steps = append(report.Steps, item)
		if !item.IsGroup && item.Outcome == types.OutcomeFailure {
			report.FailedSteps = append(report.FailedSteps, item)
		}

		if child.IsGroup() {
			rb.collect(child, depth+1, append(parentIsLast, isLast), report)
		}
	}
}

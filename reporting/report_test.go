package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepreport/stepreport/types"
)

func leafWith(description string, o types.Outcome) *types.Step {
	s := types.NewStep(description)
	s.SetOutcome(o)
	return s
}

func newRootWith(children ...*types.Step) *types.Step {
	root := types.NewStep("scenario")
	for _, c := range children {
		root.AddChild(c)
	}
	return root
}

// sampleTree builds:
//
//	scenario
//	├── open page            success
//	└── fill in form         (group)
//	    ├── enter name       success
//	    └── enter email      failure
func sampleTree() *types.Step {
	form := types.NewStep("fill in form")
	form.AddChild(leafWith("enter name", types.OutcomeSuccess))
	email := leafWith("enter email", types.OutcomeFailure)
	email.MarkFailed("Element not found", nil)
	form.AddChild(email)

	root := types.NewStep("scenario")
	root.AddChild(leafWith("open page", types.OutcomeSuccess))
	root.AddChild(form)
	return root
}

func TestReportBuilder_Build(t *testing.T) {
	root := sampleTree()
	started := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)

	report := NewReportBuilder().Build(root, "run-1", "registration", started)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, "registration", report.Suite)
	assert.Equal(t, started, report.Timestamp)
	assert.Equal(t, types.OutcomeFailure, report.Overall)
	assert.True(t, report.HasFailures)

	assert.Equal(t, 3, report.Stats.Total)
	assert.Equal(t, 2, report.Stats.Passed)
	assert.Equal(t, 1, report.Stats.Failed)
	assert.InDelta(t, 66.7, report.Stats.PassRate, 0.1)

	// Steps are depth-first with the root excluded.
	require.Len(t, report.Steps, 4)
	assert.Equal(t, "open page", report.Steps[0].Description)
	assert.Equal(t, "fill in form", report.Steps[1].Description)
	assert.Equal(t, "enter name", report.Steps[2].Description)
	assert.Equal(t, "enter email", report.Steps[3].Description)

	form := report.Steps[1]
	assert.True(t, form.IsGroup)
	assert.Equal(t, 1, form.Depth)
	assert.True(t, form.IsLast)

	email := report.Steps[3]
	assert.Equal(t, 2, email.Depth)
	assert.True(t, email.IsLast)
	assert.Equal(t, []bool{true}, email.ParentIsLast)
	assert.Equal(t, "Element not found", email.ErrorMessage)

	// A group's outcome is derived from its children.
	assert.Equal(t, types.OutcomeFailure, form.Outcome)

	require.Len(t, report.FailedSteps, 1)
	assert.Equal(t, "enter email", report.FailedSteps[0].Description)
}

func TestReportBuilder_EmptyTree(t *testing.T) {
	root := types.NewStep("empty scenario")
	report := NewReportBuilder().Build(root, "run-2", "", time.Time{})

	assert.Equal(t, types.OutcomePending, report.Overall)
	assert.Zero(t, report.Stats.Total)
	assert.Zero(t, report.Stats.PassRate)
	assert.Empty(t, report.Steps)
	assert.False(t, report.HasFailures)
}

func TestReportBuilder_WithAggregator(t *testing.T) {
	root := types.NewStep("scenario")
	root.AddChild(leafWith("a", types.OutcomeSuccess))
	root.AddChild(leafWith("b", types.OutcomeSkipped))

	worst := NewReportBuilder().Build(root, "r", "", time.Time{})
	assert.Equal(t, types.OutcomeSkipped, worst.Overall)

	anyFailure := NewReportBuilder().
		WithAggregator(types.AnyFailureAggregator{}).
		Build(root, "r", "", time.Time{})
	assert.Equal(t, types.OutcomeSuccess, anyFailure.Overall)
}

func TestReportBuilder_GroupOverrideReflectedInReport(t *testing.T) {
	group := types.NewStep("short-circuited group")
	group.AddChild(leafWith("never ran", types.OutcomeFailure))
	group.SetOutcome(types.OutcomeSkipped)

	root := types.NewStep("scenario")
	root.AddChild(group)

	report := NewReportBuilder().Build(root, "r", "", time.Time{})
	assert.Equal(t, types.OutcomeSkipped, report.Overall)
	assert.Equal(t, types.OutcomeSkipped, report.Steps[0].Outcome)
}

func TestReportBuilder_ScreenshotLinks(t *testing.T) {
	step := leafWith("click search", types.OutcomeFailure)
	step.ScreenshotFile = "shot_7.png"

	root := types.NewStep("scenario")
	root.AddChild(step)

	report := NewReportBuilder().Build(root, "r", "", time.Time{})
	assert.Equal(t, "screenshot_shot_7.html", report.Steps[0].ScreenshotPage)
}

package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepreport/stepreport/types"
)

func sampleReport(t *testing.T) *ReportData {
	t.Helper()
	return NewReportBuilder().Build(sampleTree(), "run-1", "registration",
		time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC))
}

func TestTreeTableFormatter_Format(t *testing.T) {
	report := sampleReport(t)

	out := NewTreeTableFormatter("Acceptance Run", true).Format(report)

	assert.Contains(t, out, "Acceptance Run")
	assert.Contains(t, out, "open page")
	assert.Contains(t, out, "fill in form")
	assert.Contains(t, out, "enter email")
	assert.Contains(t, out, "FAILURE")
	assert.Contains(t, out, "Element not found")
	assert.Contains(t, out, "3 steps, 2 passed, 1 failed")
}

func TestTreeTableFormatter_HidesGroups(t *testing.T) {
	report := sampleReport(t)

	out := NewTreeTableFormatter("Run", false).Format(report)

	assert.NotContains(t, out, "fill in form")
	assert.Contains(t, out, "enter name")
}

func TestTreeTextFormatter_Format(t *testing.T) {
	report := sampleReport(t)

	out := NewTreeTextFormatter(true, true).Format(report)

	assert.Contains(t, out, "Run ID: run-1")
	assert.Contains(t, out, "Suite: registration")
	assert.Contains(t, out, "Total Steps: 3")
	assert.Contains(t, out, "Outcome: FAILURE")

	// Tree glyphs: the nested last leaf sits under an indented last branch.
	assert.Contains(t, out, "├── ✓ open page")
	assert.Contains(t, out, "└── ✗ fill in form")
	assert.Contains(t, out, "    ├── ✓ enter name")
	assert.Contains(t, out, "    └── ✗ enter email")

	assert.Contains(t, out, "Failed Steps:")
	assert.Contains(t, out, "- enter email (Error: Element not found)")
}

func TestTreeTextFormatter_NoDetails(t *testing.T) {
	report := sampleReport(t)

	out := NewTreeTextFormatter(false, false).Format(report)

	assert.NotContains(t, out, "Run ID:")
	assert.NotContains(t, out, "Error: Element not found")
	require.Contains(t, out, "Failed Steps:")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "-", formatDuration(0))
	assert.Equal(t, "250ms", formatDuration(250*time.Millisecond))
	assert.Equal(t, "2s", formatDuration(2*time.Second))
}

func TestTreeTableFormatter_OverallStyles(t *testing.T) {
	// Just exercise every style branch; the exact colors are go-pretty's concern.
	for _, o := range types.AllOutcomes {
		root := types.NewStep("scenario")
		root.AddChild(leafWith("only step", o))
		report := NewReportBuilder().Build(root, "r", "", time.Time{})
		out := NewTreeTableFormatter("Run", true).Format(report)
		assert.NotEmpty(t, out)
	}
}

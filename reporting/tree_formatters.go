package reporting

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/stepreport/stepreport/types"
	"github.com/stepreport/stepreport/ui"
)

// formatDuration formats a duration for display
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Truncate(time.Millisecond).String()
}

// TreeTableFormatter renders a report as an ASCII table.
type TreeTableFormatter struct {
	title      string
	showGroups bool
}

// NewTreeTableFormatter creates a table formatter. When showGroups is false,
// only leaf steps appear as rows.
func NewTreeTableFormatter(title string, showGroups bool) *TreeTableFormatter {
	return &TreeTableFormatter{
		title:      title,
		showGroups: showGroups,
	}
}

// Format renders the report.
func (f *TreeTableFormatter) Format(report *ReportData) string {
	var buf bytes.Buffer

	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.SetTitle(f.title)

	t.AppendHeader(table.Row{"TYPE", "STEP", "DURATION", "OUTCOME", "ERROR"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "TYPE", AutoMerge: true},
		{Name: "STEP", WidthMax: 100, WidthMaxEnforcer: text.WrapSoft},
		{Name: "DURATION", Align: text.AlignRight},
		{Name: "ERROR", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
	})

	for _, item := range report.Steps {
		if item.IsGroup && !f.showGroups {
			continue
		}
		stepType := "Step"
		if item.IsGroup {
			stepType = "Group"
		}
		prefix := ui.BuildTreePrefix(item.Depth, item.IsLast, item.ParentIsLast)
		t.AppendRow(table.Row{
			stepType,
			prefix + item.Description,
			formatDuration(item.Duration),
			strings.ToUpper(string(item.Outcome)),
			item.ErrorMessage,
		})
	}

	switch report.Overall {
	case types.OutcomeFailure:
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	case types.OutcomeSuccess:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	case types.OutcomeSkipped, types.OutcomeIgnored, types.OutcomePending:
		t.SetStyle(table.StyleColoredBlackOnYellowWhite)
	default:
		t.SetStyle(table.StyleDefault)
	}

	t.AppendFooter(table.Row{
		"TOTAL",
		fmt.Sprintf("%d steps, %d passed, %d failed", report.Stats.Total, report.Stats.Passed, report.Stats.Failed),
		formatDuration(report.Duration),
		strings.ToUpper(string(report.Overall)),
		"",
	})

	t.Render()
	return buf.String()
}

// TreeTextFormatter renders a report as plain text with box-drawing prefixes.
type TreeTextFormatter struct {
	includeStats   bool
	includeDetails bool
}

// NewTreeTextFormatter creates a text formatter. includeDetails adds error
// lines beneath failing steps.
func NewTreeTextFormatter(includeStats, includeDetails bool) *TreeTextFormatter {
	return &TreeTextFormatter{
		includeStats:   includeStats,
		includeDetails: includeDetails,
	}
}

// Format renders the report.
func (f *TreeTextFormatter) Format(report *ReportData) string {
	var buf bytes.Buffer

	buf.WriteString("Acceptance Run Summary\n")
	buf.WriteString(strings.Repeat("=", 50) + "\n\n")

	if f.includeStats {
		fmt.Fprintf(&buf, "Run ID: %s\n", report.RunID)
		if report.Suite != "" {
			fmt.Fprintf(&buf, "Suite: %s\n", report.Suite)
		}
		fmt.Fprintf(&buf, "Duration: %s\n", formatDuration(report.Duration))
		fmt.Fprintf(&buf, "Total Steps: %d\n", report.Stats.Total)
		fmt.Fprintf(&buf, "Passed: %d\n", report.Stats.Passed)
		fmt.Fprintf(&buf, "Failed: %d\n", report.Stats.Failed)
		fmt.Fprintf(&buf, "Ignored: %d\n", report.Stats.Ignored)
		fmt.Fprintf(&buf, "Skipped: %d\n", report.Stats.Skipped)
		fmt.Fprintf(&buf, "Pending: %d\n", report.Stats.Pending)
		fmt.Fprintf(&buf, "Pass Rate: %.1f%%\n", report.Stats.PassRate)
		fmt.Fprintf(&buf, "Outcome: %s\n\n", strings.ToUpper(string(report.Overall)))
	}

	buf.WriteString("Step Hierarchy:\n")
	buf.WriteString(strings.Repeat("-", 30) + "\n")

	for _, item := range report.Steps {
		prefix := ui.BuildTreePrefix(item.Depth, item.IsLast, item.ParentIsLast)
		glyph := ui.StatusGlyph(string(item.Outcome))

		line := fmt.Sprintf("%s%s %s", prefix, glyph, item.Description)
		if !item.IsGroup {
			line += fmt.Sprintf(" (%s)", formatDuration(item.Duration))
		}
		buf.WriteString(line + "\n")

		if f.includeDetails && item.ErrorMessage != "" {
			fmt.Fprintf(&buf, "%sError: %s\n", strings.Repeat(" ", len([]rune(prefix))+2), item.ErrorMessage)
		}
	}

	if len(report.FailedSteps) > 0 {
		buf.WriteString("\nFailed Steps:\n")
		buf.WriteString(strings.Repeat("-", 20) + "\n")
		for _, item := range report.FailedSteps {
			fmt.Fprintf(&buf, "- %s", item.Description)
			if f.includeDetails && item.ErrorMessage != "" {
				fmt.Fprintf(&buf, " (Error: %s)", item.ErrorMessage)
			}
			buf.WriteString("\n")
		}
	}

	return buf.String()
}

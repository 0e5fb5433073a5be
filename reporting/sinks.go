package reporting

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/stepreport/stepreport/types"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Sink writes a rendered report somewhere durable.
type Sink interface {
	Write(report *ReportData) error
}

// runDir returns the per-run output directory, creating it if needed.
func runDir(baseDir, runID string) (string, error) {
	dir := filepath.Join(baseDir, "runreport-"+runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return dir, nil
}

// TextSummarySink writes a plain-text summary file per run.
type TextSummarySink struct {
	formatter *TreeTextFormatter
	baseDir   string
}

// NewTextSummarySink creates a text summary sink rooted at baseDir.
func NewTextSummarySink(baseDir string, includeDetails bool) *TextSummarySink {
	return &TextSummarySink{
		formatter: NewTreeTextFormatter(true, includeDetails),
		baseDir:   baseDir,
	}
}

// Write renders the summary and stores it as summary.log in the run directory.
func (s *TextSummarySink) Write(report *ReportData) error {
	dir, err := runDir(s.baseDir, report.RunID)
	if err != nil {
		return err
	}
	content := s.formatter.Format(report)
	summaryFile := filepath.Join(dir, "summary.log")
	if err := os.WriteFile(summaryFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}
	return nil
}

// HTMLSink writes an HTML report file per run.
type HTMLSink struct {
	template *template.Template
	baseDir  string
}

// NewHTMLSink creates an HTML sink rooted at baseDir using the embedded
// report template.
func NewHTMLSink(baseDir string) (*HTMLSink, error) {
	tmpl, err := template.New("report.html.tmpl").Funcs(template.FuncMap{
		"formatDuration": formatDuration,
		"statusClass": func(o types.Outcome) string {
			return string(o)
		},
		"upper": strings.ToUpper,
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format(time.RFC3339)
		},
		"indentPx": func(depth int) int {
			return (depth - 1) * 24
		},
	}).ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}
	return &HTMLSink{
		template: tmpl,
		baseDir:  baseDir,
	}, nil
}

// Write renders the report and stores it as index.html in the run directory.
func (s *HTMLSink) Write(report *ReportData) error {
	dir, err := runDir(s.baseDir, report.RunID)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := s.template.Execute(&buf, report); err != nil {
		return fmt.Errorf("failed to execute HTML template: %w", err)
	}
	htmlFile := filepath.Join(dir, "index.html")
	if err := os.WriteFile(htmlFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	return nil
}

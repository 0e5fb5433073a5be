package reporting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSummarySink_Write(t *testing.T) {
	baseDir := t.TempDir()
	report := sampleReport(t)

	sink := NewTextSummarySink(baseDir, true)
	require.NoError(t, sink.Write(report))

	content, err := os.ReadFile(filepath.Join(baseDir, "runreport-run-1", "summary.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Run ID: run-1")
	assert.Contains(t, string(content), "enter email")
}

func TestHTMLSink_Write(t *testing.T) {
	baseDir := t.TempDir()
	report := sampleReport(t)

	sink, err := NewHTMLSink(baseDir)
	require.NoError(t, err)
	require.NoError(t, sink.Write(report))

	content, err := os.ReadFile(filepath.Join(baseDir, "runreport-run-1", "index.html"))
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "run-1")
	assert.Contains(t, html, "enter email")
	assert.Contains(t, html, "Element not found")
	assert.Contains(t, html, `class="badge failure"`)
}

func TestHTMLSink_ScreenshotLink(t *testing.T) {
	baseDir := t.TempDir()

	step := leafWith("click search", "failure")
	step.ScreenshotFile = "shot_7.png"
	root := newRootWith(step)

	report := NewReportBuilder().Build(root, "run-9", "", time.Time{})

	sink, err := NewHTMLSink(baseDir)
	require.NoError(t, err)
	require.NoError(t, sink.Write(report))

	content, err := os.ReadFile(filepath.Join(baseDir, "runreport-run-9", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `href="screenshot_shot_7.html"`)
}

func TestRunDir_Nested(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "a", "b")
	dir, err := runDir(baseDir, "run-3")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

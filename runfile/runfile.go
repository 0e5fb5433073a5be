// Package runfile persists recorded acceptance runs as YAML so an execution
// engine and the report tooling can hand trees across process boundaries.
package runfile

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/stepreport/stepreport/types"
)

// Run is one recorded acceptance run: a step tree plus run metadata.
type Run struct {
	RunID     string
	Suite     string
	StartedAt time.Time
	Root      *types.Step
}

// NewRunID generates a fresh run identifier.
func NewRunID() string {
	return uuid.New().String()
}

// runDoc is the YAML shape of a run file.
type runDoc struct {
	RunID     string    `yaml:"run_id,omitempty"`
	Suite     string    `yaml:"suite"`
	StartedAt time.Time `yaml:"started_at,omitempty"`
	Root      stepDoc   `yaml:"root"`
}

type stepDoc struct {
	Description    string    `yaml:"description,omitempty"`
	Outcome        string    `yaml:"outcome,omitempty"`
	Resolved       string    `yaml:"resolved,omitempty"`
	StartTime      time.Time `yaml:"start_time,omitempty"`
	Duration       duration  `yaml:"duration,omitempty"`
	Error          string    `yaml:"error,omitempty"`
	Screenshot     string    `yaml:"screenshot,omitempty"`
	ScreenshotPath string    `yaml:"screenshot_path,omitempty"`
	HTMLSource     string    `yaml:"html_source,omitempty"`
	Children       []stepDoc `yaml:"steps,omitempty"`
}

// duration lets run files carry values like "1.5s"; yaml.v3 has no native
// handling for time.Duration.
type duration time.Duration

func (d duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = duration(parsed)
	return nil
}

// Load reads and validates a run file.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a run from YAML.
func Parse(data []byte) (*Run, error) {
	var doc runDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse run file: %w", err)
	}

	root, err := stepFromDoc(doc.Root)
	if err != nil {
		return nil, err
	}

	runID := doc.RunID
	if runID == "" {
		runID = NewRunID()
	}

	return &Run{
		RunID:     runID,
		Suite:     doc.Suite,
		StartedAt: doc.StartedAt,
		Root:      root,
	}, nil
}

func stepFromDoc(doc stepDoc) (*types.Step, error) {
	step := types.NewStep(doc.Description)
	if !doc.StartTime.IsZero() {
		step.StartTime = doc.StartTime
	}
	step.Duration = time.Duration(doc.Duration)
	step.ScreenshotFile = doc.Screenshot
	step.ScreenshotPath = doc.ScreenshotPath
	step.HTMLSourceFile = doc.HTMLSource

	if doc.Outcome != "" {
		outcome, err := types.ParseOutcome(doc.Outcome)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", doc.Description, err)
		}
		if outcome == types.OutcomeFailure && doc.Error != "" {
			step.MarkFailed(doc.Error, nil)
		} else {
			step.SetOutcome(outcome)
			step.ErrorMessage = doc.Error
		}
	} else {
		step.ErrorMessage = doc.Error
	}

	for _, childDoc := range doc.Children {
		child, err := stepFromDoc(childDoc)
		if err != nil {
			return nil, err
		}
		step.AddChild(child)
	}
	return step, nil
}

// Save writes a run to disk, including resolved outcomes for every step so
// external consumers do not have to reimplement the resolution algorithm.
func Save(path string, run *Run, agg types.Aggregator) error {
	data, err := Marshal(run, agg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run file %s: %w", path, err)
	}
	return nil
}

// Marshal encodes a run as YAML.
func Marshal(run *Run, agg types.Aggregator) ([]byte, error) {
	doc := runDoc{
		RunID:     run.RunID,
		Suite:     run.Suite,
		StartedAt: run.StartedAt,
		Root:      docFromStep(run.Root, agg),
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run: %w", err)
	}
	return data, nil
}

func docFromStep(step *types.Step, agg types.Aggregator) stepDoc {
	doc := stepDoc{
		Description:    step.Description,
		Resolved:       string(step.Resolve(agg)),
		StartTime:      step.StartTime,
		Duration:       duration(step.Duration),
		Error:          step.ErrorMessage,
		Screenshot:     step.ScreenshotFile,
		ScreenshotPath: step.ScreenshotPath,
		HTMLSource:     step.HTMLSourceFile,
	}
	if recorded, ok := step.RecordedOutcome(); ok {
		doc.Outcome = string(recorded)
	}
	for _, child := range step.Children() {
		doc.Children = append(doc.Children, docFromStep(child, agg))
	}
	return doc
}

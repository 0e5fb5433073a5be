// Package recorder provides the single-writer API an execution engine uses to
// build a step tree while a test runs: begin a step, perform the user action,
// end the step, and record its outcome or failure as execution proceeds.
package recorder

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/stepreport/stepreport/types"
)

// Recorder builds a step tree on behalf of one logical execution context.
// It is not safe for concurrent use; the model assumes a single writer.
type Recorder struct {
	clock types.Clock
	log   log.Logger
	root  *types.Step
	stack []*types.Step
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock sets the clock used to stamp step start times and durations.
func WithClock(clock types.Clock) Option {
	return func(r *Recorder) { r.clock = clock }
}

// WithLogger sets the logger used for step lifecycle events.
func WithLogger(logger log.Logger) Option {
	return func(r *Recorder) { r.log = logger }
}

// New creates a recorder whose root step carries the given description
// (typically the scenario or test name).
func New(description string, opts ...Option) *Recorder {
	r := &Recorder{
		clock: types.SystemClock,
		log:   log.Root(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.root = types.NewStepWithClock(description, r.clock)
	r.stack = []*types.Step{r.root}
	return r
}

// Root returns the root step of the recorded tree.
func (r *Recorder) Root() *types.Step {
	return r.root
}

// Current returns the step currently being executed.
func (r *Recorder) Current() *types.Step {
	return r.stack[len(r.stack)-1]
}

// Begin starts a new step as a child of the current step and makes it
// current. Steps begun while it is current become its children, which turns
// it into a group.
func (r *Recorder) Begin(description string) *types.Step {
	step := types.NewStepWithClock(description, r.clock)
	r.Current().AddChild(step)
	r.stack = append(r.stack, step)
	r.log.Debug("Step started", "description", description, "depth", len(r.stack)-1)
	return step
}

// End records the current step's duration and returns to its parent. Ending
// the root step records its duration but keeps it current.
func (r *Recorder) End() {
	current := r.Current()
	current.RecordDuration()
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	r.log.Debug("Step finished",
		"description", current.Description,
		"duration", current.Duration)
}

// Succeed records a success outcome on the current step.
func (r *Recorder) Succeed() {
	r.Current().SetOutcome(types.OutcomeSuccess)
}

// Skip records a skipped outcome on the current step. On a group this
// overrides whatever its children report.
func (r *Recorder) Skip() {
	r.Current().SetOutcome(types.OutcomeSkipped)
}

// Ignore records an ignored outcome on the current step.
func (r *Recorder) Ignore() {
	r.Current().SetOutcome(types.OutcomeIgnored)
}

// Pend records a pending outcome on the current step.
func (r *Recorder) Pend() {
	r.Current().SetOutcome(types.OutcomePending)
}

// Fail marks the current step failed with the given message and cause.
func (r *Recorder) Fail(message string, cause error) {
	r.Current().MarkFailed(message, cause)
	r.log.Debug("Step failed",
		"description", r.Current().Description,
		"message", message,
		"err", cause)
}

// Record is a convenience for a leaf step that needs no nested actions: it
// begins a step, assigns the outcome, and ends it.
func (r *Recorder) Record(description string, outcome types.Outcome) *types.Step {
	step := r.Begin(description)
	step.SetOutcome(outcome)
	r.End()
	return step
}

// AttachScreenshot associates a captured screenshot file with the current
// step. The file is referenced, never opened.
func (r *Recorder) AttachScreenshot(file string) {
	r.Current().ScreenshotFile = file
}

// AttachHTMLSource associates a captured page-source file with the current step.
func (r *Recorder) AttachHTMLSource(file string) {
	r.Current().HTMLSourceFile = file
}

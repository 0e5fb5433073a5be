package types

import (
	"path/filepath"
	"strings"
	"time"
)

// Clock supplies the current time. Steps stamp their start time through a
// Clock so timing behaviour is deterministic under test.
type Clock func() time.Time

// SystemClock is the default wall-clock source.
var SystemClock Clock = time.Now

// Step is a node in the acceptance-test step tree. A step with children is a
// group; a step without children is a leaf representing a single user action.
// Whether a step is a group is always derived from its children sequence and
// never stored separately.
//
// A step tree has exactly one logical writer. Trees must be acyclic and a
// child must belong to exactly one parent; this is a caller precondition and
// is not checked at runtime. Traversal over a cyclic tree does not terminate.
type Step struct {
	Description  string
	StartTime    time.Time
	Duration     time.Duration
	ErrorMessage string

	// Artifact references. The model never opens or validates these.
	ScreenshotPath string // report-relative path published for renderers
	ScreenshotFile string // captured screenshot file on disk
	HTMLSourceFile string // captured page-source file on disk

	outcome  Outcome // empty until recorded
	cause    error
	children []*Step
	now      Clock
}

// NewStep creates a step with the given description, stamped with the current
// wall-clock time.
func NewStep(description string) *Step {
	return NewStepWithClock(description, SystemClock)
}

// NewStepWithClock creates a step whose start time and duration measurements
// come from the given clock.
func NewStepWithClock(description string, clock Clock) *Step {
	if clock == nil {
		clock = SystemClock
	}
	return &Step{
		Description: description,
		StartTime:   clock(),
		now:         clock,
	}
}

// RecordDuration captures the elapsed time since the step was created.
// Calling it again re-measures from the same original start time.
func (s *Step) RecordDuration() {
	clock := s.now
	if clock == nil {
		clock = SystemClock
	}
	s.Duration = clock().Sub(s.StartTime)
}

// AddChild appends a child step. Children are ordered; insertion order is
// semantically significant for aggregation and traversal.
func (s *Step) AddChild(child *Step) {
	s.children = append(s.children, child)
}

// Children returns the ordered child steps. The returned slice is a copy;
// the tree itself is append-only through AddChild.
func (s *Step) Children() []*Step {
	out := make([]*Step, len(s.children))
	copy(out, s.children)
	return out
}

// IsGroup reports whether this step contains child steps.
func (s *Step) IsGroup() bool {
	return len(s.children) > 0
}

// SetOutcome records an outcome directly on this step. Last write wins.
func (s *Step) SetOutcome(o Outcome) {
	s.outcome = o
}

// RecordedOutcome returns the directly-assigned outcome, if any.
func (s *Step) RecordedOutcome() (Outcome, bool) {
	return s.outcome, s.outcome != ""
}

// MarkFailed records a failure outcome together with its error detail. This
// is the only mutation that sets outcome and failure detail at once. The
// detail is not cleared if the outcome is later reassigned.
func (s *Step) MarkFailed(message string, cause error) {
	s.outcome = OutcomeFailure
	s.ErrorMessage = message
	s.cause = cause
}

// Cause returns the failure cause recorded by MarkFailed, or nil.
func (s *Step) Cause() error {
	return s.cause
}

// Resolve computes the effective outcome of this step.
//
// A leaf's outcome is its recorded outcome, or pending when none was
// recorded; it is never derived. A group's recorded outcome wins outright
// when it is in the override set (skipped, ignored, pending) - the engine
// short-circuited the group without evaluating its children. Otherwise the
// group's own recorded value is ignored and the children's resolved outcomes,
// in child order, are reduced by the aggregator.
//
// Resolve is a pure computation over the current tree: repeated calls with no
// intervening mutation return identical results.
func (s *Step) Resolve(agg Aggregator) Outcome {
	if !s.IsGroup() {
		if s.outcome != "" {
			return s.outcome
		}
		return OutcomePending
	}
	if s.outcome.OverridesChildren() {
		return s.outcome
	}
	outcomes := make([]Outcome, len(s.children))
	for i, child := range s.children {
		outcomes[i] = child.Resolve(agg)
	}
	return agg.Aggregate(outcomes)
}

// IsSuccessful reports whether the step resolves to success.
func (s *Step) IsSuccessful(agg Aggregator) bool { return s.Resolve(agg) == OutcomeSuccess }

// IsFailure reports whether the step resolves to failure.
func (s *Step) IsFailure(agg Aggregator) bool { return s.Resolve(agg) == OutcomeFailure }

// IsIgnored reports whether the step resolves to ignored.
func (s *Step) IsIgnored(agg Aggregator) bool { return s.Resolve(agg) == OutcomeIgnored }

// IsSkipped reports whether the step resolves to skipped.
func (s *Step) IsSkipped(agg Aggregator) bool { return s.Resolve(agg) == OutcomeSkipped }

// IsPending reports whether the step resolves to pending.
func (s *Step) IsPending(agg Aggregator) bool { return s.Resolve(agg) == OutcomePending }

// Flattened returns every descendant of this step in depth-first order,
// preserving child order at every level. The step itself is not included.
func (s *Step) Flattened() []*Step {
	var flattened []*Step
	for _, child := range s.children {
		flattened = append(flattened, child)
		if child.IsGroup() {
			flattened = append(flattened, child.Flattened()...)
		}
	}
	return flattened
}

// LeafSteps returns every leaf descendant of this step in traversal order.
// Group descendants are descended into but not collected.
func (s *Step) LeafSteps() []*Step {
	var leaves []*Step
	for _, child := range s.children {
		if child.IsGroup() {
			leaves = append(leaves, child.LeafSteps()...)
		} else {
			leaves = append(leaves, child)
		}
	}
	return leaves
}

// DisplayString summarises the subtree in nested bracket notation: a leaf is
// its description, a group is its description followed by its children's
// display strings in brackets.
func (s *Step) DisplayString() string {
	if !s.IsGroup() {
		return s.Description
	}
	parts := make([]string, len(s.children))
	for i, child := range s.children {
		parts[i] = child.DisplayString()
	}
	return s.Description + " [" + strings.Join(parts, ", ") + "]"
}

func (s *Step) String() string {
	return s.DisplayString()
}

// ScreenshotPage derives the companion report-page name for the step's
// screenshot, e.g. "shot_12.png" becomes "screenshot_shot_12.html". Returns
// an empty string when no screenshot was captured. Pure string derivation;
// no filesystem access.
func (s *Step) ScreenshotPage() string {
	if s.ScreenshotFile == "" {
		return ""
	}
	base := filepath.Base(s.ScreenshotFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return "screenshot_" + base + ".html"
}

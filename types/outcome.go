package types

import "fmt"

// Outcome represents the possible results of an executed test step
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeIgnored Outcome = "ignored"
	OutcomeSkipped Outcome = "skipped"
	OutcomePending Outcome = "pending"
)

// AllOutcomes lists every valid outcome value.
var AllOutcomes = []Outcome{
	OutcomeSuccess,
	OutcomeFailure,
	OutcomeIgnored,
	OutcomeSkipped,
	OutcomePending,
}

// IsValid reports whether o is one of the defined outcome values.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeSuccess, OutcomeFailure, OutcomeIgnored, OutcomeSkipped, OutcomePending:
		return true
	}
	return false
}

// OverridesChildren reports whether a group step recorded with this outcome
// suppresses aggregation from its children. Only "never meaningfully
// evaluated" statuses override: a group explicitly marked skipped, ignored or
// pending was short-circuited by the engine, so its children's outcomes are
// not trustworthy signals. Success and failure deliberately do not override.
func (o Outcome) OverridesChildren() bool {
	switch o {
	case OutcomeSkipped, OutcomeIgnored, OutcomePending:
		return true
	}
	return false
}

// ParseOutcome converts a string into an Outcome, rejecting unknown values.
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(s)
	if !o.IsValid() {
		return "", fmt.Errorf("unknown outcome %q", s)
	}
	return o, nil
}

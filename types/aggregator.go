package types

// Aggregator reduces an ordered sequence of per-child outcomes to one overall
// outcome. Implementations must be deterministic for a given input sequence;
// the result is trusted verbatim by Step.Resolve.
type Aggregator interface {
	Aggregate(outcomes []Outcome) Outcome
}

// WorstFirstAggregator is the default aggregation policy: the most severe
// outcome present wins. Severity order, most severe first:
// failure, pending, ignored, skipped, success.
type WorstFirstAggregator struct{}

var severityOrder = []Outcome{
	OutcomeFailure,
	OutcomePending,
	OutcomeIgnored,
	OutcomeSkipped,
	OutcomeSuccess,
}

// Aggregate returns the most severe outcome in the sequence. An empty
// sequence yields pending, since nothing has been evaluated.
func (WorstFirstAggregator) Aggregate(outcomes []Outcome) Outcome {
	if len(outcomes) == 0 {
		return OutcomePending
	}
	present := make(map[Outcome]bool, len(outcomes))
	for _, o := range outcomes {
		present[o] = true
	}
	for _, o := range severityOrder {
		if present[o] {
			return o
		}
	}
	return OutcomePending
}

// AnyFailureAggregator is a minimal policy useful for callers that only care
// about pass/fail: any failure dominates, otherwise any pending dominates,
// otherwise the run is considered successful.
type AnyFailureAggregator struct{}

func (AnyFailureAggregator) Aggregate(outcomes []Outcome) Outcome {
	sawPending := false
	for _, o := range outcomes {
		switch o {
		case OutcomeFailure:
			return OutcomeFailure
		case OutcomePending:
			sawPending = true
		}
	}
	if sawPending {
		return OutcomePending
	}
	return OutcomeSuccess
}

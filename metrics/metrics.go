package metrics

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/stepreport/stepreport/types"
)

const (
	MetricsNamespace = "stepreport"
)

var (
	Debug                bool = true
	nonAlphanumericRegex      = regexp.MustCompile(`[^a-zA-Z ]+`)

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})

	stepOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "step_outcomes_total",
		Help:      "Count of resolved leaf-step outcomes",
	}, []string{
		"suite",
		"run_id",
		"outcome",
	})

	runResults = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_results",
		Help:      "Resolved outcome of acceptance runs",
	}, []string{
		"suite",
		"run_id",
		"outcome",
	})

	runStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "run_steps_total",
		Help:      "Total number of leaf steps in a run",
	}, []string{
		"suite",
		"run_id",
	})

	runDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of acceptance runs",
	}, []string{
		"suite",
		"run_id",
	})
)

// errToLabel tries to make the error string a more valid Prometheus label
func errToLabel(err error) string {
	if err == nil {
		return "nil"
	}
	errClean := nonAlphanumericRegex.ReplaceAllString(err.Error(), "")
	errClean = strings.ReplaceAll(errClean, " ", "_")
	errClean = strings.ReplaceAll(errClean, "__", "_")
	return errClean
}

func RecordError(error string) {
	if Debug {
		log.Debug("metric inc",
			"m", "errors_total",
			"error", error,
		)
	}
	errorsTotal.WithLabelValues(error).Inc()
}

// RecordErrorDetails concats the error message to the label
// and also tries to clean the label to be a valid Prometheus label
func RecordErrorDetails(label string, err error) {
	if err == nil {
		return
	}
	label = fmt.Sprintf("%s.%s", label, errToLabel(err))
	RecordError(label)
}

// RecordStepOutcome counts one resolved leaf-step outcome for a run.
func RecordStepOutcome(suite string, runID string, outcome types.Outcome) {
	if !outcome.IsValid() {
		log.Error("RecordStepOutcome - invalid outcome", "outcome", outcome)
		return
	}
	if Debug {
		log.Debug("metric inc",
			"m", "step_outcomes_total",
			"suite", suite,
			"run_id", runID,
			"outcome", outcome)
	}
	stepOutcomesTotal.WithLabelValues(suite, runID, string(outcome)).Inc()
}

// RecordRun records the overall result of one acceptance run.
func RecordRun(
	suite string,
	runID string,
	outcome types.Outcome,
	totalSteps int,
	duration time.Duration,
) {
	runResults.WithLabelValues(suite, runID, string(outcome)).Set(1)
	runStepsTotal.WithLabelValues(suite, runID).Add(float64(totalSteps))
	runDuration.WithLabelValues(suite, runID).Set(duration.Seconds())
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

// RuleMetrics holds the three metrics recorded by the dispatcher for
// every correction call.
type RuleMetrics struct {
	CorrectionsGenerated *prometheus.CounterVec
	RuleMatched          *prometheus.CounterVec
	DispatchDuration     prometheus.Histogram
}

// NewRuleMetrics creates and registers the dispatcher's rule metrics.
func NewRuleMetrics() *RuleMetrics {
	m := &RuleMetrics{
		CorrectionsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "corrections_generated_total",
			Help:      "Total corrections generated, labeled by the rule that produced them.",
		}, []string{"rule"}),

		RuleMatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rule_matched_total",
			Help:      "Total times a rule's Matches returned true, labeled by rule.",
		}, []string{"rule"}),

		DispatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Histogram of end-to-end Correct() call durations.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}

	Registry.MustRegister(m.CorrectionsGenerated, m.RuleMatched, m.DispatchDuration)

	return m
}

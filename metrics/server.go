package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics holds Prometheus metadata metrics about the running
// correction engine.
type EngineMetrics struct {
	Info   *prometheus.GaugeVec
	uptime prometheus.GaugeFunc
}

// NewEngineMetrics creates and registers engine metadata metrics.
// startTime is used to compute uptime for the demo command.
func NewEngineMetrics(version string, ruleCount int, startTime time.Time) *EngineMetrics {
	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "engine",
		Name:      "info",
		Help:      "Engine build metadata. Value is always 1.",
	}, []string{"version"})
	info.WithLabelValues(version).Set(1)

	rules := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "engine",
		Name:      "rules_loaded",
		Help:      "Number of rules registered in the active registry.",
	})
	rules.Set(float64(ruleCount))

	uptime := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "engine",
		Name:      "uptime_seconds",
		Help:      "Time since the engine was initialized, in seconds.",
	}, func() float64 {
		return time.Since(startTime).Seconds()
	})

	Registry.MustRegister(info, rules, uptime)

	return &EngineMetrics{Info: info, uptime: uptime}
}

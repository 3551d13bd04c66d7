package corrector

import (
	"context"
	"strings"
	"time"

	"github.com/diillson/shellfix/engine"
	"github.com/diillson/shellfix/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher evaluates the rule registry against a command and
// session, producing a deduplicated, ordered list of corrections.
// The zero value is not usable; construct with NewDispatcher.
type Dispatcher struct {
	logger     *zap.Logger
	ruleMetric *metrics.RuleMetrics
}

// NewDispatcher builds a Dispatcher. logger and ruleMetric may both be
// nil: a nil logger discards log lines, a nil ruleMetric disables
// metric recording.
func NewDispatcher(logger *zap.Logger, ruleMetric *metrics.RuleMetrics) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{logger: logger, ruleMetric: ruleMetric}
}

// Correct is the library's entry point: given a command the user
// already ran and session metadata describing the shell environment,
// it returns ranked corrections. ctx carries only the correlation id
// and logging deadline convention used by the ambient stack — the
// dispatcher itself never blocks on it or performs I/O beyond what an
// individual rule's filesystem check requires.
func (d *Dispatcher) Correct(ctx context.Context, cmd engine.Command, session engine.SessionMetadata) []engine.PublicCorrection {
	start := time.Now()
	correlationID := uuid.New().String()
	logger := d.logger.With(zap.String("correlationId", correlationID))

	defer func() {
		if d.ruleMetric != nil {
			d.ruleMetric.DispatchDuration.Observe(time.Since(start).Seconds())
		}
	}()

	argv := cmd.Argv()
	if len(argv) == 0 {
		logger.Debug("empty argv, nothing to correct")
		return nil
	}

	rules := rulesFor(argv[0])
	logger.Debug("dispatching", zap.String("command", argv[0]), zap.Int("candidateRules", len(rules)))

	var results []engine.PublicCorrection
	seen := make(map[string]struct{})
	trimmedInput := strings.TrimSpace(cmd.Input())

	for _, rule := range rules {
		if !rule.ShouldBeConsideredByDefault(cmd, session) {
			continue
		}
		if !rule.Matches(cmd, session) {
			continue
		}

		logger.Debug("rule matched", zap.String("rule", rule.ID()))
		if d.ruleMetric != nil {
			d.ruleMetric.RuleMatched.WithLabelValues(rule.ID()).Inc()
		}

		for _, correction := range rule.Generate(cmd, session) {
			rendered := strings.TrimSpace(correction.Render(session.Shell()))
			if rendered == "" || rendered == trimmedInput {
				continue
			}
			if _, ok := seen[rendered]; ok {
				continue
			}
			seen[rendered] = struct{}{}

			results = append(results, engine.PublicCorrection{
				Command:     rendered,
				RuleApplied: rule.ID(),
			})

			if d.ruleMetric != nil {
				d.ruleMetric.CorrectionsGenerated.WithLabelValues(rule.ID()).Inc()
			}
			logger.Debug("correction generated", zap.String("rule", rule.ID()), zap.String("command", rendered))
		}
	}

	return results
}

var defaultDispatcher = NewDispatcher(nil, nil)

// Correct runs the default, metrics-less Dispatcher. Callers that want
// logging and Prometheus recording should construct their own
// Dispatcher with NewDispatcher instead.
func Correct(ctx context.Context, cmd engine.Command, session engine.SessionMetadata) []engine.PublicCorrection {
	return defaultDispatcher.Correct(ctx, cmd, session)
}

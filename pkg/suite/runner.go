package suite

import (
	"fmt"

	"digital.vasic.matchers/pkg/assertion"
	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/monitor"
)

// Runner evaluates a suite's checks against a map of named values.
type Runner struct {
	suite     *Suite
	logger    logging.Logger
	collector *monitor.Collector
	evaluator *assertion.Evaluator[assertion.Outcome]
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used by the runner.
func WithLogger(logger logging.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithCollector sets a monitor collector that receives one event per
// evaluated check.
func WithCollector(collector *monitor.Collector) RunnerOption {
	return func(r *Runner) {
		r.collector = collector
	}
}

// NewRunner creates a runner for the given suite.
func NewRunner(s *Suite, opts ...RunnerOption) *Runner {
	r := &Runner{
		suite:     s,
		logger:    logging.NewNullLogger(),
		evaluator: assertion.New[assertion.Outcome](assertion.OutcomePolicy{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every check against the value named by its target.
// A missing target fails the check; build and evaluation errors are
// reported on the result, never panicked.
func (r *Runner) Run(values map[string]any) []Result {
	checks := r.suite.Checks()
	results := make([]Result, 0, len(checks))

	for _, def := range checks {
		results = append(results, r.runCheck(def, values))
	}
	return results
}

func (r *Runner) runCheck(def Definition, values map[string]any) Result {
	result := Result{
		Name:   def.Name,
		Target: def.Target,
		Kind:   def.Kind,
	}

	actual, ok := values[def.Target]
	if !ok {
		result.Error = fmt.Sprintf("target not found: %s", def.Target)
		r.logger.Warn("check target missing",
			logging.Field{Key: "check", Value: def.Name},
			logging.Field{Key: "target", Value: def.Target},
		)
		r.emit(result)
		return result
	}

	p, err := Build(def)
	if err != nil {
		result.Error = err.Error()
		r.emit(result)
		return result
	}

	outcome := r.evaluator.That(actual, p)
	result.Passed = outcome.Passed
	result.Message = outcome.Message
	result.Error = outcome.Error

	if result.Passed {
		r.logger.Debug("check passed",
			logging.Field{Key: "check", Value: def.Name},
		)
	} else {
		r.logger.Info("check failed",
			logging.Field{Key: "check", Value: def.Name},
			logging.Field{Key: "target", Value: def.Target},
		)
	}
	r.emit(result)
	return result
}

// emit forwards a result to the collector, if one is configured.
func (r *Runner) emit(result Result) {
	if r.collector == nil {
		return
	}
	switch {
	case result.Error != "":
		r.collector.EmitError(result.Name, result.Target, result.Error)
	case result.Passed:
		r.collector.EmitPassed(result.Name, result.Target)
	default:
		r.collector.EmitFailed(result.Name, result.Target, result.Message)
	}
}

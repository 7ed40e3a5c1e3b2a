package assertion

import (
	"os"

	"digital.vasic.matchers/pkg/matcher"
	"digital.vasic.matchers/pkg/value"
)

// Evaluator is the single call surface of the library. Each call
// normalizes the actual value, computes the match, renders both
// descriptions, and hands the result to the configured policy. The
// evaluator holds no state between calls.
type Evaluator[R any] struct {
	policy Policy[R]
}

// New creates an evaluator bound to the given policy.
func New[R any](policy Policy[R]) *Evaluator[R] {
	return &Evaluator[R]{policy: policy}
}

// That evaluates predicate against actual and reports the outcome
// through the policy. The expected description comes from the
// predicate itself; the actual description is delegated to the value
// formatter.
func (e *Evaluator[R]) That(actual any, p matcher.Predicate) R {
	matched, err := p.Matches(actual)
	return e.policy.Report(MatchResult{
		Matched:  matched,
		Expected: p.Description(),
		Actual:   value.Format(actual),
		Err:      err,
	})
}

// defaultEvaluator backs the package-level boolean surface.
var defaultEvaluator = New[bool](StreamPolicy{Out: os.Stdout})

// That evaluates predicate against actual under the default
// boolean-result policy, writing mismatch diagnostics to stdout.
func That(actual any, p matcher.Predicate) bool {
	return defaultEvaluator.That(actual, p)
}

package assertion

import (
	"fmt"
	"io"
)

// Policy converts one MatchResult into a caller-visible result. A
// policy is selected once per evaluator, not per call; the three
// variants below are mutually exclusive.
type Policy[R any] interface {
	// Report consumes the result of a single evaluation.
	Report(result MatchResult) R
}

// StreamPolicy is the boolean-result policy. On mismatch it writes
// the two-line diagnostic, with a trailing line terminator, to Out and
// returns false; on match it writes nothing and returns true. It
// never panics or raises.
type StreamPolicy struct {
	// Out receives mismatch diagnostics.
	Out io.Writer
}

// Report implements Policy.
func (p StreamPolicy) Report(result MatchResult) bool {
	if result.Err != nil {
		fmt.Fprintf(p.Out, "assertion error: %v\n", result.Err)
		return false
	}
	if !result.Matched {
		fmt.Fprintln(p.Out, result.Message())
		return false
	}
	return true
}

// MismatchError is the raised form of a failed assertion under
// ErrorPolicy. Its message is the two-line diagnostic.
type MismatchError struct {
	// Expected is the predicate's rendered description.
	Expected string

	// Actual is the rendered form of the evaluated value.
	Actual string
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return "Expected: " + e.Expected + "\n but got: " + e.Actual
}

// ErrorPolicy is the exception-result policy. A mismatch is itself
// surfaced as a *MismatchError; success returns nil. Evaluation
// errors are returned unchanged.
type ErrorPolicy struct{}

// Report implements Policy.
func (ErrorPolicy) Report(result MatchResult) error {
	if result.Err != nil {
		return result.Err
	}
	if !result.Matched {
		return &MismatchError{
			Expected: result.Expected,
			Actual:   result.Actual,
		}
	}
	return nil
}

// OutcomePolicy is the host-framework-result policy: it returns a
// structured Outcome carrying the same two-line message for an
// external test-reporting framework to attribute and record.
type OutcomePolicy struct{}

// Report implements Policy.
func (OutcomePolicy) Report(result MatchResult) Outcome {
	if result.Err != nil {
		return Outcome{Passed: false, Error: result.Err.Error()}
	}
	if !result.Matched {
		return Outcome{Passed: false, Message: result.Message()}
	}
	return Outcome{Passed: true}
}

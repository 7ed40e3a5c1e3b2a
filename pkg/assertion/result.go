// Package assertion drives predicate evaluation and turns match
// outcomes into caller-visible results. The matching capability lives
// in pkg/matcher; this package owns the reporting side: a MatchResult
// produced per evaluation and a pluggable Policy that converts it into
// a boolean, an error, or a structured Outcome.
package assertion

// MatchResult is the ephemeral outcome of a single evaluation. It is
// produced per call, handed to the active policy, and never persisted.
type MatchResult struct {
	// Matched reports whether the predicate was satisfied.
	Matched bool

	// Expected is the predicate's rendered description.
	Expected string

	// Actual is the rendered form of the evaluated value.
	Actual string

	// Err carries an unrecoverable evaluation condition such as an
	// invalid pattern or incomparable value shapes. It is never a
	// plain mismatch.
	Err error
}

// Message returns the two-line mismatch diagnostic.
func (r MatchResult) Message() string {
	return "Expected: " + r.Expected + "\n but got: " + r.Actual
}

// Outcome is the structured result handed to a host test-reporting
// framework. The framework owns call-site attribution; this package
// never records source locations.
type Outcome struct {
	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// Message holds the two-line diagnostic on mismatch, empty on
	// success.
	Message string `json:"message,omitempty"`

	// Error holds the evaluation error text when evaluation itself
	// failed, empty otherwise.
	Error string `json:"error,omitempty"`
}

// Package matcher provides composable predicate objects for tests.
// A Predicate pairs an expected payload with a matching rule and a
// description renderer; leaf predicates cover equality, containment,
// string and numeric properties, and combinators compose predicates
// into larger ones. Predicates are immutable once constructed and safe
// to evaluate concurrently against different values.
package matcher

import (
	"fmt"

	"digital.vasic.matchers/pkg/value"
)

// Predicate is an immutable matcher object. Matches reports whether
// the actual value satisfies the predicate; an error is returned for
// unrecoverable conditions (incompatible value shapes, invalid
// patterns) and is never folded into a plain false.
type Predicate interface {
	// Matches evaluates the predicate against an actual value.
	Matches(actual any) (bool, error)

	// Description renders the expected side of the diagnostic.
	Description() string
}

// TypeError reports that an expected and an actual value are not
// comparable under any matching rule.
type TypeError struct {
	// Expected names the shape the predicate requires.
	Expected string

	// Actual names the shape that was supplied.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf(
		"type mismatch: cannot match %s against %s",
		e.Expected, e.Actual,
	)
}

// PatternError reports that a pattern predicate's expression failed to
// compile.
type PatternError struct {
	// Pattern is the expression that failed to compile.
	Pattern string

	// Err is the underlying compile error.
	Err error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying compile error.
func (e *PatternError) Unwrap() error { return e.Err }

// typeError builds a TypeError from an expected shape name and the
// normalized actual value.
func typeError(expected string, actual value.Value) error {
	return &TypeError{Expected: expected, Actual: actual.Kind().String()}
}

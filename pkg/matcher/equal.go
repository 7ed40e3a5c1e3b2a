package matcher

import "digital.vasic.matchers/pkg/value"

// equalTo matches values equal to a fixed expected payload.
type equalTo struct {
	expected any
}

// EqualTo returns a predicate that matches values equal to expected.
// Scalars compare by canonical representation, text by content,
// sequences element-wise, and plain records without defined equality
// fall back to structural comparison. Values of an incompatible shape
// are rejected with a TypeError rather than reported as a mismatch.
func EqualTo(expected any) Predicate {
	return &equalTo{expected: expected}
}

// Matches implements Predicate.
func (m *equalTo) Matches(actual any) (bool, error) {
	e := value.Of(m.expected)
	a := value.Of(actual)
	if !value.Comparable(e, a) {
		return false, typeError(e.Kind().String(), a)
	}
	return value.Equal(m.expected, actual), nil
}

// Description implements Predicate.
func (m *equalTo) Description() string {
	return value.Format(m.expected)
}

// nilMatcher matches nil pointer-shaped values.
type nilMatcher struct{}

// Nil returns a predicate that matches a nil pointer-shaped value.
// Value-shaped actuals are rejected with a TypeError.
func Nil() Predicate {
	return nilMatcher{}
}

// Matches implements Predicate.
func (nilMatcher) Matches(actual any) (bool, error) {
	a := value.Of(actual)
	if !a.Nilable() {
		return false, typeError("pointer", a)
	}
	return a.IsNil(), nil
}

// Description implements Predicate.
func (nilMatcher) Description() string {
	return "nil"
}

package matcher

// isMatcher is a pass-through wrapper for readability.
type isMatcher struct {
	inner Predicate
}

// Is wraps a predicate without changing its result; it exists purely
// so that assertions read naturally.
func Is(p Predicate) Predicate {
	return &isMatcher{inner: p}
}

// Matches implements Predicate.
func (m *isMatcher) Matches(actual any) (bool, error) {
	return m.inner.Matches(actual)
}

// Description implements Predicate.
func (m *isMatcher) Description() string {
	return "is " + m.inner.Description()
}

// notMatcher negates a predicate.
type notMatcher struct {
	inner Predicate
}

// Not returns a predicate matching exactly when p does not.
// Evaluation errors from p propagate unchanged.
func Not(p Predicate) Predicate {
	return &notMatcher{inner: p}
}

// Matches implements Predicate.
func (m *notMatcher) Matches(actual any) (bool, error) {
	ok, err := m.inner.Matches(actual)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Description implements Predicate.
func (m *notMatcher) Description() string {
	return "not " + m.inner.Description()
}

// allOf is the pairwise conjunction of two predicates.
type allOf struct {
	a Predicate
	b Predicate
}

// AllOf returns a predicate matching when both a and b match. Both
// legs are always evaluated because both descriptions form the
// combined diagnostic; n-ary conjunction is built by nesting pairs.
func AllOf(a, b Predicate) Predicate {
	return &allOf{a: a, b: b}
}

// Matches implements Predicate.
func (m *allOf) Matches(actual any) (bool, error) {
	am, aerr := m.a.Matches(actual)
	bm, berr := m.b.Matches(actual)
	if aerr != nil {
		return false, aerr
	}
	if berr != nil {
		return false, berr
	}
	return am && bm, nil
}

// Description implements Predicate.
func (m *allOf) Description() string {
	return "all of " + m.a.Description() + " and " + m.b.Description()
}

// anyOf is the pairwise disjunction of two predicates.
type anyOf struct {
	a Predicate
	b Predicate
}

// AnyOf returns a predicate matching when either a or b matches. Both
// legs are always evaluated, mirroring AllOf.
func AnyOf(a, b Predicate) Predicate {
	return &anyOf{a: a, b: b}
}

// Matches implements Predicate.
func (m *anyOf) Matches(actual any) (bool, error) {
	am, aerr := m.a.Matches(actual)
	bm, berr := m.b.Matches(actual)
	if aerr != nil {
		return false, aerr
	}
	if berr != nil {
		return false, berr
	}
	return am || bm, nil
}

// Description implements Predicate.
func (m *anyOf) Description() string {
	return "any of " + m.a.Description() + " or " + m.b.Description()
}

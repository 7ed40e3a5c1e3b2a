package matcher

import (
	"strings"

	"digital.vasic.matchers/pkg/value"
)

// containsMatcher matches sequences holding an item or text holding a
// substring.
type containsMatcher struct {
	item any
}

// Contains returns a predicate that matches when the expected item
// appears anywhere in the actual sequence, or when the expected text
// occurs anywhere inside the actual text. When item is itself a
// Predicate the semantics flip to universal quantification: every
// element of the actual sequence must satisfy it (see EveryItem).
func Contains(item any) Predicate {
	if p, ok := item.(Predicate); ok {
		return EveryItem(p)
	}
	return &containsMatcher{item: item}
}

// Matches implements Predicate.
func (m *containsMatcher) Matches(actual any) (bool, error) {
	a := value.Of(actual)
	switch a.Kind() {
	case value.KindText:
		e := value.Of(m.item)
		if e.Kind() != value.KindText {
			return false, typeError(e.Kind().String(), a)
		}
		return strings.Contains(a.Text(), e.Text()), nil
	case value.KindSequence:
		for _, el := range a.Seq() {
			if value.Equal(el, m.item) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, typeError("sequence or text", a)
	}
}

// Description implements Predicate.
func (m *containsMatcher) Description() string {
	return "contains " + value.Format(m.item)
}

// everyItem quantifies a predicate over all elements of a sequence.
type everyItem struct {
	inner Predicate
}

// EveryItem returns a predicate that matches when every element of the
// actual sequence individually satisfies p.
func EveryItem(p Predicate) Predicate {
	return &everyItem{inner: p}
}

// Matches implements Predicate.
func (m *everyItem) Matches(actual any) (bool, error) {
	a := value.Of(actual)
	if a.Kind() != value.KindSequence {
		return false, typeError("sequence", a)
	}
	for _, el := range a.Seq() {
		ok, err := m.inner.Matches(el)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Description implements Predicate.
func (m *everyItem) Description() string {
	return "contains " + m.inner.Description()
}

// hasKey matches associative values holding a given key.
type hasKey struct {
	key any
}

// HasKey returns a predicate that matches when any entry of the actual
// associative value has a key equal to the expected key. It is
// constrained to associative shapes and independent of Contains.
func HasKey(key any) Predicate {
	return &hasKey{key: key}
}

// Matches implements Predicate.
func (m *hasKey) Matches(actual any) (bool, error) {
	a := value.Of(actual)
	if a.Kind() != value.KindAssoc {
		return false, typeError("associative", a)
	}
	for _, p := range a.Pairs() {
		if value.Equal(p.Key, m.key) {
			return true, nil
		}
	}
	return false, nil
}

// Description implements Predicate.
func (m *hasKey) Description() string {
	return "has key " + value.Format(m.key)
}

// inMatcher matches values found in a declared collection.
type inMatcher struct {
	items []any
	desc  string
}

// In returns a predicate with operand roles reversed relative to
// Contains: it matches when the actual value is one of the declared
// collection's elements. Non-sequence payloads are rejected at
// construction by the slice constraint.
func In[S ~[]E, E any](collection S) Predicate {
	items := make([]any, len(collection))
	for i, e := range collection {
		items[i] = e
	}
	return &inMatcher{
		items: items,
		desc:  "one of " + value.Format(collection),
	}
}

// Matches implements Predicate.
func (m *inMatcher) Matches(actual any) (bool, error) {
	for _, item := range m.items {
		if value.Equal(item, actual) {
			return true, nil
		}
	}
	return false, nil
}

// Description implements Predicate.
func (m *inMatcher) Description() string {
	return m.desc
}

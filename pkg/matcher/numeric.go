package matcher

import (
	"fmt"

	"digital.vasic.matchers/pkg/value"
)

// Float constrains numeric closeness to floating-point kinds. Other
// numeric kinds use EqualTo instead.
type Float interface {
	~float32 | ~float64
}

// closeTo matches floats within an inclusive tolerance of a center.
type closeTo[T Float] struct {
	center    T
	tolerance T
}

// CloseTo returns a predicate matching floating-point values within
// tolerance of center, bounds inclusive. A tolerance of zero
// degenerates to exact equality.
func CloseTo[T Float](center, tolerance T) Predicate {
	return &closeTo[T]{center: center, tolerance: tolerance}
}

// Matches implements Predicate.
func (m *closeTo[T]) Matches(actual any) (bool, error) {
	a := value.Of(actual)
	if a.Kind() != value.KindFloat {
		return false, typeError("float", a)
	}
	center := float64(m.center)
	tolerance := float64(m.tolerance)
	got := a.Float()
	return got >= center-tolerance && got <= center+tolerance, nil
}

// Description implements Predicate.
func (m *closeTo[T]) Description() string {
	return fmt.Sprintf(
		"a numeric value within +/-%v of %v",
		m.tolerance, m.center,
	)
}

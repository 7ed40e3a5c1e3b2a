package matcher

import (
	"regexp"
	"strings"
	"unicode"

	"digital.vasic.matchers/pkg/value"
)

// textOf normalizes an actual value and requires it to be text.
func textOf(actual any) (string, error) {
	a := value.Of(actual)
	if a.Kind() != value.KindText {
		return "", typeError("text", a)
	}
	return a.Text(), nil
}

// equalIgnoringCase matches text equal under ASCII case folding.
type equalIgnoringCase struct {
	expected string
}

// EqualToIgnoringCase returns a predicate matching text equal to
// expected when compared with per-character ASCII upper-case folding.
// Full Unicode locale folding is deliberately not applied.
func EqualToIgnoringCase(expected string) Predicate {
	return &equalIgnoringCase{expected: expected}
}

// Matches implements Predicate.
func (m *equalIgnoringCase) Matches(actual any) (bool, error) {
	s, err := textOf(actual)
	if err != nil {
		return false, err
	}
	if len(s) != len(m.expected) {
		return false, nil
	}
	for i := 0; i < len(s); i++ {
		if upperASCII(s[i]) != upperASCII(m.expected[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Description implements Predicate.
func (m *equalIgnoringCase) Description() string {
	return "Equal to " + value.Format(m.expected) + " ignoring case"
}

func upperASCII(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// equalIgnoringWhiteSpace matches text equal after stripping all
// whitespace-classified characters from both operands.
type equalIgnoringWhiteSpace struct {
	expected string
}

// EqualToIgnoringWhiteSpace returns a predicate matching text equal to
// expected once every whitespace character has been removed from both
// sides.
func EqualToIgnoringWhiteSpace(expected string) Predicate {
	return &equalIgnoringWhiteSpace{expected: expected}
}

// Matches implements Predicate.
func (m *equalIgnoringWhiteSpace) Matches(actual any) (bool, error) {
	s, err := textOf(actual)
	if err != nil {
		return false, err
	}
	return stripSpace(s) == stripSpace(m.expected), nil
}

// Description implements Predicate.
func (m *equalIgnoringWhiteSpace) Description() string {
	return "Equal to " + value.Format(m.expected) + " ignoring white space"
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// startsWith matches text beginning with a prefix.
type startsWith struct {
	prefix string
}

// StartsWith returns a predicate matching text that begins with the
// expected prefix.
func StartsWith(prefix string) Predicate {
	return &startsWith{prefix: prefix}
}

// Matches implements Predicate.
func (m *startsWith) Matches(actual any) (bool, error) {
	s, err := textOf(actual)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(s, m.prefix), nil
}

// Description implements Predicate.
func (m *startsWith) Description() string {
	return "starts with " + value.Format(m.prefix)
}

// endsWith matches text ending with a suffix.
type endsWith struct {
	suffix string
}

// EndsWith returns a predicate matching text that ends with the
// expected suffix. A suffix longer than the actual text is a plain
// mismatch.
func EndsWith(suffix string) Predicate {
	return &endsWith{suffix: suffix}
}

// Matches implements Predicate.
func (m *endsWith) Matches(actual any) (bool, error) {
	s, err := textOf(actual)
	if err != nil {
		return false, err
	}
	if len(m.suffix) > len(s) {
		return false, nil
	}
	return strings.HasSuffix(s, m.suffix), nil
}

// Description implements Predicate.
func (m *endsWith) Description() string {
	return "ends with " + value.Format(m.suffix)
}

// patternMatcher matches text against an anchored regular expression.
type patternMatcher struct {
	expr string
	re   *regexp.Regexp
	err  error
}

// MatchesPattern returns a predicate matching when the entire actual
// text matches the regular expression compiled from expr. The pattern
// is compiled once at construction; a compile failure is surfaced as a
// PatternError on the first evaluation attempt, never treated as a
// non-match.
func MatchesPattern(expr string) Predicate {
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return &patternMatcher{expr: expr, err: &PatternError{Pattern: expr, Err: err}}
	}
	return &patternMatcher{expr: expr, re: re}
}

// Matches implements Predicate.
func (m *patternMatcher) Matches(actual any) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	s, err := textOf(actual)
	if err != nil {
		return false, err
	}
	return m.re.MatchString(s), nil
}

// Description implements Predicate.
func (m *patternMatcher) Description() string {
	return "a string matching the pattern " + m.expr
}

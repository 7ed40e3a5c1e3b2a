package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualToIgnoringCase(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   any
		matched  bool
	}{
		{"folded equal", "ABC", "abc", true},
		{"mixed case", "HeLLo", "hELlo", true},
		{"identical", "abc", "abc", true},
		{"different letters", "abc", "abd", false},
		{"different length", "abc", "abcd", false},
		{"byte buffer actual", "ABC", []byte("abc"), true},
		{"non-letters unchanged", "a-b", "A-B", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := EqualToIgnoringCase(tt.expected).Matches(tt.actual)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, ok)
		})
	}
}

func TestEqualToIgnoringWhiteSpace(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   any
		matched  bool
	}{
		{"spaces removed", "a b c", "abc", true},
		{"spaces both sides", "a b", "a    b", true},
		{"tabs and newlines", "a\tb\n", "ab", true},
		{"different letters", "a b", "ac", false},
		{"case still matters", "A B", "ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := EqualToIgnoringWhiteSpace(tt.expected).Matches(tt.actual)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, ok)
		})
	}
}

func TestStartsWith(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		actual  any
		matched bool
	}{
		{"prefix", "he", "hello", true},
		{"whole string", "hello", "hello", true},
		{"empty prefix", "", "hello", true},
		{"not a prefix", "lo", "hello", false},
		{"longer than actual", "hello!", "hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := StartsWith(tt.prefix).Matches(tt.actual)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, ok)
		})
	}
}

func TestEndsWith(t *testing.T) {
	tests := []struct {
		name    string
		suffix  string
		actual  any
		matched bool
	}{
		{"suffix", "lo", "hello", true},
		{"whole string", "hello", "hello", true},
		{"empty suffix", "", "hello", true},
		{"not a suffix", "he", "hello", false},
		{"longer than actual", "lo", "x", false},
		{"longer than empty actual", "lo", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := EndsWith(tt.suffix).Matches(tt.actual)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, ok)
		})
	}
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		actual  any
		matched bool
	}{
		{"full match", "[0-9]+", "123", true},
		{"trailing garbage", "[0-9]+", "12a", false},
		{"leading garbage", "[0-9]+", "a12", false},
		{"alternation", "cat|dog", "dog", true},
		{"anchored whole string", "a.c", "abc", true},
		{"empty actual", "[0-9]*", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := MatchesPattern(tt.expr).Matches(tt.actual)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, ok)
		})
	}
}

func TestMatchesPatternInvalidExpression(t *testing.T) {
	p := MatchesPattern("[")

	ok, err := p.Matches("anything")
	assert.False(t, ok)

	var pe *PatternError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "[", pe.Pattern)

	// Every evaluation reports the same compile failure.
	_, again := p.Matches("anything")
	assert.Equal(t, err, again)
}

func TestTextMatchersRejectNonText(t *testing.T) {
	predicates := []Predicate{
		EqualToIgnoringCase("a"),
		EqualToIgnoringWhiteSpace("a"),
		StartsWith("a"),
		EndsWith("a"),
		MatchesPattern("a"),
	}

	for _, p := range predicates {
		ok, err := p.Matches(42)
		assert.False(t, ok)

		var te *TypeError
		require.ErrorAs(t, err, &te, "predicate %q", p.Description())
		assert.Equal(t, "text", te.Expected)
	}
}

func TestTextDescriptions(t *testing.T) {
	assert.Equal(t, `Equal to "abc" ignoring case`, EqualToIgnoringCase("abc").Description())
	assert.Equal(t, `Equal to "a b" ignoring white space`, EqualToIgnoringWhiteSpace("a b").Description())
	assert.Equal(t, `starts with "he"`, StartsWith("he").Description())
	assert.Equal(t, `ends with "lo"`, EndsWith("lo").Description())
	assert.Equal(t, "a string matching the pattern [0-9]+", MatchesPattern("[0-9]+").Description())
}

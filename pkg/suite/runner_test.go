package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/monitor"
)

func TestRunnerRun(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(
		Definition{Name: "prefix", Target: "greeting", Kind: "starts_with", Expected: "he"},
		Definition{Name: "suffix", Target: "greeting", Kind: "ends_with", Expected: "x"},
		Definition{Name: "band", Target: "score", Kind: "close_to", Expected: 1.0, Tolerance: 0.05},
	))

	results := NewRunner(s).Run(map[string]any{
		"greeting": "hello",
		"score":    1.04,
	})
	require.Len(t, results, 3)

	assert.True(t, results[0].Passed)
	assert.Empty(t, results[0].Message)

	assert.False(t, results[1].Passed)
	assert.Equal(t, "Expected: ends with \"x\"\n but got: \"hello\"", results[1].Message)

	assert.True(t, results[2].Passed)
}

func TestRunnerMissingTarget(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(
		Definition{Name: "orphan", Target: "absent", Kind: "nil"},
	))

	results := NewRunner(s).Run(map[string]any{})
	require.Len(t, results, 1)

	assert.False(t, results[0].Passed)
	assert.Equal(t, "target not found: absent", results[0].Error)
}

func TestRunnerEvaluationError(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(
		Definition{Name: "text only", Target: "v", Kind: "starts_with", Expected: "a"},
	))

	results := NewRunner(s).Run(map[string]any{"v": 42})
	require.Len(t, results, 1)

	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Error, "type mismatch")
}

func TestRunnerEmitsEvents(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(
		Definition{Name: "pass", Target: "greeting", Kind: "starts_with", Expected: "he"},
		Definition{Name: "fail", Target: "greeting", Kind: "ends_with", Expected: "x"},
		Definition{Name: "error", Target: "absent", Kind: "nil"},
	))

	collector := monitor.NewCollector()
	NewRunner(s, WithCollector(collector)).Run(map[string]any{"greeting": "hello"})

	events := collector.Events()
	require.Len(t, events, 3)
	assert.Equal(t, monitor.EventPassed, events[0].Type)
	assert.Equal(t, monitor.EventFailed, events[1].Type)
	assert.Equal(t, monitor.EventError, events[2].Type)

	stats := collector.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Passed)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Errors)
}

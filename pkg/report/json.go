// Package report generates machine-readable summaries of suite runs.
package report

import (
	"encoding/json"
	"io"
	"time"

	"digital.vasic.matchers/pkg/suite"
)

// JSONReporter generates JSON reports from suite results.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a JSON reporter. When pretty is true,
// output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// runSummary is the JSON structure for a whole run.
type runSummary struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Total       int            `json:"total"`
	Passed      int            `json:"passed"`
	Failed      int            `json:"failed"`
	Errors      int            `json:"errors"`
	Results     []suite.Result `json:"results"`
}

// GenerateSummary creates a JSON summary of all check results.
func (r *JSONReporter) GenerateSummary(results []suite.Result) ([]byte, error) {
	summary := runSummary{
		GeneratedAt: time.Now(),
		Total:       len(results),
		Results:     results,
	}

	for _, res := range results {
		switch {
		case res.Error != "":
			summary.Errors++
		case res.Passed:
			summary.Passed++
		default:
			summary.Failed++
		}
	}

	if r.pretty {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}

// WriteSummary writes a JSON summary to the specified writer.
func (r *JSONReporter) WriteSummary(w io.Writer, results []suite.Result) error {
	data, err := r.GenerateSummary(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

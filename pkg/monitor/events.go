// Package monitor streams assertion evaluation events to live
// observers over WebSockets and keeps aggregate run statistics.
package monitor

import "time"

// EventType represents the type of evaluation event.
type EventType string

const (
	// EventPassed reports a satisfied check.
	EventPassed EventType = "passed"
	// EventFailed reports a mismatched check.
	EventFailed EventType = "failed"
	// EventError reports a check whose evaluation itself failed.
	EventError EventType = "error"
)

// Event represents a single check evaluation outcome.
type Event struct {
	Type      EventType `json:"type"`
	Check     string    `json:"check"`
	Target    string    `json:"target,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

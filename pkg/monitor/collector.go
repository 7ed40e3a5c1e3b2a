package monitor

import (
	"sync"
	"time"
)

// Collector captures evaluation events and timing data. It is safe
// for concurrent use.
type Collector struct {
	mu       sync.RWMutex
	events   []Event
	handlers []func(Event)
	stats    Stats
}

// Stats holds aggregate statistics for a run.
type Stats struct {
	Total     int           `json:"total"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Errors    int           `json:"errors"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
}

// NewCollector creates an empty event collector.
func NewCollector() *Collector {
	return &Collector{
		events: make([]Event, 0, 64),
		stats:  Stats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each event.
func (c *Collector) OnEvent(handler func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *Collector) Emit(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	c.stats.Total++
	switch event.Type {
	case EventPassed:
		c.stats.Passed++
	case EventFailed:
		c.stats.Failed++
	case EventError:
		c.stats.Errors++
	}
	c.stats.Duration = time.Since(c.stats.StartTime)
	handlers := make([]func(Event), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// EmitPassed emits a passed-check event.
func (c *Collector) EmitPassed(check, target string) {
	c.Emit(Event{Type: EventPassed, Check: check, Target: target})
}

// EmitFailed emits a failed-check event with its diagnostic.
func (c *Collector) EmitFailed(check, target, msg string) {
	c.Emit(Event{Type: EventFailed, Check: check, Target: target, Message: msg})
}

// EmitError emits an evaluation-error event.
func (c *Collector) EmitError(check, target, msg string) {
	c.Emit(Event{Type: EventError, Check: check, Target: target, Message: msg})
}

// Events returns a copy of all collected events.
func (c *Collector) Events() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Event, len(c.events))
	copy(result, c.events)
	return result
}

// Stats returns the current aggregate statistics.
func (c *Collector) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.stats
	s.Duration = time.Since(s.StartTime)
	return s
}

// Reset clears all collected events and statistics.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.stats = Stats{StartTime: time.Now()}
}

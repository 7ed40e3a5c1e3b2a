package logging

// NullLogger discards all log output. It is the default for
// components where no logger has been configured.
type NullLogger struct{}

// NewNullLogger creates a logger that discards everything.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Info discards the message.
func (n *NullLogger) Info(msg string, fields ...Field) {}

// Warn discards the message.
func (n *NullLogger) Warn(msg string, fields ...Field) {}

// Error discards the message.
func (n *NullLogger) Error(msg string, fields ...Field) {}

// Debug discards the message.
func (n *NullLogger) Debug(msg string, fields ...Field) {}

// WithFields returns the logger unchanged.
func (n *NullLogger) WithFields(fields ...Field) Logger { return n }

// Close is a no-op.
func (n *NullLogger) Close() error { return nil }

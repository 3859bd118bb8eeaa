package link

// Logger is an optional logging interface accepted by the link and
// transfer packages. This allows integration with any logging
// framework.
//
// Example with zerolog:
//
//	type ZLogger struct{ log zerolog.Logger }
//	func (l *ZLogger) Debug(msg string, kv ...interface{}) { l.log.Debug().Fields(kv).Msg(msg) }
//	func (l *ZLogger) Info(msg string, kv ...interface{})  { l.log.Info().Fields(kv).Msg(msg) }
//	func (l *ZLogger) Error(msg string, kv ...interface{}) { l.log.Error().Fields(kv).Msg(msg) }
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}

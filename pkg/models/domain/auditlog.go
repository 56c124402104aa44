package domain

import "time"

type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogEntry is one line of the run narrative.
type LogEntry struct {
	Time   time.Time
	Action string
	Detail string
	Type   LogLevel
}

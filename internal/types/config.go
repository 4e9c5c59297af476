package types

// RunMode is the deployment mode the application runs in
type RunMode string

const (
	ModeLocal RunMode = "local"
	ModeAPI   RunMode = "api"
)

// LogLevel is the logging level for the application
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

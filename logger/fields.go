package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldCommand   = "command"
	FieldOperation = "operation"

	// Calendar
	FieldDate      = "date"
	FieldTimezone  = "timezone"
	FieldLunar     = "lunar"
	FieldZodiac    = "zodiac"
	FieldGanzhi    = "ganzhi"
	FieldSolarTerm = "solar_term"
	FieldLuck      = "luck"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Files and formats
	FieldFile   = "file"
	FieldFormat = "format"
	FieldCount  = "count"
)

// Context keys for propagating logging context
type contextKey string

const (
	commandKey   contextKey = "logger_command"
	componentKey contextKey = "logger_component"
)

// WithCommand adds the running CLI command name to the context for logging
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}
	if ctx == nil {
		return fields
	}

	if command, ok := ctx.Value(commandKey).(string); ok && command != "" {
		fields = append(fields, FieldCommand, command)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// LoggerFromContext returns the global logger with fields extracted from context.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	engine := calendar.NewEngine(calendar.WithLogger(logger.ComponentLogger("calendar.engine")))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}

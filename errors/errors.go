// Package errors provides error handling for tongshu.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints attached to configuration and input errors
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := v.ReadInConfig(); err != nil {
//	    return errors.Wrap(err, "failed to read config")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "use an IANA name such as Asia/Kuala_Lumpur")
//
// The calendar engine itself never returns errors: unknown symbols and time
// zones fall back locally. Errors only surface from configuration, file
// loading and the CLI.
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is           = crdb.Is
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	UnwrapAll    = crdb.UnwrapAll
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Sentinel errors. Wrap these with errors.Wrap() to add context while
// preserving the type for errors.Is().
var (
	// ErrInvalidConfig indicates a configuration value failed validation
	ErrInvalidConfig = New("invalid configuration")

	// ErrUnknownTimezone indicates a time zone name could not be resolved
	ErrUnknownTimezone = New("unknown timezone")

	// ErrUnsupportedFormat indicates an output or input format that is not handled
	ErrUnsupportedFormat = New("unsupported format")

	// ErrInvalidInput indicates malformed user input at the CLI layer
	ErrInvalidInput = New("invalid input")
)

// IsInvalidConfigError checks if an error is or wraps ErrInvalidConfig
func IsInvalidConfigError(err error) bool {
	return err != nil && Is(err, ErrInvalidConfig)
}

// IsUnknownTimezoneError checks if an error is or wraps ErrUnknownTimezone
func IsUnknownTimezoneError(err error) bool {
	return err != nil && Is(err, ErrUnknownTimezone)
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}

// NewUnknownTimezoneError creates an unknown-timezone error naming the input
func NewUnknownTimezoneError(input string) error {
	return WithHint(
		Wrapf(ErrUnknownTimezone, "%q", input),
		"use an IANA name such as Asia/Kuala_Lumpur, a city name, or an abbreviation like SGT",
	)
}

// NewInvalidInputError creates an invalid-input error with a formatted message
func NewInvalidInputError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidInput, Newf(format, args...).Error())
}

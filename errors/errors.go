// Package errors re-exports github.com/cockroachdb/errors for protodts.
//
// Every package in the module creates and wraps errors through here so that
// stack traces, hints and details survive all the way to the CLI:
//
//	if err := os.WriteFile(path, data, 0644); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", path)
//	}
//
//	return errors.WithHint(err, "run 'protodts generate' to refresh the output")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing hints and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Inspection
var (
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Sentinel errors. Wrap them to add context; match with errors.Is.
var (
	// ErrInvalidSchema marks schema input that cannot be decoded or fails strict checks
	ErrInvalidSchema = New("invalid schema")

	// ErrUnsupportedSource marks a schema source that cannot be resolved or fetched
	ErrUnsupportedSource = New("unsupported schema source")

	// ErrOutOfDate marks generated artifacts that differ from a fresh generation
	ErrOutOfDate = New("generated declarations are out of date")

	// ErrInvalidConfig marks configuration rejected by Validate
	ErrInvalidConfig = New("invalid configuration")
)

// IsInvalidSchema reports whether err is or wraps ErrInvalidSchema.
func IsInvalidSchema(err error) bool {
	return err != nil && Is(err, ErrInvalidSchema)
}

// IsOutOfDate reports whether err is or wraps ErrOutOfDate.
func IsOutOfDate(err error) bool {
	return err != nil && Is(err, ErrOutOfDate)
}

// NewInvalidSchemaError creates an invalid-schema error with a formatted message
func NewInvalidSchemaError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidSchema, Newf(format, args...).Error())
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}

package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// -----------------------------------------------------------------------------
// Error kinds. Every failure returned by an indicator wraps exactly one of
// these, so callers can branch with errors.Is.
// -----------------------------------------------------------------------------
var (
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrInsufficientData   = errors.New("insufficient data")
	ErrNotImplemented     = errors.New("not implemented")
	ErrComputationFailure = errors.New("computation failure")
)

// InvalidParameter reports a rejected option value for the named indicator.
func InvalidParameter(indicator, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, "%s: %s", indicator, fmt.Sprintf(format, args...))
}

// InsufficientData reports a series that is shorter than the indicator needs.
func InsufficientData(indicator string, have, need int) error {
	return errors.Wrapf(ErrInsufficientData,
		"%s: input length %d is shorter than the required %d samples", indicator, have, need)
}

// NotImplemented reports an indicator (or variant) that has no implementation.
func NotImplemented(indicator string) error {
	return errors.Wrapf(ErrNotImplemented, "%s", indicator)
}

// ComputationFailure reports an internal inconsistency detected while running
// a recurrence or aligning its output.
func ComputationFailure(indicator, format string, args ...interface{}) error {
	return errors.Wrapf(ErrComputationFailure, "%s: %s", indicator, fmt.Sprintf(format, args...))
}

// KindOf returns the name of the error kind wrapped by err, or "" when err is
// nil or not an indicator error.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidParameter):
		return "InvalidParameter"
	case errors.Is(err, ErrInsufficientData):
		return "InsufficientData"
	case errors.Is(err, ErrNotImplemented):
		return "NotImplemented"
	case errors.Is(err, ErrComputationFailure):
		return "ComputationFailure"
	default:
		return ""
	}
}

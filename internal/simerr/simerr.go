// Package simerr holds the error conditions shared by the simulator packages.
// Call sites wrap one of the sentinels with context; callers test with errors.Is.
package simerr

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned for arguments outside the accepted domain,
	// e.g. a non-positive rate, a non-finite SNR or zero training steps.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNumericDegeneracy is returned when a computation would produce NaN/Inf,
	// e.g. normalizing a zero-norm encoding or a non-finite training loss.
	ErrNumericDegeneracy = errors.New("numeric degeneracy")

	// ErrResourceExhaustion is returned when a block size makes the message
	// alphabet too large to enumerate.
	ErrResourceExhaustion = errors.New("resource exhaustion")
)

//InvalidArgument wraps ErrInvalidArgument with a formatted message
func InvalidArgument(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

//NumericDegeneracy wraps ErrNumericDegeneracy with a formatted message
func NumericDegeneracy(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNumericDegeneracy, format, args...)
}

//ResourceExhaustion wraps ErrResourceExhaustion with a formatted message
func ResourceExhaustion(format string, args ...interface{}) error {
	return errors.Wrapf(ErrResourceExhaustion, format, args...)
}

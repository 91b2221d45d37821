package errors

import "errors"

// Common error types used across the buffered-io library

var (
	// ErrBypass indicates that direct access to the underlying stream was
	// refused because it would silently discard buffered bytes. It is a
	// refusal, not a fault: drain or flush the wrapper and try again.
	ErrBypass = errors.New("cannot bypass: buffered bytes pending")

	// ErrNotReadable indicates that the underlying stream does not
	// implement the readable capability
	ErrNotReadable = errors.New("underlying stream is not readable")

	// ErrNotWritable indicates that the underlying stream does not
	// implement the writable capability
	ErrNotWritable = errors.New("underlying stream is not writable")
)

// IsBypass returns true if the error is a bypass refusal
func IsBypass(err error) bool {
	return errors.Is(err, ErrBypass)
}

// IsUnsupported returns true if the error indicates a capability the
// underlying stream does not implement
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrNotReadable) || errors.Is(err, ErrNotWritable)
}

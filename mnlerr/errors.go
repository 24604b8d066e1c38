// Package mnlerr collects the sentinel errors shared by every codec in this
// module. Callers compare against these with errors.Is; wrapping context is
// always added with fmt.Errorf("...: %w", ...) rather than new error types.
package mnlerr

import "errors"

var (
	// ErrTruncated indicates a stream ended before a fixed-size field could be
	// fully read.
	ErrTruncated = errors.New("mnllib: truncated read")

	// ErrInvalidCommandID indicates a command id at or beyond the bound of the
	// active parameter-metadata table. Inside subroutine parsing this is
	// recovered into a footer, not propagated.
	ErrInvalidCommandID = errors.New("mnllib: invalid command id")

	// ErrInvalidParameterType indicates a parameter nibble with no entry in the
	// parameter-type registry. Inside subroutine parsing this is recovered into
	// a footer, not propagated.
	ErrInvalidParameterType = errors.New("mnllib: invalid command parameter type")

	// ErrArgumentCountMismatch indicates a Command whose argument count does not
	// match its metadata's parameter count. Always a hard error on serialize.
	ErrArgumentCountMismatch = errors.New("mnllib: command argument count mismatch")

	// ErrEmptyInput indicates an attempt to compress zero bytes, which the
	// reference encoder's block-count varint cannot represent unambiguously.
	ErrEmptyInput = errors.New("mnllib: cannot compress empty input")

	// ErrInvalidMagic indicates a chunk or table did not begin with the magic
	// value its caller expected.
	ErrInvalidMagic = errors.New("mnllib: invalid magic value")
)

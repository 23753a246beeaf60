// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package oasis

import "github.com/pkg/errors"

// Kind classifies why an *Error was returned, so callers can distinguish
// failure categories with errors.As instead of matching message text.
type Kind uint8

const (
	// UnexpectedID means a record-parser was invoked with an id outside
	// its variant's set.
	UnexpectedID Kind = iota
	// MalformedHeader means a reserved header bit was nonzero, or an
	// illegal bit combination was set.
	MalformedHeader
	// MalformedRecord means a record violated one of its structural
	// invariants (e.g. a square Rectangle carrying an explicit height).
	MalformedRecord
	// UnfillableField means a merge required a modal value that was unset.
	UnfillableField
	// UnfillableRepetition means a ReuseRepetition had no modal value to
	// reuse.
	UnfillableRepetition
	// CompressionError means an unknown CBlock compression type, or a
	// decompressed-length mismatch.
	CompressionError
	// InvalidData classifies primitive-codec violations. The record
	// readers return errors from package wire as they come, not as
	// *Error values, so those errors carry no Kind.
	InvalidData
)

func (k Kind) String() string {
	switch k {
	case UnexpectedID:
		return "UnexpectedId"
	case MalformedHeader:
		return "MalformedHeader"
	case MalformedRecord:
		return "MalformedRecord"
	case UnfillableField:
		return "UnfillableField"
	case UnfillableRepetition:
		return "UnfillableRepetition"
	case CompressionError:
		return "CompressionError"
	case InvalidData:
		return "InvalidData"
	default:
		return "Unknown"
	}
}

// Error is the single error type this package returns. It carries a Kind
// alongside a wrapped cause, in place of the reference implementation's
// per-kind exception hierarchy (InvalidDataError, UnfillableFieldError,
// ...): one Go type with a tag field rather than seven small classes.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	return "oasis: " + e.Kind.String() + ": " + e.cause.Error()
}

// Unwrap lets errors.Is/errors.As see through to the underlying cause.
func (e *Error) Unwrap() error { return e.cause }

// Cause mirrors Unwrap in github.com/pkg/errors's naming, so errors.Cause
// (used elsewhere in this package to detect io.EOF through a wrapped
// chain) keeps working if an *Error is ever nested inside one.
func (e *Error) Cause() error { return e.cause }

// newError builds an *Error of the given kind, wrapping a formatted cause
// with github.com/pkg/errors so the message carries the same
// errors.Errorf-style context the rest of the teacher's code uses.
func newError(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, cause: errors.Errorf(format, args...)}
}

func unexpectedID(format string, args ...interface{}) error {
	return newError(UnexpectedID, format, args...)
}

func malformedHeader(format string, args ...interface{}) error {
	return newError(MalformedHeader, format, args...)
}

func malformedRecord(format string, args ...interface{}) error {
	return newError(MalformedRecord, format, args...)
}

func unfillableField(format string, args ...interface{}) error {
	return newError(UnfillableField, format, args...)
}

func unfillableRepetition(format string, args ...interface{}) error {
	return newError(UnfillableRepetition, format, args...)
}

func compressionError(format string, args ...interface{}) error {
	return newError(CompressionError, format, args...)
}

// invalidData builds an *Error of Kind InvalidData. No reader in this
// package calls it; errors from package wire are returned unwrapped.
func invalidData(format string, args ...interface{}) error {
	return newError(InvalidData, format, args...)
}

// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffep

import (
	"errors"
	"fmt"
)

// Every error returned by this package wraps exactly one of these.
// Use errors.Is to check for the kind.
var (
	// ErrUnrecognizedFormat is returned when the first two bytes are not "II" or "MM".
	ErrUnrecognizedFormat = errors.New("tiffep: unrecognized format")
	// ErrUnknownFieldType is returned for a field type code outside [1, 12].
	ErrUnknownFieldType = errors.New("tiffep: unknown field type")
	// ErrMalformedInput is returned for primitives with the wrong width,
	// invalid ASCII text and values that exceed the configured limits.
	ErrMalformedInput = errors.New("tiffep: malformed input")
	// ErrDuplicateTag is returned when a tag appears twice in one directory.
	ErrDuplicateTag = errors.New("tiffep: duplicate tag")
	// ErrMissingSource is returned when values stored at an offset are
	// requested without a source to read them from.
	ErrMissingSource = errors.New("tiffep: missing source")
	// ErrIO wraps seek and read failures, including offsets beyond the end of the source.
	ErrIO = errors.New("tiffep: i/o error")
	// ErrCyclicChain is returned when a directory offset is visited twice.
	ErrCyclicChain = errors.New("tiffep: cyclic directory chain")

	// ErrStopWalking is a sentinel error to signal that the walk should stop.
	ErrStopWalking = fmt.Errorf("stop walking")
)

// IsInvalidFormat reports whether err was caused by the content of the source,
// i.e. anything but a missing source.
func IsInvalidFormat(err error) bool {
	if err == nil {
		return false
	}
	for _, kind := range []error{
		ErrUnrecognizedFormat,
		ErrUnknownFieldType,
		ErrMalformedInput,
		ErrDuplicateTag,
		ErrIO,
		ErrCyclicChain,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

func newMalformedErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

func newIOError(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, fmt.Sprintf(format, args...), err)
}

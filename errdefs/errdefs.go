//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

// Package errdefs defines the kinds of failures reported by the library.
// Errors returned by the library wrap one of these kinds, use errors.Is to
// classify them.
package errdefs

import (
	"errors"
	"fmt"
)

var (
	// Configuration is invalid: non-positive size or scale, missing argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// Configuration is initialised twice or not initialised at all.
	ErrInvalidState = errors.New("invalid state")

	// Codec does not support the requested format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// Source or destination failed to read or write.
	ErrIO = errors.New("i/o failure")

	// Destination exists and overwrite is disallowed.
	ErrDestinationExists = errors.New("destination exists")

	// Batch ran out of destination names.
	ErrInsufficientDestinations = errors.New("insufficient destinations")
)

// Wrap annotates the cause with the kind, both are matched by errors.Is.
func Wrap(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, cause)
}

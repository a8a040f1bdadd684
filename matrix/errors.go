// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates that a referenced vertex ID is not present in the index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrOutOfRange indicates a row or column index outside [0, Size()).
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// SPDX-License-Identifier: MIT
// Package: gfsrg/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` and the method name.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a constructor could not complete, e.g. a nil
// constructor was passed to BuildGraph or construction was cancelled.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrNilField indicates FieldGraph received a nil field.
var ErrNilField = errors.New("builder: field is nil")

// ErrNilRelation indicates FieldGraph received a nil relation.
var ErrNilRelation = errors.New("builder: relation is nil")

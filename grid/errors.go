// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. No function panics on user-triggered conditions.

package grid

import "errors"

// Every message is prefixed with "grid: ..." so it can be grepped in logs.
// Context (method, coordinates) is attached at the detection site with
// fmt.Errorf("...: %w", ErrX); callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrEmptyGrid indicates a [][]T input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates a [][]T input whose rows have differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. a data
	// slice whose length is not rows*cols, or two arrays of different shape.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNilGrid indicates that a nil array, image or matrix was supplied.
	ErrNilGrid = errors.New("grid: nil array")

	// ErrMalformed indicates an array whose backing buffer does not match its
	// declared shape.
	ErrMalformed = errors.New("grid: malformed array")
)

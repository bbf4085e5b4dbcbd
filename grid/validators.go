// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Provide a single, canonical source of truth for array validation checks.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     match them via errors.Is and still see where the check failed.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → WellFormed → Shape).

package grid

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil.
// Returns ErrNilGrid if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Numeric](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilGrid)
	}

	return nil
}

// ValidateWellFormed ensures m is non-nil, has non-negative dimensions and a
// backing buffer of exactly rows*cols elements.
// Errors: ErrNilGrid, ErrMalformed.
// Complexity: O(1).
func ValidateWellFormed[T Numeric](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateWellFormed", err)
	}
	if m.r < 0 || m.c < 0 || len(m.data) != m.r*m.c {
		return validatorErrorf("ValidateWellFormed", ErrMalformed)
	}

	return nil
}

// ValidateShape ensures m is well-formed and exactly rows×cols.
// Errors: ErrNilGrid, ErrMalformed, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateShape[T Numeric](m *Dense[T], rows, cols int) error {
	if err := ValidateWellFormed(m); err != nil {
		return validatorErrorf("ValidateShape", err)
	}
	if m.r != rows || m.c != cols {
		return fmt.Errorf("ValidateShape: have %dx%d, want %dx%d: %w", m.r, m.c, rows, cols, ErrDimensionMismatch)
	}

	return nil
}

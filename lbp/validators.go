// SPDX-License-Identifier: MIT
// Package: lbp
//
// Purpose:
//   - Single source of truth for configuration and argument checks.
//   - Configuration checks run at construction time, never during evaluation.
//
// Note:
//   - Config.Validate follows a fixed order:
//     neighbors → radii → variant → parity → rectangle → code width.
//     The first violation wins, so a config with several problems always
//     reports the same sentinel.

package lbp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlbp/grid"
)

// Validate checks c and returns nil or an error wrapping ErrConfig.
// Complexity: O(1).
func (c Config) Validate() error {
	if c.Neighbors < MinNeighbors || c.Neighbors > MaxNeighbors {
		return fmt.Errorf("P=%d not in [%d,%d]: %w", c.Neighbors, MinNeighbors, MaxNeighbors, ErrNeighbors)
	}
	if err := validateRadius("R_y", c.RadiusY); err != nil {
		return err
	}
	if err := validateRadius("R_x", c.RadiusX); err != nil {
		return err
	}
	if !c.Variant.valid() {
		return fmt.Errorf("%v: %w", c.Variant, ErrVariant)
	}
	if c.Variant == DirectionCoded && c.Neighbors%2 != 0 {
		return fmt.Errorf("P=%d: %w", c.Neighbors, ErrOddNeighbors)
	}
	if !c.Circular && c.Neighbors%4 != 0 {
		return fmt.Errorf("P=%d: %w", c.Neighbors, ErrRectangularNeighbors)
	}
	if bits := c.CodeBits(); bits > MaxCodeBits {
		return fmt.Errorf("%d bits > %d: %w", bits, MaxCodeBits, ErrCodeBits)
	}

	return nil
}

// validateRadius rejects NaN, ±Inf, non-positive and oversized radii.
func validateRadius(name string, r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 || r > MaxRadius {
		return fmt.Errorf("%s=%g: %w", name, r, ErrRadius)
	}

	return nil
}

// validateOperator guards every public entry point taking an *Operator.
// A zero-value Operator{} has no table and is rejected like nil.
func validateOperator(op *Operator) error {
	if op == nil {
		return ErrNilOperator
	}
	if len(op.table) == 0 || len(op.samplers) != op.cfg.Neighbors {
		return fmt.Errorf("operator not built by New: %w", ErrNilOperator)
	}

	return nil
}

// validateSource checks that src is present and well-formed.
// Errors: ErrNilImage, grid.ErrMalformed.
func validateSource[T grid.Numeric](src *grid.Dense[T]) error {
	if src == nil {
		return fmt.Errorf("source: %w", ErrNilImage)
	}
	if err := grid.ValidateWellFormed(src); err != nil {
		return fmt.Errorf("source: %w", err)
	}

	return nil
}

// validateDestination checks that dst is present, well-formed and exactly
// rows×cols. Errors: ErrNilImage, grid.ErrMalformed, ErrShapeMismatch.
func validateDestination(dst *grid.Dense[uint16], rows, cols int) error {
	if dst == nil {
		return fmt.Errorf("destination: %w", ErrNilImage)
	}
	err := grid.ValidateShape(dst, rows, cols)
	if errors.Is(err, grid.ErrDimensionMismatch) {
		return fmt.Errorf("destination: %w: %w", ErrShapeMismatch, err)
	}
	if err != nil {
		return fmt.Errorf("destination: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package lbp: sentinel error set.
//
// Three categories, each matchable with errors.Is:
//   - ErrConfig: invalid parameter combination, raised by New/NewFromConfig/With
//     before any evaluation. Every configuration sentinel wraps ErrConfig.
//   - ErrShapeMismatch / ErrNilImage / ErrNilOperator: per-call argument problems.
//   - ErrOutOfBounds: single-pixel query outside the valid interior.

package lbp

import (
	"errors"
	"fmt"
)

// ErrConfig is the umbrella for every configuration error.
var ErrConfig = errors.New("lbp: invalid configuration")

var (
	// ErrNeighbors indicates a neighbor count outside [MinNeighbors, MaxNeighbors].
	ErrNeighbors = fmt.Errorf("%w: neighbor count out of range", ErrConfig)

	// ErrRadius indicates a radius that is not a finite value in (0, MaxRadius].
	ErrRadius = fmt.Errorf("%w: radius must be finite and positive", ErrConfig)

	// ErrOddNeighbors indicates DirectionCoded was requested with an odd neighbor count.
	ErrOddNeighbors = fmt.Errorf("%w: direction-coded variant requires an even neighbor count", ErrConfig)

	// ErrRectangularNeighbors indicates rectangular navigation with a neighbor
	// count that is not a multiple of 4.
	ErrRectangularNeighbors = fmt.Errorf("%w: rectangular navigation requires a multiple of 4 neighbors", ErrConfig)

	// ErrVariant indicates an unknown encoding variant.
	ErrVariant = fmt.Errorf("%w: unknown encoding variant", ErrConfig)

	// ErrCodeBits indicates a raw code wider than MaxCodeBits (e.g. 16
	// neighbors plus the average bit).
	ErrCodeBits = fmt.Errorf("%w: raw code exceeds the lookup table limit", ErrConfig)

	// ErrRadiiMismatch is returned by Operator.Radius when R_y != R_x.
	ErrRadiiMismatch = fmt.Errorf("%w: radii differ, use Radii", ErrConfig)

	// ErrTableSize indicates a custom lookup table whose length is not 2^CodeBits.
	ErrTableSize = fmt.Errorf("%w: lookup table size does not match the raw code space", ErrConfig)
)

var (
	// ErrShapeMismatch indicates a destination array whose shape differs from
	// the interior shape computed for the source image.
	ErrShapeMismatch = errors.New("lbp: destination shape mismatch")

	// ErrNilImage indicates a nil source or destination array.
	ErrNilImage = errors.New("lbp: nil image")

	// ErrNilOperator indicates a nil *Operator argument, or one not built by
	// New/NewFromConfig (e.g. a zero-value Operator{}).
	ErrNilOperator = errors.New("lbp: nil operator")

	// ErrOutOfBounds indicates a pixel coordinate too close to the border for
	// the configured radii.
	ErrOutOfBounds = errors.New("lbp: pixel outside the valid interior")
)

var (
	// ErrLabelRange indicates a label >= nLabels (or nLabels < 1) while building histograms.
	ErrLabelRange = errors.New("lbp: label out of histogram range")

	// ErrInvalidBlocks indicates a block geometry that yields no blocks or has
	// non-positive sizes / overlaps not smaller than the block.
	ErrInvalidBlocks = errors.New("lbp: invalid block geometry")
)

// SPDX-License-Identifier: MIT

// Package lbp - label reduction tables.
//
// Purpose:
//   - Map every raw code in [0, 2^k) to a reduced label through a dense table.
//   - Keep the reduction rules (identity, uniform, rotation-invariant, both)
//     in one place, built once per configuration and read-only afterwards.
//
// Label numbering:
//   - Identity: label == raw code; 2^k labels.
//   - Uniform: popcount for codes with ≤ 2 circular transitions, P+1 otherwise.
//   - Rotation-invariant: classes numbered consecutively in ascending order of
//     their minimal rotation. Scanning codes in ascending order meets every
//     class first at its minimal member, so this is also first-occurrence order.
//   - Uniform + rotation-invariant: rotation classes of the uniform codes,
//     numbered as above, then one extra label for all non-uniform codes. The
//     uniform class with i ones has minimal member 2^i−1, so its label is i.
//
// Complexity quicksheet (k = code bits):
//   - identity/uniform: O(2^k); rotation-invariant: O(k·2^k).

package lbp

import (
	"fmt"
	"math/bits"
)

// BuildTable returns the reduction table for cfg and the number of labels
// (one plus the largest value stored in the table).
//
// Errors: any ErrConfig sentinel from cfg.Validate.
func BuildTable(cfg Config) ([]uint16, int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, fmt.Errorf("BuildTable: %w", err)
	}
	lut := buildTable(cfg)

	return lut, labelCount(lut), nil
}

// buildTable assumes cfg is valid.
func buildTable(cfg Config) []uint16 {
	k := cfg.CodeBits()
	switch {
	case cfg.Uniform && cfg.RotationInvariant:
		return rotationTable(k, func(code uint32) bool { return IsUniform(code, k) })
	case cfg.Uniform:
		return uniformTable(k)
	case cfg.RotationInvariant:
		return rotationTable(k, nil)
	default:
		return identityTable(k)
	}
}

// identityTable maps every code onto itself.
func identityTable(k int) []uint16 {
	lut := make([]uint16, 1<<k)
	for code := range lut {
		lut[code] = uint16(code)
	}

	return lut
}

// uniformTable labels uniform codes by their number of ones (0..k) and
// collapses every other code onto k+1.
func uniformTable(k int) []uint16 {
	lut := make([]uint16, 1<<k)
	nonUniform := uint16(k + 1)
	var code uint32
	for code = 0; code < uint32(len(lut)); code++ {
		if IsUniform(code, k) {
			lut[code] = uint16(bits.OnesCount32(code))
		} else {
			lut[code] = nonUniform
		}
	}

	return lut
}

// rotationTable numbers rotation classes in ascending order of their minimal
// member. When keep is non-nil only codes accepted by keep are classified;
// the rest share one trailing label. keep must be invariant under rotation.
func rotationTable(k int, keep func(code uint32) bool) []uint16 {
	size := uint32(1) << k
	lut := make([]uint16, size)
	classOf := make([]int32, size) // label of a class, indexed by its minimal member
	for i := range classOf {
		classOf[i] = -1
	}

	next := int32(0)
	var code, rep uint32
	for code = 0; code < size; code++ {
		if keep != nil && !keep(code) {
			continue
		}
		rep = MinRotation(code, k)
		if classOf[rep] < 0 {
			classOf[rep] = next
			next++
		}
		lut[code] = uint16(classOf[rep])
	}
	if keep != nil {
		rest := uint16(next)
		for code = 0; code < size; code++ {
			if !keep(code) {
				lut[code] = rest
			}
		}
	}

	return lut
}

// labelCount returns max(lut)+1, or 0 for an empty table.
func labelCount(lut []uint16) int {
	if len(lut) == 0 {
		return 0
	}
	var hi uint16
	for _, l := range lut {
		if l > hi {
			hi = l
		}
	}

	return int(hi) + 1
}

//-----------------------------------------------------------------------------
// Bit-pattern helpers (k-bit circular patterns)
//-----------------------------------------------------------------------------

// RotateRight rotates the low k bits of code right by shift positions.
// Bits above k are discarded. shift may be any integer.
func RotateRight(code uint32, shift, k int) uint32 {
	if k <= 0 {
		return 0
	}
	mask := uint32(1)<<k - 1
	code &= mask
	shift %= k
	if shift < 0 {
		shift += k
	}
	if shift == 0 {
		return code
	}

	return (code>>shift | code<<(k-shift)) & mask
}

// Transitions counts 0→1 and 1→0 changes when the low k bits of code are read
// circularly.
func Transitions(code uint32, k int) int {
	if k <= 0 {
		return 0
	}
	mask := uint32(1)<<k - 1
	code &= mask

	return bits.OnesCount32(code ^ RotateRight(code, 1, k))
}

// IsUniform reports whether the k-bit circular pattern has at most two transitions.
func IsUniform(code uint32, k int) bool {
	return Transitions(code, k) <= 2
}

// MinRotation returns the numerically smallest of the k circular rotations of code.
func MinRotation(code uint32, k int) uint32 {
	best := RotateRight(code, 0, k)
	var r uint32
	for s := 1; s < k; s++ {
		if r = RotateRight(code, s, k); r < best {
			best = r
		}
	}

	return best
}

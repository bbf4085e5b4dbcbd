// SPDX-License-Identifier: MIT

package grid

// Test bridge (white-box): builds arrays that the public constructors refuse
// to produce, so validators can be exercised against broken invariants.

// MalformedForTest returns a rows×cols Dense whose buffer holds n elements.
func MalformedForTest[T Numeric](rows, cols, n int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, n)}
}

// Package grid provides generic, row-major 2D numeric arrays used as the
// input images and output label maps of the lbp package.
//
// What:
//
//   - Dense[T] wraps a flat row-major buffer of any integer or floating-point
//     element type (see Numeric) with explicit offset math i*cols + j.
//   - At/Set are bounds-checked and return sentinel errors instead of panicking.
//   - Row/Data expose the backing storage for hot loops (no copies).
//   - Adapters convert from image.Gray / image.Gray16 and gonum mat.Matrix,
//     and render label maps back into an *image.Gray for inspection.
//
// Why:
//
//   - Texture descriptors read arbitrary numeric images (uint8 camera frames,
//     uint16 medical slices, float64 pre-processed data) and must treat them
//     uniformly as float64 when sampling and thresholding.
//   - A single, typed array with well-formedness validation keeps the lbp
//     package free of shape bookkeeping.
//
// Complexity:
//
//   - New, FromSlice, FromRows, Clone: O(R×C) time and memory.
//   - At, Set, Row, Shape:             O(1).
//   - FromGray/FromGray16/FromMatrix:  O(R×C).
//
// Errors:
//
//   - ErrBadShape:          negative dimensions.
//   - ErrEmptyGrid:         FromRows got no rows or no columns.
//   - ErrNonRectangular:    FromRows got rows of differing lengths.
//   - ErrDimensionMismatch: data length or compared shapes disagree.
//   - ErrOutOfRange:        At/Set index outside the array.
//   - ErrNilGrid:           nil array (or nil image/matrix) argument.
//   - ErrMalformed:         backing buffer inconsistent with the declared shape.
package grid

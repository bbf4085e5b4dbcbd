// Package lvlbp is a pure-Go toolkit for Local Binary Pattern texture
// descriptors: turning single-channel images into per-pixel texture codes and
// pooling those codes into histogram features.
//
// What is inside?
//
//	grid/  generic row-major numeric arrays (Dense[T]) with validation, plus
//	       adapters from image.Gray, image.Gray16 and gonum matrices
//	lbp/   the descriptor: sampling geometry, encoding variants, label
//	       reduction tables, sequential and parallel extraction, block
//	       histograms
//
// Why lvlbp?
//
//   - One immutable Operator per configuration, safe to share across goroutines.
//   - Any integer or floating-point pixel type, evaluated in float64.
//   - Every invalid input is reported as a sentinel error, never a panic.
//
// Quick start:
//
//	img, _ := grid.FromGray(gray)
//	op, _ := lbp.New(lbp.WithCircular(true), lbp.WithUniform(true))
//	labels, _ := lbp.ExtractNew(op, img)
//	hist, _ := lbp.Histogram(labels, op.MaxLabel())
//
// A runnable end-to-end program lives in examples/.
package lvlbp

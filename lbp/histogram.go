// SPDX-License-Identifier: MIT

// Package lbp - spatial label histograms.
//
// A label map is summarized by counting labels, either globally (Histogram)
// or per rectangular block (BlockHistograms). Concatenating block histograms
// keeps coarse spatial layout, which is the usual face/texture feature vector
// built on top of LBP codes. The feature matrix is a gonum *mat.Dense so it
// can be fed straight into linear-algebra tooling.

package lbp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlbp/grid"
)

// Blocks describes the tiling used by BlockHistograms.
//
//   - Height, Width      block size in label-map cells (> 0).
//   - OverlapY, OverlapX cells shared by vertically/horizontally adjacent
//     blocks, in [0, size). The block stride is size − overlap.
//   - Normalize          scale every row to sum to 1 (rows of empty blocks
//     cannot occur, since every block covers at least one cell).
//
// Blocks that would cross the right or bottom edge are not emitted; leftover
// cells are ignored.
type Blocks struct {
	Height, Width      int
	OverlapY, OverlapX int
	Normalize          bool
}

// Count returns the number of blocks along each axis for a rows×cols map.
// Errors: ErrInvalidBlocks on non-positive sizes or overlaps outside [0, size).
func (b Blocks) Count(rows, cols int) (ny, nx int, err error) {
	if b.Height <= 0 || b.Width <= 0 {
		return 0, 0, fmt.Errorf("block %dx%d: %w", b.Height, b.Width, ErrInvalidBlocks)
	}
	if b.OverlapY < 0 || b.OverlapY >= b.Height || b.OverlapX < 0 || b.OverlapX >= b.Width {
		return 0, 0, fmt.Errorf("overlap %dx%d for block %dx%d: %w",
			b.OverlapY, b.OverlapX, b.Height, b.Width, ErrInvalidBlocks)
	}
	if rows >= b.Height {
		ny = (rows - b.OverlapY) / (b.Height - b.OverlapY)
	}
	if cols >= b.Width {
		nx = (cols - b.OverlapX) / (b.Width - b.OverlapX)
	}

	return ny, nx, nil
}

// Histogram counts every label of labels into nLabels bins.
// Pass op.MaxLabel() as nLabels for a map produced by op.
//
// Errors: ErrNilImage, grid.ErrMalformed, ErrLabelRange (nLabels < 1 or a
// label ≥ nLabels).
// Complexity: O(rows·cols + nLabels).
func Histogram(labels *grid.Dense[uint16], nLabels int) ([]float64, error) {
	if err := checkLabels(labels, nLabels); err != nil {
		return nil, fmt.Errorf("Histogram: %w", err)
	}
	hist := make([]float64, nLabels)
	if err := accumulate(hist, labels.Data()); err != nil {
		return nil, fmt.Errorf("Histogram: %w", err)
	}

	return hist, nil
}

// BlockHistograms tiles labels with b and returns one histogram per block:
// row i of the result is the block at (i / nx, i % nx), column l the count
// (or share, with Normalize) of label l.
//
// Stage 1 (Validate): labels, nLabels, block geometry; at least one block.
// Stage 2 (Count): per block, one pass over its cells.
// Stage 3 (Normalize): optional L1 scaling of each row.
//
// Errors: ErrNilImage, grid.ErrMalformed, ErrLabelRange, ErrInvalidBlocks.
// Complexity: O(blocks·Height·Width + blocks·nLabels).
func BlockHistograms(labels *grid.Dense[uint16], nLabels int, b Blocks) (*mat.Dense, error) {
	if err := checkLabels(labels, nLabels); err != nil {
		return nil, fmt.Errorf("BlockHistograms: %w", err)
	}
	rows, cols := labels.Shape()
	ny, nx, err := b.Count(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("BlockHistograms: %w", err)
	}
	if ny == 0 || nx == 0 {
		return nil, fmt.Errorf("BlockHistograms: %dx%d map, block %dx%d: %w",
			rows, cols, b.Height, b.Width, ErrInvalidBlocks)
	}

	strideY, strideX := b.Height-b.OverlapY, b.Width-b.OverlapX
	out := mat.NewDense(ny*nx, nLabels, nil)
	row := make([]float64, nLabels)
	var y0, x0 int
	for by := 0; by < ny; by++ {
		y0 = by * strideY
		for bx := 0; bx < nx; bx++ {
			x0 = bx * strideX
			clear(row)
			for y := y0; y < y0+b.Height; y++ {
				if err = accumulate(row, labels.Row(y)[x0:x0+b.Width]); err != nil {
					return nil, fmt.Errorf("BlockHistograms: block (%d,%d): %w", by, bx, err)
				}
			}
			if b.Normalize {
				scale(row, 1/float64(b.Height*b.Width))
			}
			out.SetRow(by*nx+bx, row)
		}
	}

	return out, nil
}

// checkLabels validates a label map and the bin count.
func checkLabels(labels *grid.Dense[uint16], nLabels int) error {
	if labels == nil {
		return fmt.Errorf("labels: %w", ErrNilImage)
	}
	if err := grid.ValidateWellFormed(labels); err != nil {
		return fmt.Errorf("labels: %w", err)
	}
	if nLabels < 1 {
		return fmt.Errorf("nLabels=%d: %w", nLabels, ErrLabelRange)
	}

	return nil
}

// accumulate adds one count per label in src to hist.
func accumulate(hist []float64, src []uint16) error {
	for _, l := range src {
		if int(l) >= len(hist) {
			return fmt.Errorf("label %d >= %d: %w", l, len(hist), ErrLabelRange)
		}
		hist[l]++
	}

	return nil
}

func scale(v []float64, f float64) {
	for i := range v {
		v[i] *= f
	}
}

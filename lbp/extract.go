package lbp

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlbp/grid"
)

// ShapeOf returns the label-map shape Extract produces for src.
// Errors: ErrNilOperator, ErrNilImage, grid.ErrMalformed.
func ShapeOf[T grid.Numeric](op *Operator, src *grid.Dense[T]) (int, int, error) {
	if err := validateOperator(op); err != nil {
		return 0, 0, err
	}
	if err := validateSource(src); err != nil {
		return 0, 0, fmt.Errorf("ShapeOf: %w", err)
	}
	r, c := op.Shape(src.Rows(), src.Cols())

	return r, c, nil
}

// Extract labels every interior pixel of src into dst:
//
//	dst[i][j] = Code(op, src, i+⌈R_y⌉, j+⌈R_x⌉)
//
// dst must already have shape op.Shape(src.Rows(), src.Cols()). Border pixels
// have no output. A source smaller than 2⌈R⌉+1 on either axis yields a
// zero-area result and dst is left untouched.
//
// Stage 1 (Validate): operator, source, destination shape.
// Stage 2 (Evaluate): row-major sweep with one reusable sample buffer.
//
// Errors: ErrNilOperator, ErrNilImage, grid.ErrMalformed, ErrShapeMismatch.
// Complexity: O(rows·cols·P) time, O(P) extra memory.
func Extract[T grid.Numeric](op *Operator, src *grid.Dense[T], dst *grid.Dense[uint16]) error {
	outRows, outCols, err := prepare(op, src, dst)
	if err != nil {
		return fmt.Errorf("Extract: %w", err)
	}
	extractRows(newEvaluator(op, src), dst, 0, outRows, outCols)

	return nil
}

// ExtractNew is Extract into a freshly allocated label map.
// Errors: ErrNilOperator, ErrNilImage, grid.ErrMalformed.
func ExtractNew[T grid.Numeric](op *Operator, src *grid.Dense[T]) (*grid.Dense[uint16], error) {
	r, c, err := ShapeOf(op, src)
	if err != nil {
		return nil, fmt.Errorf("ExtractNew: %w", err)
	}
	dst, err := grid.New[uint16](r, c)
	if err != nil {
		return nil, fmt.Errorf("ExtractNew: %w", err)
	}
	extractRows(newEvaluator(op, src), dst, 0, r, c)

	return dst, nil
}

// ExtractParallel is Extract with the output rows split into contiguous bands
// evaluated concurrently. At most workers bands run at once; workers <= 0
// means runtime.GOMAXPROCS(0). Bands write disjoint rows of dst, so the result
// is bit-identical to Extract.
//
// Errors: same as Extract.
// Complexity: O(rows·cols·P / workers) wall time, O(workers·P) extra memory.
func ExtractParallel[T grid.Numeric](op *Operator, src *grid.Dense[T], dst *grid.Dense[uint16], workers int) error {
	outRows, outCols, err := prepare(op, src, dst)
	if err != nil {
		return fmt.Errorf("ExtractParallel: %w", err)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, outRows)
	if workers <= 1 {
		extractRows(newEvaluator(op, src), dst, 0, outRows, outCols)
		return nil
	}

	band := (outRows + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < outRows; start += band {
		start := start
		end := min(start+band, outRows)
		g.Go(func() error {
			extractRows(newEvaluator(op, src), dst, start, end, outCols)
			return nil
		})
	}

	return g.Wait()
}

// prepare runs the shared validation of Extract and ExtractParallel and
// returns the output extents.
func prepare[T grid.Numeric](op *Operator, src *grid.Dense[T], dst *grid.Dense[uint16]) (int, int, error) {
	r, c, err := ShapeOf(op, src)
	if err != nil {
		return 0, 0, err
	}
	if err = validateDestination(dst, r, c); err != nil {
		return 0, 0, err
	}

	return r, c, nil
}

// extractRows labels output rows [start, end).
func extractRows[T grid.Numeric](e *evaluator[T], dst *grid.Dense[uint16], start, end, outCols int) {
	out := dst.Data()
	table := e.op.table
	by, bx := e.op.by, e.op.bx
	for i := start; i < end; i++ {
		row := out[i*outCols : (i+1)*outCols]
		for j := range row {
			row[j] = table[e.raw(i+by, j+bx)]
		}
	}
}

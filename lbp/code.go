package lbp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlbp/grid"
)

// Code returns the reduced label of the pixel at (y, x).
//
// Algorithm Outline:
//  1. Sample the P neighbors: bilinear interpolation for circular navigation,
//     the pixel at the truncated integer offset otherwise. Every value is
//     converted to float64 before it is combined or compared.
//  2. Threshold t = center, or (Σ samples + center)/(P+1) with ToAverage.
//  3. Assemble the raw code (MSB first, sample 0 is the top-left neighbor):
//     Regular        n_p ≥ t, plus center ≥ t as a trailing bit when enabled;
//     Transitional   n_p ≥ n_{(p+1) mod P};
//     DirectionCoded per pair (p, p+P/2): shift by 2, +1 if (n_p−t)(n_q−t) ≥ 0,
//     +2 if |n_p−t| ≥ |n_q−t|.
//  4. Return LookupTable()[raw].
//
// NaN policy: every comparison involving NaN is false, so a NaN sample (or a
// NaN threshold) contributes 0 bits. The result is deterministic.
//
// Errors:
//   - ErrNilOperator, ErrNilImage, grid.ErrMalformed.
//   - ErrOutOfBounds when y ∉ [⌈R_y⌉, rows−⌈R_y⌉) or x ∉ [⌈R_x⌉, cols−⌈R_x⌉).
//
// Complexity: O(P).
func Code[T grid.Numeric](op *Operator, src *grid.Dense[T], y, x int) (uint16, error) {
	raw, err := RawCode(op, src, y, x)
	if err != nil {
		return 0, err
	}

	return op.table[raw], nil
}

// RawCode is Code without the final table lookup. Useful to inspect the bit
// pattern behind a label or to drive a custom reduction.
func RawCode[T grid.Numeric](op *Operator, src *grid.Dense[T], y, x int) (uint16, error) {
	if err := validateOperator(op); err != nil {
		return 0, err
	}
	if err := validateSource(src); err != nil {
		return 0, fmt.Errorf("Code: %w", err)
	}
	if err := op.checkInterior(src.Rows(), src.Cols(), y, x); err != nil {
		return 0, err
	}

	return newEvaluator(op, src).raw(y, x), nil
}

// checkInterior validates a center coordinate against the ⌈R⌉ border.
func (op *Operator) checkInterior(rows, cols, y, x int) error {
	if y < op.by || y >= rows-op.by {
		return fmt.Errorf("Code: y=%d not in [%d,%d): %w", y, op.by, rows-op.by, ErrOutOfBounds)
	}
	if x < op.bx || x >= cols-op.bx {
		return fmt.Errorf("Code: x=%d not in [%d,%d): %w", x, op.bx, cols-op.bx, ErrOutOfBounds)
	}

	return nil
}

// evaluator computes raw codes over one image. It owns a scratch buffer for
// the P samples, so each goroutine needs its own evaluator; the Operator and
// image are only read.
type evaluator[T grid.Numeric] struct {
	op      *Operator
	data    []T
	cols    int
	samples []float64
}

func newEvaluator[T grid.Numeric](op *Operator, src *grid.Dense[T]) *evaluator[T] {
	return &evaluator[T]{
		op:      op,
		data:    src.Data(),
		cols:    src.Cols(),
		samples: make([]float64, op.cfg.Neighbors),
	}
}

// sample fills e.samples for the center (y, x) and returns the center value.
// The caller guarantees (y, x) is interior.
func (e *evaluator[T]) sample(y, x int) float64 {
	base := y*e.cols + x
	var v float64
	for p, s := range e.op.samplers {
		v = 0
		for _, t := range s.taps {
			v += t.w * float64(e.data[base+t.dy*e.cols+t.dx])
		}
		e.samples[p] = v
	}

	return float64(e.data[base])
}

// raw assembles the pre-reduction code at the interior pixel (y, x).
func (e *evaluator[T]) raw(y, x int) uint16 {
	center := e.sample(y, x)
	n := e.samples
	p := len(n)

	threshold := center
	if e.op.cfg.ToAverage {
		sum := center
		for _, v := range n {
			sum += v
		}
		threshold = sum / float64(p+1)
	}

	var code uint32
	switch e.op.cfg.Variant {
	case Regular:
		for i := 0; i < p; i++ {
			code <<= 1
			if n[i] >= threshold {
				code++
			}
		}
		if e.op.avgBit {
			code <<= 1
			if center >= threshold {
				code++
			}
		}

	case Transitional:
		for i := 0; i < p; i++ {
			code <<= 1
			if n[i] >= n[(i+1)%p] {
				code++
			}
		}

	case DirectionCoded:
		half := p / 2
		var a, b float64
		for i := 0; i < half; i++ {
			code <<= 2
			a, b = n[i]-threshold, n[i+half]-threshold
			if a*b >= 0 {
				code++
			}
			if math.Abs(a) >= math.Abs(b) {
				code += 2
			}
		}
	}

	return uint16(code)
}

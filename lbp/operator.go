package lbp

import (
	"fmt"
	"math"
)

// tap is one weighted pixel read, relative to the center, contributing to a
// neighbor sample.
type tap struct {
	dy, dx int
	w      float64
}

// sampler holds the taps of one neighbor sample. Rectangular samples and
// circular samples that land on a pixel centre have a single tap of weight 1.
type sampler struct {
	taps []tap
}

// Operator is an immutable snapshot of a validated configuration together with
// its derived state: relative positions, sampling taps and the reduction table.
//
// An Operator is never mutated after construction; With and WithLookupTable
// return new snapshots. It is therefore safe to share one Operator between
// goroutines evaluating different images.
type Operator struct {
	cfg       Config
	positions []Point
	samplers  []sampler
	table     []uint16
	nLabels   int
	by, bx    int
	avgBit    bool
}

// New builds an Operator from DefaultConfig with opts applied on top.
//
// Example:
//
//	op, err := lbp.New(lbp.WithNeighbors(8), lbp.WithRadius(1), lbp.WithUniform(true))
//
// Errors: ErrConfig family.
// Complexity: O(P + 2^k) (O(k·2^k) with rotation invariance).
func New(opts ...Option) (*Operator, error) {
	return NewFromConfig(gatherConfig(DefaultConfig(), opts))
}

// NewFromConfig validates cfg and builds its derived state.
// Errors: ErrConfig family.
func NewFromConfig(cfg Config) (*Operator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewFromConfig: %w", err)
	}
	pts := positions(cfg)
	by, bx := cfg.Border()
	lut := buildTable(cfg)

	return &Operator{
		cfg:       cfg,
		positions: pts,
		samplers:  buildSamplers(pts, cfg.Circular),
		table:     lut,
		nLabels:   labelCount(lut),
		by:        by,
		bx:        bx,
		avgBit:    cfg.averageBit(),
	}, nil
}

// With returns a new Operator whose configuration is op's with opts applied.
// Any custom lookup table installed on op is discarded, since it no longer
// matches the rebuilt configuration. op itself is left untouched.
// Errors: ErrNilOperator, ErrConfig family.
func (op *Operator) With(opts ...Option) (*Operator, error) {
	if err := validateOperator(op); err != nil {
		return nil, err
	}

	return NewFromConfig(gatherConfig(op.cfg, opts))
}

// WithLookupTable returns a copy of op that reduces raw codes through lut
// instead of the table derived from the configuration, e.g. for a custom
// grouping of patterns. lut must have exactly 2^CodeBits entries; it is
// copied. MaxLabel of the result is max(lut)+1.
// Errors: ErrNilOperator, ErrTableSize.
func (op *Operator) WithLookupTable(lut []uint16) (*Operator, error) {
	if err := validateOperator(op); err != nil {
		return nil, err
	}
	if want := 1 << op.CodeBits(); len(lut) != want {
		return nil, fmt.Errorf("WithLookupTable: len=%d, want %d: %w", len(lut), want, ErrTableSize)
	}
	cp := *op
	cp.table = append([]uint16(nil), lut...)
	cp.nLabels = labelCount(cp.table)

	return &cp, nil
}

// buildSamplers resolves every position into pixel taps. Rectangular
// positions are read at their truncated integer offset; circular positions
// use bilinear weights, dropping zero-weight taps so no read ever leaves the
// ⌈R⌉ border.
func buildSamplers(pts []Point, circular bool) []sampler {
	out := make([]sampler, len(pts))
	for i, pt := range pts {
		if !circular {
			out[i] = sampler{taps: []tap{{dy: int(pt.Row), dx: int(pt.Col), w: 1}}}
			continue
		}
		y0, x0 := math.Floor(pt.Row), math.Floor(pt.Col)
		fy, fx := pt.Row-y0, pt.Col-x0
		iy, ix := int(y0), int(x0)
		cand := [4]tap{
			{dy: iy, dx: ix, w: (1 - fy) * (1 - fx)},
			{dy: iy, dx: ix + 1, w: (1 - fy) * fx},
			{dy: iy + 1, dx: ix, w: fy * (1 - fx)},
			{dy: iy + 1, dx: ix + 1, w: fy * fx},
		}
		taps := make([]tap, 0, 4)
		for _, t := range cand {
			if t.w != 0 {
				taps = append(taps, t)
			}
		}
		out[i] = sampler{taps: taps}
	}

	return out
}

//-----------------------------------------------------------------------------
// Accessors
//-----------------------------------------------------------------------------

// Config returns a copy of the configuration.
func (op *Operator) Config() Config { return op.cfg }

// Neighbors returns P.
func (op *Operator) Neighbors() int { return op.cfg.Neighbors }

// Radius returns the common radius, or ErrRadiiMismatch when R_y != R_x.
func (op *Operator) Radius() (float64, error) {
	if op.cfg.RadiusY != op.cfg.RadiusX {
		return 0, fmt.Errorf("Radius: R_y=%g R_x=%g: %w", op.cfg.RadiusY, op.cfg.RadiusX, ErrRadiiMismatch)
	}

	return op.cfg.RadiusY, nil
}

// Radii returns (R_y, R_x).
func (op *Operator) Radii() (ry, rx float64) { return op.cfg.RadiusY, op.cfg.RadiusX }

// Circular reports whether samples are taken on an ellipse.
func (op *Operator) Circular() bool { return op.cfg.Circular }

// ToAverage reports whether the threshold is the neighborhood mean.
func (op *Operator) ToAverage() bool { return op.cfg.ToAverage }

// AddAverageBit reports the configured flag. Whether the bit is actually
// emitted also depends on the variant and reductions, see CodeBits.
func (op *Operator) AddAverageBit() bool { return op.cfg.AddAverageBit }

// Uniform reports whether uniform reduction is active.
func (op *Operator) Uniform() bool { return op.cfg.Uniform }

// RotationInvariant reports whether rotation-invariant reduction is active.
func (op *Operator) RotationInvariant() bool { return op.cfg.RotationInvariant }

// Variant returns the encoding variant.
func (op *Operator) Variant() Variant { return op.cfg.Variant }

// CodeBits returns the raw code width k.
func (op *Operator) CodeBits() int { return op.cfg.CodeBits() }

// MaxLabel returns the number of distinct labels the operator can emit:
// one plus the largest value in the lookup table. Histograms over the output
// need exactly this many bins.
func (op *Operator) MaxLabel() int { return op.nLabels }

// RelativePositions returns a copy of the P sample offsets in sampling order.
func (op *Operator) RelativePositions() []Point {
	return append([]Point(nil), op.positions...)
}

// LookupTable returns a copy of the reduction table (2^CodeBits entries).
func (op *Operator) LookupTable() []uint16 {
	return append([]uint16(nil), op.table...)
}

// Shape returns the label-map extents for an image of rows×cols:
// (max(0, rows−2⌈R_y⌉), max(0, cols−2⌈R_x⌉)).
// Complexity: O(1).
func (op *Operator) Shape(rows, cols int) (int, int) {
	return max(0, rows-2*op.by), max(0, cols-2*op.bx)
}

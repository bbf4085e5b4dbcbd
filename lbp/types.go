// Descriptor configuration, encoding variants and design constants shared by
// the geometry, table and evaluation code.

package lbp

import (
	"math"
	"strconv"
)

//-----------------------------------------------------------------------------
// Design constants
//-----------------------------------------------------------------------------

// MaxCodeBits bounds the raw code width. The lookup table is a dense slice
// keyed by raw code, so its size is 2^MaxCodeBits = 65536 entries at most,
// and every label fits in a uint16.
const MaxCodeBits = 16

// MinNeighbors is the smallest supported neighbor count P.
const MinNeighbors = 2

// MaxNeighbors is the largest supported neighbor count P.
const MaxNeighbors = MaxCodeBits

// MaxRadius bounds each radius so that ⌈R⌉ always fits an int comfortably.
const MaxRadius = 1 << 16

// DefaultNeighbors and DefaultRadius describe the classical 3×3 LBP(8,1).
const (
	DefaultNeighbors = 8
	DefaultRadius    = 1.0
)

// snapTol: circular offsets this close to an integer are snapped onto it.
const snapTol = 1e-12

// startAngle places the first sample at the top-left direction; samples then
// advance clockwise on screen (rows grow downward).
const startAngle = -3 * math.Pi / 4

//-----------------------------------------------------------------------------
// Variant
//-----------------------------------------------------------------------------

// Variant selects how sampled neighbors are assembled into a raw code.
//
//   - Regular        — one bit per neighbor: n_p ≥ threshold (MSB first).
//   - Transitional   — one bit per neighbor: n_p ≥ n_{(p+1) mod P}.
//   - DirectionCoded — two bits per opposite pair (p, p+P/2): same side of the
//     threshold, and |n_p−t| ≥ |n_{p+P/2}−t|. Requires an even P.
type Variant int

const (
	// Regular compares every neighbor to the threshold.
	Regular Variant = iota
	// Transitional compares every neighbor to its clockwise successor.
	Transitional
	// DirectionCoded encodes opposite neighbor pairs with two bits each.
	DirectionCoded
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Regular:
		return "Regular"
	case Transitional:
		return "Transitional"
	case DirectionCoded:
		return "DirectionCoded"
	default:
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
}

// valid reports whether v is a known variant.
func (v Variant) valid() bool {
	return v >= Regular && v <= DirectionCoded
}

//-----------------------------------------------------------------------------
// Point
//-----------------------------------------------------------------------------

// Point is a sample offset relative to the center pixel.
// Row grows downward, Col grows to the right.
type Point struct {
	Row, Col float64
}

//-----------------------------------------------------------------------------
// Config
//-----------------------------------------------------------------------------

// Config is the descriptor configuration. It is a plain value: copying it and
// editing the copy never affects an Operator already built from it.
//
// Fields:
//   - Neighbors          — number of samples P.
//   - RadiusY, RadiusX   — sampling radii; equal values give circular/square
//     navigation, different values elliptical/rectangular.
//   - Circular           — bilinear sampling on an ellipse when true,
//     integer offsets on a rectangle perimeter otherwise.
//   - ToAverage          — threshold is the mean of the P samples and the
//     center instead of the center alone.
//   - AddAverageBit      — Regular only: append center ≥ threshold as an
//     extra LSB; ignored once Uniform or RotationInvariant is set.
//   - Uniform            — collapse codes with more than two circular
//     transitions into one label.
//   - RotationInvariant  — map every code to its rotation class.
//   - Variant            — Regular, Transitional or DirectionCoded.
//
// Example:
//
//	cfg := lbp.DefaultConfig()
//	cfg.Neighbors = 16
//	cfg.RadiusY, cfg.RadiusX = 2, 2
//	cfg.Circular = true
//	cfg.Uniform = true
//	op, err := lbp.NewFromConfig(cfg)
type Config struct {
	Neighbors         int
	RadiusY           float64
	RadiusX           float64
	Circular          bool
	ToAverage         bool
	AddAverageBit     bool
	Uniform           bool
	RotationInvariant bool
	Variant           Variant
}

// DefaultConfig returns the classical LBP(8,1): rectangular 3×3 ring,
// Regular variant, no reduction.
func DefaultConfig() Config {
	return Config{
		Neighbors: DefaultNeighbors,
		RadiusY:   DefaultRadius,
		RadiusX:   DefaultRadius,
		Variant:   Regular,
	}
}

// averageBit reports whether the Regular code carries the trailing average bit.
// The bit is suppressed once a reduction is active, because uniform and
// rotation-invariant reductions assume exactly P meaningful bits.
func (c Config) averageBit() bool {
	return c.Variant == Regular && c.AddAverageBit && !c.Uniform && !c.RotationInvariant
}

// CodeBits returns k, the width of the raw code for this configuration.
// The lookup table has 2^k entries.
func (c Config) CodeBits() int {
	if c.averageBit() {
		return c.Neighbors + 1
	}

	return c.Neighbors
}

// Border returns ⌈R_y⌉ and ⌈R_x⌉: the number of rows/columns on each side of
// the image that cannot host a center pixel.
func (c Config) Border() (by, bx int) {
	return int(math.Ceil(c.RadiusY)), int(math.Ceil(c.RadiusX))
}

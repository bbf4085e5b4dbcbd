// Package lbp computes Local Binary Pattern (LBP) texture codes over
// single-channel numeric images.
//
// What is LBP?
//
//	Every pixel is described by comparing P samples taken around it against
//	a threshold (the pixel itself, or the neighborhood mean). The comparison
//	bits form an integer code that summarizes local texture; a histogram of
//	codes over a region is a compact, illumination-robust texture feature.
//
// Key features:
//   - circular (bilinear, elliptical radii) or rectangular (integer ring)
//     navigation with 2..16 samples;
//   - Regular, Transitional and DirectionCoded encodings;
//   - center-or-mean threshold and an optional trailing average bit;
//   - uniform, rotation-invariant and combined label reductions through a
//     dense lookup table, or a caller-supplied table;
//   - any grid.Numeric pixel type: uint8, uint16, int32, float64, ...;
//   - sequential and band-parallel extraction, block histograms as a
//     gonum feature matrix.
//
// Conventions:
//   - Sample 0 lies in the top-left direction; samples advance clockwise.
//   - Raw codes are assembled MSB first: sample 0 ends up in the highest bit.
//   - Only interior pixels are labeled: a rows×cols image yields a
//     (rows−2⌈R_y⌉)×(cols−2⌈R_x⌉) label map (clamped at zero).
//   - Comparisons use ≥ on float64 values; comparisons against NaN are false.
//
// Usage:
//
//	import "github.com/katalvlaran/lvlbp/lbp"
//
//	op, err := lbp.New(
//	  lbp.WithNeighbors(8),
//	  lbp.WithRadius(1),
//	  lbp.WithCircular(true),
//	  lbp.WithUniform(true),
//	)
//	labels, err := lbp.ExtractNew(op, img)            // img *grid.Dense[uint8]
//	feats, err := lbp.BlockHistograms(labels, op.MaxLabel(),
//	  lbp.Blocks{Height: 16, Width: 16, Normalize: true})
//
// Concurrency:
//
//	An Operator is immutable once built; share it freely. Extract keeps its
//	scratch space per call, ExtractParallel per band.
//
// Performance:
//
//   - Construction: O(P + 2^k), O(k·2^k) with rotation invariance (k ≤ 16).
//   - Extraction:   O(rows·cols·P) time, O(P) extra memory per worker.
//
// Errors are sentinel values matchable with errors.Is; every configuration
// error also matches ErrConfig.
package lbp

package lbp

import (
	"fmt"
	"math"
)

// Positions computes the P relative sample offsets for cfg.
//
// Convention (shared by the evaluator and the rotation-invariant table):
// sample 0 lies in the top-left direction and samples advance clockwise on
// screen, so rotating the image by one sampling step rotates the raw code by
// one bit.
//
// Circular navigation:
//
//	θ_p   = −3π/4 + 2π·p/P
//	(r,c) = (R_y·sin θ_p, R_x·cos θ_p)
//
// Offsets within 1e-12 of an integer are snapped onto it, so axis-aligned
// samples hit pixel centres exactly and need no interpolation.
//
// Rectangular navigation (P multiple of 4, n = P/4 samples per side): the unit
// square perimeter is walked clockwise from the top-left corner, each side in
// n equal steps, then scaled by ⌈R_y⌉, ⌈R_x⌉ and truncated toward zero:
//
//	top    (−1, s)   right (s, 1)   bottom (1, −s)   left (−s, −1)
//	with s = −1 + 2j/n, j = 0..n−1
//
// P=8, R=1 gives TL, T, TR, R, BR, B, BL, L (the 3×3 ring); P=16, R=2 gives
// the 5×5 ring. P=4 gives the four diagonal corners TL, TR, BR, BL, not the
// N/E/S/W cross of the classical LBP4: every layout starts at the top-left
// direction, circular P=4 included. Small radii with many samples may yield
// repeated offsets.
//
// Offsets never carry a negative zero.
//
// Errors: any ErrConfig sentinel from cfg.Validate.
// Complexity: O(P).
func Positions(cfg Config) ([]Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Positions: %w", err)
	}

	return positions(cfg), nil
}

// positions dispatches on the navigation mode; cfg must be valid.
func positions(cfg Config) []Point {
	if cfg.Circular {
		return circularPositions(cfg.Neighbors, cfg.RadiusY, cfg.RadiusX)
	}
	by, bx := cfg.Border()

	return rectangularPositions(cfg.Neighbors, by, bx)
}

// circularPositions places p samples on the ellipse with radii ry, rx.
func circularPositions(p int, ry, rx float64) []Point {
	pts := make([]Point, p)
	step := 2 * math.Pi / float64(p)
	var theta float64
	for i := 0; i < p; i++ {
		theta = startAngle + step*float64(i)
		pts[i] = Point{
			Row: snap(ry * math.Sin(theta)),
			Col: snap(rx * math.Cos(theta)),
		}
	}

	return pts
}

// rectangularPositions walks the perimeter of the (2·by+1)×(2·bx+1) box.
func rectangularPositions(p, by, bx int) []Point {
	n := p / 4
	fy, fx := float64(by), float64(bx)
	pts := make([]Point, 0, p)
	unit := func(r, c float64) Point {
		return Point{Row: unsigned(math.Trunc(r * fy)), Col: unsigned(math.Trunc(c * fx))}
	}
	side := func(j int) float64 { return -1 + 2*float64(j)/float64(n) }

	for j := 0; j < n; j++ { // top: left → right
		pts = append(pts, unit(-1, side(j)))
	}
	for j := 0; j < n; j++ { // right: top → bottom
		pts = append(pts, unit(side(j), 1))
	}
	for j := 0; j < n; j++ { // bottom: right → left
		pts = append(pts, unit(1, -side(j)))
	}
	for j := 0; j < n; j++ { // left: bottom → top
		pts = append(pts, unit(-side(j), -1))
	}

	return pts
}

// snap rounds v onto the nearest integer when it lies within snapTol of it.
func snap(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < snapTol {
		return unsigned(r)
	}

	return v
}

// unsigned maps −0 onto +0 and leaves every other value alone.
func unsigned(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}

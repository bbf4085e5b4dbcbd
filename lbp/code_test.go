package lbp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbp/grid"
	"github.com/katalvlaran/lvlbp/lbp"
)

// ringImage is the 3×3 patch with center 5 and neighbors 6,7,8,9,4,3,2,1 read
// clockwise from the top-left corner.
func ringImage(t *testing.T) *grid.Dense[uint8] {
	t.Helper()
	img, err := grid.FromRows([][]uint8{
		{6, 7, 8},
		{1, 5, 9},
		{2, 3, 4},
	})
	require.NoError(t, err)

	return img
}

// rotate90 rotates a square image clockwise by 90°.
func rotate90[T grid.Numeric](t *testing.T, src *grid.Dense[T]) *grid.Dense[T] {
	t.Helper()
	n := src.Rows()
	out, err := grid.New[T](n, n)
	require.NoError(t, err)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v, err := src.At(r, c)
			require.NoError(t, err)
			require.NoError(t, out.Set(c, n-1-r, v))
		}
	}

	return out
}

// TestCode_RegularRing checks the classical LBP(8,1) bit order.
func TestCode_RegularRing(t *testing.T) {
	op, err := lbp.New()
	require.NoError(t, err)

	raw, err := lbp.RawCode(op, ringImage(t), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0b11110000), raw)

	label, err := lbp.Code(op, ringImage(t), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(240), label, "identity table keeps the raw code")
}

// TestCode_ElementTypes evaluates the same patch stored as several numeric types.
func TestCode_ElementTypes(t *testing.T) {
	op, err := lbp.New()
	require.NoError(t, err)

	f, err := grid.FromRows([][]float64{{6, 7, 8}, {1, 5, 9}, {2, 3, 4}})
	require.NoError(t, err)
	code, err := lbp.Code(op, f, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(240), code)

	i, err := grid.FromRows([][]int32{{-6, -7, -8}, {-1, -5, -9}, {-2, -3, -4}})
	require.NoError(t, err)
	code, err = lbp.Code(op, i, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0b00001111), code, "negation flips every strict comparison")
}

// TestCode_Uniform maps the ring pattern (4 ones, 2 transitions) to label 4.
func TestCode_Uniform(t *testing.T) {
	op, err := lbp.New(lbp.WithUniform(true))
	require.NoError(t, err)

	code, err := lbp.Code(op, ringImage(t), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(4), code)
	assert.Equal(t, 10, op.MaxLabel())
}

// TestCode_RotationInvariant: a 90° turn rotates the code by two samples only.
func TestCode_RotationInvariant(t *testing.T) {
	plain, err := lbp.New()
	require.NoError(t, err)
	ri, err := plain.With(lbp.WithRotationInvariant(true))
	require.NoError(t, err)

	img := ringImage(t)
	turned := rotate90(t, img)

	rawA, err := lbp.RawCode(plain, img, 1, 1)
	require.NoError(t, err)
	rawB, err := lbp.RawCode(plain, turned, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, lbp.RotateRight(uint32(rawA), 2, 8), uint32(rawB))

	a, err := lbp.Code(ri, img, 1, 1)
	require.NoError(t, err)
	b, err := lbp.Code(ri, turned, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestCode_ToAverageAndAverageBit covers both thresholds with the trailing bit.
func TestCode_ToAverageAndAverageBit(t *testing.T) {
	img, err := grid.FromRows([][]uint8{
		{9, 9, 9},
		{9, 0, 9},
		{9, 9, 9},
	})
	require.NoError(t, err)

	op, err := lbp.New(lbp.WithAddAverageBit(true))
	require.NoError(t, err)
	require.Equal(t, 9, op.CodeBits())
	code, err := lbp.Code(op, img, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0b111111111), code, "center threshold: center ≥ center")

	op, err = op.With(lbp.WithToAverage(true))
	require.NoError(t, err)
	code, err = lbp.Code(op, img, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0b111111110), code, "mean 8: neighbors pass, center fails")

	op, err = op.With(lbp.WithAddAverageBit(false))
	require.NoError(t, err)
	code, err = lbp.Code(op, img, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xFF), code)
}

// TestCode_Transitional compares each neighbor with its clockwise successor.
func TestCode_Transitional(t *testing.T) {
	op, err := lbp.New(lbp.WithVariant(lbp.Transitional), lbp.WithAddAverageBit(true))
	require.NoError(t, err)
	assert.Equal(t, 8, op.CodeBits(), "average bit is Regular-only")

	// 6≥7 7≥8 8≥9 9≥4 4≥3 3≥2 2≥1 1≥6
	code, err := lbp.Code(op, ringImage(t), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0b00011110), code)
}

// TestCode_DirectionCoded encodes opposite pairs with two bits each.
func TestCode_DirectionCoded(t *testing.T) {
	op, err := lbp.New(lbp.WithVariant(lbp.DirectionCoded))
	require.NoError(t, err)

	// Pairs (6,4) (7,3) (8,2) (9,1) around 5: opposite sides, equal magnitude.
	code, err := lbp.Code(op, ringImage(t), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0b10101010), code)

	img, err := grid.FromRows([][]uint8{
		{9, 5, 1},
		{5, 5, 6},
		{7, 8, 5},
	})
	require.NoError(t, err)
	// (9,5): prod 0 → +1, 4≥0 → +2 = 3
	// (5,8): prod 0 → +1, 0≥3 no   = 1
	// (1,7): prod <0,     4≥2 → +2 = 2
	// (6,5): prod 0 → +1, 1≥0 → +2 = 3
	code, err = lbp.Code(op, img, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0b11011011), code)
}

// TestCode_Circular uses contrasts large enough to dominate interpolation.
func TestCode_Circular(t *testing.T) {
	op, err := lbp.New(lbp.WithCircular(true))
	require.NoError(t, err)

	dark, err := grid.FromRows([][]float64{
		{100, 100, 100},
		{100, 0, 100},
		{100, 100, 100},
	})
	require.NoError(t, err)
	code, err := lbp.Code(op, dark, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xFF), code)

	bright, err := grid.FromRows([][]float64{
		{0, 0, 0},
		{0, 200, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	code, err = lbp.Code(op, bright, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), code)

	// Axis-aligned samples read exact pixels: only the top neighbor is bright.
	top, err := grid.FromRows([][]float64{
		{0, 50, 0},
		{0, 10, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	code, err = lbp.Code(op, top, 1, 1)
	require.NoError(t, err)
	// TL and TR interpolate 50·0.2071 + 10·0.0858 ≈ 11.2 ≥ 10.
	assert.Equal(t, uint16(0b11100000), code)
}

// TestCode_NaN: comparisons involving NaN yield 0 bits.
func TestCode_NaN(t *testing.T) {
	op, err := lbp.New()
	require.NoError(t, err)

	img, err := grid.FromRows([][]float64{
		{math.NaN(), 7, 8},
		{1, 5, 9},
		{2, 3, 4},
	})
	require.NoError(t, err)
	code, err := lbp.Code(op, img, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0b01110000), code)

	require.NoError(t, img.Set(1, 1, math.NaN()))
	code, err = lbp.Code(op, img, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), code)
}

// TestCode_Errors covers bounds and argument validation.
func TestCode_Errors(t *testing.T) {
	op, err := lbp.New()
	require.NoError(t, err)
	img := ringImage(t)

	for _, yx := range [][2]int{{0, 1}, {1, 0}, {2, 1}, {1, 2}, {-1, 1}} {
		_, err = lbp.Code(op, img, yx[0], yx[1])
		assert.ErrorIs(t, err, lbp.ErrOutOfBounds, "y=%d x=%d", yx[0], yx[1])
	}

	_, err = lbp.Code[uint8](nil, img, 1, 1)
	assert.ErrorIs(t, err, lbp.ErrNilOperator)

	_, err = lbp.Code[uint8](op, nil, 1, 1)
	assert.ErrorIs(t, err, lbp.ErrNilImage)

	// A zero-value Operator has no table or taps and must not be evaluated.
	var unbuilt lbp.Operator
	assert.NotPanics(t, func() {
		_, err = lbp.Code(&unbuilt, img, 1, 1)
	})
	assert.ErrorIs(t, err, lbp.ErrNilOperator)
	_, err = lbp.ExtractNew(&unbuilt, img)
	assert.ErrorIs(t, err, lbp.ErrNilOperator)
	_, err = unbuilt.WithLookupTable(make([]uint16, 256))
	assert.ErrorIs(t, err, lbp.ErrNilOperator)

	wide, err := lbp.New(lbp.WithRadii(1, 2))
	require.NoError(t, err)
	_, err = lbp.RawCode(wide, img, 1, 1)
	assert.ErrorIs(t, err, lbp.ErrOutOfBounds, "3 columns cannot host a 5-wide window")
}

// TestCode_CircularReadsStayInBorder evaluates the only interior pixel of a
// (2⌈Ry⌉+1)×(2⌈Rx⌉+1) image, then the same patch surrounded by NaN: no
// bilinear read may leave the ⌈R⌉ box, so both codes agree.
func TestCode_CircularReadsStayInBorder(t *testing.T) {
	radii := [][2]float64{{1, 1}, {1.5, 1.5}, {2, 0.7}, {0.6, 2.5}, {3, 3}}
	for _, p := range []int{4, 8, 12, 16} {
		for _, r := range radii {
			op, err := lbp.New(lbp.WithCircular(true), lbp.WithNeighbors(p), lbp.WithRadii(r[0], r[1]))
			require.NoError(t, err)
			by, bx := op.Config().Border()
			h, w := 2*by+1, 2*bx+1

			tight, err := grid.New[float64](h, w)
			require.NoError(t, err)
			padded, err := grid.New[float64](h+2, w+2)
			require.NoError(t, err)
			padded.Fill(math.NaN())
			for i := 0; i < h; i++ {
				for j := 0; j < w; j++ {
					v := float64((i*7+j*13)%11) + 0.5
					require.NoError(t, tight.Set(i, j, v))
					require.NoError(t, padded.Set(i+1, j+1, v))
				}
			}

			var want, got uint16
			require.NotPanics(t, func() {
				want, err = lbp.Code(op, tight, by, bx)
			})
			require.NoError(t, err, "P=%d R=%v", p, r)
			got, err = lbp.Code(op, padded, by+1, bx+1)
			require.NoError(t, err)
			assert.Equal(t, want, got, "P=%d R=%v", p, r)
		}
	}
}

package grid

import (
	"fmt"
	"image"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromGray copies an *image.Gray into a Dense[uint8] with the same extents.
// Row 0 / column 0 correspond to img.Bounds().Min, so images with a non-zero
// origin (sub-images) are re-based to zero.
// Returns ErrNilGrid on a nil image.
// Complexity: O(W×H).
func FromGray(img *image.Gray) (*Dense[uint8], error) {
	if img == nil {
		return nil, fmt.Errorf("FromGray: %w", ErrNilGrid)
	}
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()
	out := &Dense[uint8]{r: h, c: w, data: make([]uint8, h*w)}
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w]
		copy(out.data[y*w:(y+1)*w], src)
	}

	return out, nil
}

// FromGray16 copies an *image.Gray16 into a Dense[uint16], decoding the
// big-endian pixel layout of the standard library.
// Returns ErrNilGrid on a nil image.
// Complexity: O(W×H).
func FromGray16(img *image.Gray16) (*Dense[uint16], error) {
	if img == nil {
		return nil, fmt.Errorf("FromGray16: %w", ErrNilGrid)
	}
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()
	out := &Dense[uint16]{r: h, c: w, data: make([]uint16, h*w)}
	var x, y, off int
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			off = y*img.Stride + 2*x
			out.data[y*w+x] = uint16(img.Pix[off])<<8 | uint16(img.Pix[off+1])
		}
	}

	return out, nil
}

// ToGray renders a label map as an 8-bit image for visual inspection,
// stretching labels [0, nLabels-1] linearly onto [0, 255]. Labels at or above
// nLabels-1 saturate to white; nLabels <= 1 yields a black image.
// Errors: ErrNilGrid, ErrMalformed.
// Complexity: O(W×H).
func ToGray(labels *Dense[uint16], nLabels int) (*image.Gray, error) {
	if err := ValidateWellFormed(labels); err != nil {
		return nil, fmt.Errorf("ToGray: %w", err)
	}
	img := image.NewGray(image.Rect(0, 0, labels.c, labels.r))
	if nLabels <= 1 {
		return img, nil
	}
	scale := float64(math.MaxUint8) / float64(nLabels-1)
	var x, y int
	var v float64
	for y = 0; y < labels.r; y++ {
		for x = 0; x < labels.c; x++ {
			v = math.Round(float64(labels.data[y*labels.c+x]) * scale)
			if v > math.MaxUint8 {
				v = math.MaxUint8
			}
			img.Pix[y*img.Stride+x] = uint8(v)
		}
	}

	return img, nil
}

// FromMatrix copies any gonum mat.Matrix into a Dense[float64].
// An empty gonum matrix (0×0) yields an empty Dense.
// Returns ErrNilGrid when m is nil.
// Complexity: O(r*c).
func FromMatrix(m mat.Matrix) (*Dense[float64], error) {
	if m == nil {
		return nil, fmt.Errorf("FromMatrix: %w", ErrNilGrid)
	}
	if e, ok := m.(interface{ IsEmpty() bool }); ok && e.IsEmpty() {
		return &Dense[float64]{}, nil
	}
	r, c := m.Dims()
	out := &Dense[float64]{r: r, c: c, data: make([]float64, r*c)}
	// Fast path: a row-major gonum Dense can be copied row by row.
	if d, ok := m.(mat.RawMatrixer); ok {
		raw := d.RawMatrix()
		for i := 0; i < r; i++ {
			copy(out.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}

		return out, nil
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = m.At(i, j)
		}
	}

	return out, nil
}

// ToMatrix converts the array into a new gonum *mat.Dense (float64 copy).
// gonum cannot represent zero-area matrices, so an empty array yields
// ErrBadShape.
// Complexity: O(r*c).
func (m *Dense[T]) ToMatrix() (*mat.Dense, error) {
	if err := ValidateWellFormed(m); err != nil {
		return nil, fmt.Errorf("ToMatrix: %w", err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("ToMatrix: %dx%d: %w", m.r, m.c, ErrBadShape)
	}
	buf := make([]float64, len(m.data))
	for i, v := range m.data {
		buf[i] = float64(v)
	}

	return mat.NewDense(m.r, m.c, buf), nil
}

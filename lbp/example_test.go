package lbp_test

import (
	"fmt"

	"github.com/katalvlaran/lvlbp/grid"
	"github.com/katalvlaran/lvlbp/lbp"
)

// ExampleCode labels the center of the classical 3×3 patch.
func ExampleCode() {
	img, _ := grid.FromRows([][]uint8{
		{6, 7, 8},
		{1, 5, 9},
		{2, 3, 4},
	})

	op, _ := lbp.New() // LBP(8,1), rectangular, no reduction
	code, _ := lbp.Code(op, img, 1, 1)
	fmt.Printf("%08b\n", code)

	uni, _ := op.With(lbp.WithUniform(true))
	label, _ := lbp.Code(uni, img, 1, 1)
	fmt.Println("uniform label:", label, "of", uni.MaxLabel())
	// Output:
	// 11110000
	// uniform label: 4 of 10
}

// ExamplePositions prints the sampling order of LBP(8,1).
func ExamplePositions() {
	pts, _ := lbp.Positions(lbp.DefaultConfig())
	for _, p := range pts {
		fmt.Printf("(%g,%g) ", p.Row, p.Col)
	}
	fmt.Println()
	// Output:
	// (-1,-1) (-1,0) (-1,1) (0,1) (1,1) (1,0) (1,-1) (0,-1)
}

// ExampleExtractNew labels a vertical edge and counts the labels per block.
func ExampleExtractNew() {
	img, _ := grid.New[uint8](6, 6)
	for r := 0; r < 6; r++ {
		for c := 3; c < 6; c++ {
			_ = img.Set(r, c, 200)
		}
	}

	op, _ := lbp.New(lbp.WithUniform(true), lbp.WithRotationInvariant(true))
	labels, _ := lbp.ExtractNew(op, img)
	fmt.Print(labels)

	feats, _ := lbp.BlockHistograms(labels, op.MaxLabel(), lbp.Blocks{Height: 4, Width: 2})
	fmt.Println(feats.RawRowView(0))
	fmt.Println(feats.RawRowView(1))
	// Output:
	// [8, 8, 5, 8]
	// [8, 8, 5, 8]
	// [8, 8, 5, 8]
	// [8, 8, 5, 8]
	// [0 0 0 0 0 0 0 0 8 0]
	// [0 0 0 0 0 4 0 0 4 0]
}

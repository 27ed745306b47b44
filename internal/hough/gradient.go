package hough

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// GradientField holds the horizontal and vertical Sobel responses of a
// grayscale plane together with the per-pixel gradient magnitude.
//
// Sign convention: positive components point from brighter toward darker
// pixels. For a bright object on a dark background the boundary gradient
// therefore points away from the interior, and the center of a circle of
// radius r lies at p - r*ĝ from a boundary pixel p.
type GradientField struct {
	// X and Y are the Sobel responses along each axis.
	X, Y *mat.Dense

	// Magnitude is sqrt(X² + Y²) elementwise, always non-negative.
	Magnitude *mat.Dense
}

// Sobel kernels, oriented so responses point bright-to-dark (see
// GradientField). Applied as correlation with replicated borders.
var (
	sobelX = [3][3]float64{
		{1, 0, -1},
		{2, 0, -2},
		{1, 0, -1},
	}
	sobelY = [3][3]float64{
		{1, 2, 1},
		{0, 0, 0},
		{-1, -2, -1},
	}
)

// NewGradientField computes the Sobel gradient of a grayscale plane.
// Border pixels use replicated edge values, so the output planes have the
// same dimensions as the input.
func NewGradientField(plane *mat.Dense) *GradientField {
	rows, cols := plane.Dims()
	gx := mat.NewDense(rows, cols, nil)
	gy := mat.NewDense(rows, cols, nil)
	magn := mat.NewDense(rows, cols, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var sx, sy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := plane.At(clamp(y+ky, 0, rows-1), clamp(x+kx, 0, cols-1))
					sx += v * sobelX[ky+1][kx+1]
					sy += v * sobelY[ky+1][kx+1]
				}
			}
			gx.Set(y, x, sx)
			gy.Set(y, x, sy)
			magn.Set(y, x, math.Hypot(sx, sy))
		}
	}

	return &GradientField{X: gx, Y: gy, Magnitude: magn}
}

// clamp constrains an integer value to the range [min, max].
// Used for replicate boundary handling in convolution.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

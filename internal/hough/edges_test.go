package hough

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestOtsuFraction_Bimodal(t *testing.T) {
	// Mostly-weak magnitudes with a strong minority: the threshold must land
	// strictly between the two modes.
	magn := mat.NewDense(10, 10, nil)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			magn.Set(y, x, 0.1)
		}
	}
	for x := 0; x < 10; x++ {
		magn.Set(5, x, 0.9)
	}

	fraction := OtsuFraction(magn)
	// Modes sit at fractions 1/9 and 1.0 of the maximum.
	if fraction <= 0.1/0.9 || fraction >= 1.0 {
		t.Errorf("fraction: got %g, want strictly between the modes", fraction)
	}

	// The cut must fall strictly between the mode values, so the strict
	// comparison in ExtractEdges keeps exactly the strong minority.
	cut := fraction * mat.Max(magn)
	if cut <= 0.1 || cut >= 0.9 {
		t.Errorf("cut %g does not separate the modes 0.1 and 0.9", cut)
	}
	edges := ExtractEdges(fieldFromMagnitudes(magn), fraction)
	if len(edges) != 10 {
		t.Errorf("edge count: got %d, want the 10 strong-mode pixels", len(edges))
	}
}

func TestOtsuFraction_AllZero(t *testing.T) {
	if got := OtsuFraction(mat.NewDense(6, 6, nil)); got != 0 {
		t.Errorf("fraction for zero magnitudes: got %g, want 0", got)
	}
}

// fieldFromMagnitudes builds a GradientField with the given magnitude plane
// and unit X gradients, for exercising edge selection directly.
func fieldFromMagnitudes(magn *mat.Dense) *GradientField {
	rows, cols := magn.Dims()
	gx := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			gx.Set(y, x, magn.At(y, x))
		}
	}
	return &GradientField{X: gx, Y: mat.NewDense(rows, cols, nil), Magnitude: magn}
}

func TestExtractEdges_StrictThreshold(t *testing.T) {
	magn := mat.NewDense(3, 3, []float64{
		0, 0.5, 1,
		0, 0.5, 0,
		0, 0, 0,
	})

	// cut = 0.5 * max = 0.5: the two 0.5 pixels sit exactly on the cut and
	// must be excluded.
	edges := ExtractEdges(fieldFromMagnitudes(magn), 0.5)
	if len(edges) != 1 {
		t.Fatalf("edge count: got %d, want 1", len(edges))
	}
	e := edges[0]
	if e.X != 2 || e.Y != 0 || e.Mag != 1 {
		t.Errorf("edge pixel: got (%d,%d) mag %g, want (2,0) mag 1", e.X, e.Y, e.Mag)
	}
	if e.GX != 1 || e.GY != 0 {
		t.Errorf("edge gradient: got (%g,%g), want (1,0)", e.GX, e.GY)
	}
}

func TestExtractEdges_BlankPlane(t *testing.T) {
	edges := ExtractEdges(fieldFromMagnitudes(mat.NewDense(4, 4, nil)), 0)
	if len(edges) != 0 {
		t.Errorf("edge count for blank plane: got %d, want 0", len(edges))
	}
}

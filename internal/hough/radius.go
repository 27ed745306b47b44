package hough

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// DecodeRadii recovers one radius estimate per center by inverting the
// phase ramp applied during accumulation: the accumulator phase at the
// rounded center maps back through [-π, π] to a normalized log position,
// which exponentiates to a radius in [rMin, rMax] (up to the error inherent
// in the 0.5-step radius sampling).
//
// A degenerate single-radius range skips decoding entirely; every circle is
// assigned rMin.
func DecodeRadii(acc *mat.CDense, centers []CandidateCenter, rMin, rMax float64) []float64 {
	radii := make([]float64, len(centers))
	if rMin == rMax {
		for i := range radii {
			radii[i] = rMin
		}
		return radii
	}

	rows, cols := acc.Dims()
	lnMin := math.Log(rMin)
	span := math.Log(rMax) - lnMin
	for i, c := range centers {
		x := clamp(int(math.Round(c.X)), 0, cols-1)
		y := clamp(int(math.Round(c.Y)), 0, rows-1)
		phi := cmplx.Phase(acc.At(y, x))
		n := (phi + math.Pi) / (2 * math.Pi)
		radii[i] = math.Exp(lnMin + n*span)
	}
	return radii
}

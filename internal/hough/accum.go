package hough

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// radiusStep is the spacing of the candidate radius sampling.
const radiusStep = 0.5

// defaultChunkElems caps the edge-count × radius-count work set processed per
// accumulation chunk. Chunking bounds peak memory; it does not change the
// result beyond floating-point summation order.
const defaultChunkElems = 1 << 20

// RadiusSamples returns the candidate radii from rMin to rMax in steps of
// 0.5, inclusive of both endpoints. A degenerate range (rMin == rMax) yields
// a single sample. The caller must ensure 0 < rMin <= rMax.
func RadiusSamples(rMin, rMax float64) []float64 {
	var radii []float64
	for i := 0; ; i++ {
		r := rMin + float64(i)*radiusStep
		if r > rMax+1e-9 {
			break
		}
		radii = append(radii, r)
	}
	if last := radii[len(radii)-1]; rMax-last > 1e-9 {
		radii = append(radii, rMax)
	}
	return radii
}

// phaseWeights builds one complex vote weight per radius sample. The phase
// ramps log-linearly from -π at the smallest sample to +π at the largest
// (0 spans collapse to phase -π), and the magnitude is 1/(2πr) so that a
// fully-voted circle accumulates a metric near 1 regardless of its size.
func phaseWeights(radii []float64) []complex128 {
	lnMin := math.Log(radii[0])
	span := math.Log(radii[len(radii)-1]) - lnMin

	weights := make([]complex128, len(radii))
	for i, r := range radii {
		var n float64
		if span > 0 {
			n = (math.Log(r) - lnMin) / span
		}
		phi := (2*n - 1) * math.Pi
		weights[i] = cmplx.Rect(1/(2*math.Pi*r), phi)
	}
	return weights
}

// BuildAccumulator casts one phase-encoded vote per in-bounds (edge pixel,
// radius) pair into a rows×cols complex accumulator.
//
// For each edge pixel p with unit gradient ĝ and each radius r, the
// candidate center is p - r*ĝ (bright polarity; dark polarity flips the
// sign). The vote is spread bilinearly over the 2×2 cells surrounding the
// fractional center; fractions landing outside the valid vote region are
// discarded, so a pixel may vote for some radii and not others. The valid
// region spans every column but stops one row short of the bottom.
//
// The edge set is processed in chunks whose pixel × radius extent stays
// under chunkElems (<= 0 selects a default budget); each chunk accumulates
// into a private array that is then summed into the shared accumulator, so
// the chunk loop is safe to reorder or parallelize.
func BuildAccumulator(rows, cols int, edges []EdgePixel, radii []float64, polarity Polarity, chunkElems int) *mat.CDense {
	acc := mat.NewCDense(rows, cols, nil)
	if len(edges) == 0 || len(radii) == 0 {
		return acc
	}

	if chunkElems <= 0 {
		chunkElems = defaultChunkElems
	}
	chunk := chunkElems / len(radii)
	if chunk < 1 {
		chunk = 1
	}

	weights := phaseWeights(radii)
	sign := 1.0
	if polarity == PolarityDark {
		sign = -1.0
	}

	part := make([]complex128, rows*cols)
	for start := 0; start < len(edges); start += chunk {
		end := start + chunk
		if end > len(edges) {
			end = len(edges)
		}

		for i := range part {
			part[i] = 0
		}
		for _, e := range edges[start:end] {
			ux := sign * e.GX / e.Mag
			uy := sign * e.GY / e.Mag
			for ri, r := range radii {
				fx := float64(e.X) - r*ux
				fy := float64(e.Y) - r*uy
				x0 := int(math.Floor(fx))
				y0 := int(math.Floor(fy))
				dx := fx - float64(x0)
				dy := fy - float64(y0)
				w := weights[ri]
				splat(part, cols, rows, x0, y0, (1-dx)*(1-dy), w)
				splat(part, cols, rows, x0+1, y0, dx*(1-dy), w)
				splat(part, cols, rows, x0, y0+1, (1-dx)*dy, w)
				splat(part, cols, rows, x0+1, y0+1, dx*dy, w)
			}
		}

		// Reduce the chunk's partial sums into the shared accumulator.
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				if v := part[y*cols+x]; v != 0 {
					acc.Set(y, x, acc.At(y, x)+v)
				}
			}
		}
	}
	return acc
}

// splat deposits one bilinear fraction of a vote into the chunk-local
// accumulator. Cells outside the valid vote region (any column, any row but
// the last) are discarded.
func splat(part []complex128, cols, rows, x, y int, frac float64, w complex128) {
	if frac == 0 || x < 0 || x >= cols || y < 0 || y >= rows-1 {
		return
	}
	part[y*cols+x] += complex(frac, 0) * w
}

// accumulatorEmpty reports whether no vote landed anywhere.
func accumulatorEmpty(acc *mat.CDense) bool {
	rows, cols := acc.Dims()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if acc.At(y, x) != 0 {
				return false
			}
		}
	}
	return true
}

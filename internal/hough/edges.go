package hough

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// EdgePixel is one voting pixel: a location whose gradient magnitude exceeds
// the edge threshold, along with its gradient components.
type EdgePixel struct {
	X, Y   int
	GX, GY float64
	Mag    float64
}

// histogramBins is the resolution of the magnitude histogram used by
// OtsuFraction. 256 matches 8-bit source imagery.
const histogramBins = 256

// OtsuFraction picks an edge threshold as a fraction of the maximum gradient
// magnitude, by maximizing between-class variance over a histogram of the
// normalized magnitudes. Returns 0 for an all-zero magnitude plane, which
// makes the (strict) selection in ExtractEdges come up empty.
func OtsuFraction(magn *mat.Dense) float64 {
	maxMag := mat.Max(magn)
	if maxMag <= 0 {
		return 0
	}

	hist := make([]float64, histogramBins)
	rows, cols := magn.Dims()
	scale := float64(histogramBins-1) / maxMag
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			bin := int(magn.At(y, x)*scale + 0.5)
			if bin >= histogramBins {
				bin = histogramBins - 1
			}
			hist[bin]++
		}
	}

	total := float64(rows * cols)
	var weightedSum float64
	for i, h := range hist {
		weightedSum += float64(i) * h
	}

	// Scan every cut point and keep the one with the largest between-class
	// variance.
	var sumB, wB float64
	var best float64
	bestBin := 0
	for t := 0; t < histogramBins; t++ {
		wB += hist[t]
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * hist[t]
		mB := sumB / wB
		mF := (weightedSum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			bestBin = t
		}
	}

	// Binning rounds to the nearest bin center, so values counted in the
	// winning bin extend half a bin above it. Return the bin's upper edge so
	// the cut clears everything the background class contains.
	return (float64(bestBin) + 0.5) / float64(histogramBins-1)
}

// ExtractEdges selects every pixel whose gradient magnitude strictly exceeds
// fraction times the maximum magnitude, in raster order. An empty result is
// valid and means no circles can be found.
func ExtractEdges(g *GradientField, fraction float64) []EdgePixel {
	cut := fraction * mat.Max(g.Magnitude)
	rows, cols := g.Magnitude.Dims()

	var edges []EdgePixel
	for y := 0; y < rows; y++ {
		row := g.Magnitude.RawRowView(y)
		if floats.Max(row) <= cut {
			continue
		}
		for x := 0; x < cols; x++ {
			if m := row[x]; m > cut {
				edges = append(edges, EdgePixel{
					X:   x,
					Y:   y,
					GX:  g.X.At(y, x),
					GY:  g.Y.At(y, x),
					Mag: m,
				})
			}
		}
	}
	return edges
}

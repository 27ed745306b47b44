package hough

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CandidateCenter is a possible circle center: the weighted centroid of one
// regional-maximum region of the accumulator magnitude, with the suppressed
// magnitude at the rounded centroid as its strength metric.
type CandidateCenter struct {
	X, Y   float64
	Metric float64
}

const (
	// medianWindow is the side length of the median smoothing window.
	medianWindow = 5

	// minMedianDim: smoothing is skipped unless both accumulator dimensions
	// exceed this, to avoid wiping out peaks in tiny images.
	minMedianDim = 5
)

// DetectPeaks finds candidate circle centers in the accumulator.
//
// The accumulator magnitude is median-smoothed (when smooth is set and the
// plane is large enough), then h-maxima suppression with height just under
// the given threshold removes every local maximum whose prominence over its
// surrounding saddle is below it. The surviving regional maxima are reduced
// to weighted centroids using the unsmoothed magnitudes as weights;
// degenerate zero-weight regions are dropped. Results are sorted by metric
// descending, stable with respect to region discovery order.
//
// A degenerate single-radius accumulation concentrates each circle's votes
// in a spike only a cell or two wide, which a 5×5 median would erase; such
// callers pass smooth=false.
func DetectPeaks(acc *mat.CDense, threshold float64, smooth bool) []CandidateCenter {
	rows, cols := acc.Dims()
	magn := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			magn.Set(y, x, cmplx.Abs(acc.At(y, x)))
		}
	}

	smoothed := magn
	if smooth && rows > minMedianDim && cols > minMedianDim {
		smoothed = medianFilter(magn, medianWindow)
	}

	// Back the height off by one ulp so a peak of prominence exactly equal
	// to the threshold survives suppression.
	height := math.Nextafter(threshold, 0)
	if height < 0 {
		height = 0
	}
	suppressed := smoothed
	if height > 0 {
		suppressed = hmaxima(smoothed, height)
	}

	var centers []CandidateCenter
	for _, region := range regionalMaxima(suppressed) {
		var wSum, xSum, ySum float64
		for _, p := range region {
			w := magn.At(p.Y, p.X)
			wSum += w
			xSum += w * float64(p.X)
			ySum += w * float64(p.Y)
		}
		cx := xSum / wSum
		cy := ySum / wSum
		if math.IsNaN(cx) || math.IsNaN(cy) {
			continue
		}
		ix := clamp(int(math.Round(cx)), 0, cols-1)
		iy := clamp(int(math.Round(cy)), 0, rows-1)
		centers = append(centers, CandidateCenter{
			X:      cx,
			Y:      cy,
			Metric: suppressed.At(iy, ix),
		})
	}

	sort.SliceStable(centers, func(i, j int) bool {
		return centers[i].Metric > centers[j].Metric
	})
	return centers
}

// medianFilter applies a window×window median filter with zero padding
// outside the plane.
func medianFilter(m *mat.Dense, window int) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	half := window / 2
	buf := make([]float64, 0, window*window)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			buf = buf[:0]
			for ky := -half; ky <= half; ky++ {
				for kx := -half; kx <= half; kx++ {
					py, px := y+ky, x+kx
					if py < 0 || py >= rows || px < 0 || px >= cols {
						buf = append(buf, 0)
					} else {
						buf = append(buf, m.At(py, px))
					}
				}
			}
			sort.Float64s(buf)
			out.Set(y, x, buf[len(buf)/2])
		}
	}
	return out
}

// hmaxima suppresses every local maximum of f whose prominence is below h,
// by grayscale reconstruction of f-h under f with 8-connectivity.
func hmaxima(f *mat.Dense, h float64) *mat.Dense {
	rows, cols := f.Dims()
	marker := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			marker.Set(y, x, f.At(y, x)-h)
		}
	}
	reconstruct(marker, f)
	return marker
}

var (
	neighbors8 = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	// Raster-order neighbor halves for the reconstruction sweeps.
	neighborsFwd = [4][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}}
	neighborsBwd = [4][2]int{{0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// reconstruct performs grayscale morphological reconstruction by dilation of
// marker under mask, in place, using the two-sweep-plus-FIFO hybrid
// algorithm. Requires marker <= mask elementwise.
func reconstruct(marker, mask *mat.Dense) {
	rows, cols := marker.Dims()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := marker.At(y, x)
			for _, d := range neighborsFwd {
				py, px := y+d[0], x+d[1]
				if py < 0 || py >= rows || px < 0 || px >= cols {
					continue
				}
				if nv := marker.At(py, px); nv > v {
					v = nv
				}
			}
			if mv := mask.At(y, x); v > mv {
				v = mv
			}
			marker.Set(y, x, v)
		}
	}

	type point struct{ x, y int }
	var queue []point
	for y := rows - 1; y >= 0; y-- {
		for x := cols - 1; x >= 0; x-- {
			v := marker.At(y, x)
			for _, d := range neighborsBwd {
				py, px := y+d[0], x+d[1]
				if py < 0 || py >= rows || px < 0 || px >= cols {
					continue
				}
				if nv := marker.At(py, px); nv > v {
					v = nv
				}
			}
			if mv := mask.At(y, x); v > mv {
				v = mv
			}
			marker.Set(y, x, v)

			for _, d := range neighborsBwd {
				py, px := y+d[0], x+d[1]
				if py < 0 || py >= rows || px < 0 || px >= cols {
					continue
				}
				if marker.At(py, px) < v && marker.At(py, px) < mask.At(py, px) {
					queue = append(queue, point{x, y})
					break
				}
			}
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		v := marker.At(p.y, p.x)
		for _, d := range neighbors8 {
			py, px := p.y+d[0], p.x+d[1]
			if py < 0 || py >= rows || px < 0 || px >= cols {
				continue
			}
			nv := marker.At(py, px)
			mv := mask.At(py, px)
			if nv < v && nv < mv {
				if v < mv {
					marker.Set(py, px, v)
				} else {
					marker.Set(py, px, mv)
				}
				queue = append(queue, point{px, py})
			}
		}
	}
}

// gridPoint is an integer accumulator cell location.
type gridPoint struct{ X, Y int }

// regionalMaxima returns the 8-connected constant-value plateaus that no
// adjacent outside pixel exceeds, in raster order of each plateau's first
// pixel. Plateau flooding is iterative to keep large flat regions off the
// call stack.
func regionalMaxima(m *mat.Dense) [][]gridPoint {
	rows, cols := m.Dims()
	visited := make([]bool, rows*cols)

	var regions [][]gridPoint
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if visited[y*cols+x] {
				continue
			}
			v := m.At(y, x)
			visited[y*cols+x] = true
			stack := []gridPoint{{x, y}}
			var plateau []gridPoint
			isMax := true

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				plateau = append(plateau, p)

				for _, d := range neighbors8 {
					py, px := p.Y+d[0], p.X+d[1]
					if py < 0 || py >= rows || px < 0 || px >= cols {
						continue
					}
					nv := m.At(py, px)
					if nv > v {
						isMax = false
						continue
					}
					if nv == v && !visited[py*cols+px] {
						visited[py*cols+px] = true
						stack = append(stack, gridPoint{px, py})
					}
				}
			}

			// A plateau covering the whole plane has no outside pixel to
			// compare against; a flat plane has no peaks.
			if isMax && len(plateau) < rows*cols {
				regions = append(regions, plateau)
			}
		}
	}
	return regions
}

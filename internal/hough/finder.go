package hough

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Polarity selects which side of the boundary the circle interior is on.
type Polarity int

const (
	// PolarityBright detects objects brighter than their background.
	PolarityBright Polarity = iota

	// PolarityDark detects objects darker than their background. The center
	// projection flips sign: centers lie along, not against, the gradient.
	PolarityDark
)

// ParsePolarity maps a tool-argument string to a Polarity.
// The empty string defaults to bright.
func ParsePolarity(s string) (Polarity, error) {
	switch s {
	case "", "bright":
		return PolarityBright, nil
	case "dark":
		return PolarityDark, nil
	default:
		return PolarityBright, fmt.Errorf("unknown polarity %q: want \"bright\" or \"dark\"", s)
	}
}

// DefaultSensitivity is the acceptance sensitivity used when the caller has
// no preference.
const DefaultSensitivity = 0.85

// Params configures FindCircles.
type Params struct {
	// RMin and RMax bound the radius search, in pixels. 0 < RMin <= RMax.
	RMin, RMax float64

	// Sensitivity in [0, 1] sets the acceptance threshold to 1-Sensitivity.
	// Higher values accept weaker circles.
	Sensitivity float64

	// EdgeThreshold, when non-nil, overrides the adaptive Otsu edge cutoff
	// with a fixed fraction in [0, 1] of the maximum gradient magnitude.
	EdgeThreshold *float64

	// Polarity of the objects to detect. Defaults to bright-on-dark.
	Polarity Polarity

	// ChunkElems overrides the accumulation chunk element budget.
	// Zero keeps the default.
	ChunkElems int
}

// DefaultParams returns Params for the given radius range with the default
// sensitivity, adaptive edge threshold, and bright polarity.
func DefaultParams(rMin, rMax float64) Params {
	return Params{RMin: rMin, RMax: rMax, Sensitivity: DefaultSensitivity}
}

// Circle is one accepted detection.
type Circle struct {
	// X, Y is the sub-pixel center location in image coordinates.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Radius is the phase-decoded radius estimate in pixels.
	Radius float64 `json:"radius"`

	// Metric is the accumulator vote strength at the center; circles are
	// returned in descending Metric order.
	Metric float64 `json:"metric"`
}

// Result contains the detections for one plane.
type Result struct {
	// Circles is sorted by Metric descending, ties in discovery order.
	Circles []Circle `json:"circles"`

	// Count is len(Circles).
	Count int `json:"count"`

	// Warnings carries non-fatal notices, such as a radius range small
	// enough to degrade accuracy.
	Warnings []string `json:"warnings,omitempty"`
}

// smallRadiusLimit: below this, center and radius accuracy degrade because
// too few boundary pixels vote per circle. Non-fatal.
const smallRadiusLimit = 5

// FindCircles runs the full detection pipeline over a grayscale plane with
// samples in [0, 1].
//
// Invalid parameters (empty plane, inverted or non-positive radius range,
// sensitivity or edge threshold outside [0, 1]) are rejected before any
// computation. An image with no edges, an accumulator with no votes, or a
// peak set that doesn't survive the acceptance threshold all yield an empty
// Result with no error.
func FindCircles(plane *mat.Dense, p Params) (*Result, error) {
	rows, cols := plane.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("empty image plane")
	}
	if p.RMin <= 0 || p.RMax < p.RMin {
		return nil, fmt.Errorf("invalid radius range [%g, %g]: want 0 < rMin <= rMax", p.RMin, p.RMax)
	}
	if p.Sensitivity < 0 || p.Sensitivity > 1 {
		return nil, fmt.Errorf("sensitivity %g outside [0, 1]", p.Sensitivity)
	}
	if p.EdgeThreshold != nil && (*p.EdgeThreshold < 0 || *p.EdgeThreshold > 1) {
		return nil, fmt.Errorf("edge threshold %g outside [0, 1]", *p.EdgeThreshold)
	}

	result := &Result{Circles: []Circle{}}
	if p.RMin <= smallRadiusLimit {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("radius range starts at %g px: accuracy degrades for radii of %d px and below", p.RMin, smallRadiusLimit))
	}

	grad := NewGradientField(plane)
	fraction := OtsuFraction(grad.Magnitude)
	if p.EdgeThreshold != nil {
		fraction = *p.EdgeThreshold
	}
	edges := ExtractEdges(grad, fraction)
	if len(edges) == 0 {
		return result, nil
	}

	radii := RadiusSamples(p.RMin, p.RMax)
	acc := BuildAccumulator(rows, cols, edges, radii, p.Polarity, p.ChunkElems)
	if accumulatorEmpty(acc) {
		return result, nil
	}

	threshold := 1 - p.Sensitivity
	centers := DetectPeaks(acc, threshold, len(radii) > 1)
	accepted := centers[:0]
	for _, c := range centers {
		if c.Metric >= threshold {
			accepted = append(accepted, c)
		}
	}
	if len(accepted) == 0 {
		return result, nil
	}

	estimates := DecodeRadii(acc, accepted, p.RMin, p.RMax)
	for i, c := range accepted {
		result.Circles = append(result.Circles, Circle{
			X:      c.X,
			Y:      c.Y,
			Radius: estimates[i],
			Metric: c.Metric,
		})
	}
	result.Count = len(result.Circles)
	return result, nil
}

// Package hough implements a phase-coded circular Hough transform for
// detecting circles of bounded but unknown radius in grayscale images.
//
// Unlike the textbook 3-D (x, y, radius) accumulator, this implementation
// votes into a single 2-D complex-valued accumulator: the magnitude of each
// cell encodes vote strength, and the phase encodes the radius of the
// dominant contributing votes on a log-linear ramp. Radius recovery is then
// a cheap phase inversion at each detected center instead of a search over
// a third accumulator dimension.
//
// # Pipeline
//
// The stages run strictly in sequence, each consuming the previous stage's
// output:
//
//  1. Gradient field: Sobel Gx/Gy plus magnitude over the grayscale plane
//  2. Edge extraction: pixels whose magnitude exceeds an adaptive (Otsu)
//     or caller-supplied fraction of the maximum
//  3. Accumulation: each edge pixel casts one complex, radius-weighted vote
//     per candidate radius, spread bilinearly over the cells surrounding the
//     projected center position
//  4. Peak detection: median smoothing, h-maxima suppression, regional
//     maxima, and weighted centroids rank candidate centers by vote strength
//  5. Radius decoding: the accumulator phase at each accepted center is
//     inverted through the log ramp to recover a radius estimate
//
// FindCircles orchestrates all five stages; the stage functions are exported
// so callers can run partial pipelines (for example, to inspect the gradient
// or the raw accumulator).
//
// # Coordinate System
//
// All coordinates are 0-based: (0, 0) is the top-left pixel, X increases
// rightward, Y increases downward. Planes are gonum mat.Dense values
// addressed as At(y, x).
//
// # Sensitivity
//
// The user-facing sensitivity knob in [0, 1] maps to an acceptance threshold
// of 1 - sensitivity on the vote metric. Higher sensitivity accepts weaker
// peaks, so the set of detections grows (never shrinks) as sensitivity rises.
//
// # Determinism
//
// The pipeline is a pure batch computation: the same plane and parameters
// always produce the same detections. Accumulation is chunked over the edge
// set to bound peak memory; chunk grouping only changes floating-point
// summation order, which callers comparing accumulators must tolerate with
// an approximate comparison.
package hough

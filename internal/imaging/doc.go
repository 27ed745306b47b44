// Package imaging provides the image-side collaborators for circle
// detection: loading and caching, grayscale plane conversion, center color
// sampling, and plane rendering for transport.
//
// The detection core (internal/hough) operates purely on numeric planes;
// this package is the boundary where image.Image values are decoded,
// converted, and re-encoded.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0, 0) at the top-left corner,
// X increasing rightward and Y increasing downward. Planes are gonum
// mat.Dense values addressed as At(y, x) with samples normalized to [0, 1].
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless and can run concurrently on different images.
package imaging

package imaging

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// CenterColor describes the color at a detected circle center, for callers
// that overlay or classify detections.
type CenterColor struct {
	// Hex is the "#RRGGBB" color at the center pixel. Empty when the pixel
	// is fully transparent.
	Hex string `json:"hex,omitempty"`

	// Lightness is the CIE L* lightness in [0, 1]. A bright-polarity
	// detection is expected to have high lightness at its center.
	Lightness float64 `json:"lightness"`
}

// SampleCenterColor returns the color at (x, y), clamped into the image
// bounds so rounded sub-pixel centers on the border still sample a pixel.
func SampleCenterColor(img image.Image, x, y int) CenterColor {
	bounds := img.Bounds()
	if x < bounds.Min.X {
		x = bounds.Min.X
	}
	if x >= bounds.Max.X {
		x = bounds.Max.X - 1
	}
	if y < bounds.Min.Y {
		y = bounds.Min.Y
	}
	if y >= bounds.Max.Y {
		y = bounds.Max.Y - 1
	}

	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return CenterColor{}
	}
	l, _, _ := c.Lab()
	return CenterColor{
		Hex:       c.Hex(),
		Lightness: math.Round(l*1000) / 1000,
	}
}

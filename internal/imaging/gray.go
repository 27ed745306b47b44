package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/mat"
)

// GrayPlane converts an image to a normalized grayscale plane with samples
// in [0, 1], addressed as At(y, x). Color inputs are converted with
// luminance weighting; grayscale inputs pass through unchanged.
func GrayPlane(img image.Image) *mat.Dense {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	plane := mat.NewDense(height, width, nil)
	for y := 0; y < height; y++ {
		row := y * gray.Stride
		for x := 0; x < width; x++ {
			// Grayscale NRGBA has R == G == B; one channel suffices.
			plane.Set(y, x, float64(gray.Pix[row+x*4])/255)
		}
	}
	return plane
}

// PrepareForDetection converts an image to a grayscale plane, optionally
// Gaussian-blurring it first. Blurring (radius > 0) trades edge sharpness
// for noise rejection on photographic input; clean synthetic imagery should
// skip it (radius <= 0).
func PrepareForDetection(img image.Image, blurRadius float64) *mat.Dense {
	if blurRadius > 0 {
		img = blur.Gaussian(img, blurRadius)
	}
	return GrayPlane(img)
}

package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// solidImage creates a solid color test image.
func solidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestGrayPlane_Dimensions(t *testing.T) {
	plane := GrayPlane(solidImage(7, 4, color.White))
	rows, cols := plane.Dims()
	if rows != 4 || cols != 7 {
		t.Errorf("plane dims: got %dx%d (rows x cols), want 4x7", rows, cols)
	}
}

func TestGrayPlane_Normalization(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want float64
	}{
		{"white", color.White, 1},
		{"black", color.Black, 0},
		{"mid gray", color.Gray{Y: 128}, 128.0 / 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plane := GrayPlane(solidImage(5, 5, tt.c))
			if got := plane.At(2, 2); math.Abs(got-tt.want) > 0.01 {
				t.Errorf("sample: got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestGrayPlane_ColorWeighting(t *testing.T) {
	// Green carries more luminance than blue.
	green := GrayPlane(solidImage(3, 3, color.RGBA{0, 255, 0, 255})).At(1, 1)
	blue := GrayPlane(solidImage(3, 3, color.RGBA{0, 0, 255, 255})).At(1, 1)
	if green <= blue {
		t.Errorf("luminance weighting: green %g should exceed blue %g", green, blue)
	}
}

func TestPrepareForDetection_Blur(t *testing.T) {
	// A single bright pixel on black: blurring must spread and lower it.
	img := solidImage(21, 21, color.Black)
	img.Set(10, 10, color.White)

	sharp := PrepareForDetection(img, 0)
	blurred := PrepareForDetection(img, 2)

	if got := mat.Max(sharp); got != 1 {
		t.Errorf("unblurred max: got %g, want 1", got)
	}
	bMax := mat.Max(blurred)
	if bMax >= 0.9 {
		t.Errorf("blurred max: got %g, want well below 1", bMax)
	}
	if bMax <= 0 {
		t.Error("blurred plane lost the bright pixel entirely")
	}
}

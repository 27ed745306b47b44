package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"gonum.org/v1/gonum/mat"
)

// PlaneImageResult contains a real-valued plane rendered to a grayscale PNG,
// base64-encoded for transport.
type PlaneImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderPlane scales a plane's values to 0-255 (linear, against the plane
// maximum) and encodes the result as a base64 PNG. An all-zero plane renders
// black.
func RenderPlane(plane *mat.Dense) (*PlaneImageResult, error) {
	rows, cols := plane.Dims()
	maxVal := mat.Max(plane)

	out := image.NewGray(image.Rect(0, 0, cols, rows))
	if maxVal > 0 {
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				out.SetGray(x, y, color.Gray{Y: uint8(plane.At(y, x) / maxVal * 255)})
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode plane image: %w", err)
	}

	return &PlaneImageResult{
		Width:       cols,
		Height:      rows,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

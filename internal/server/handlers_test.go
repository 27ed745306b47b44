package server

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"testing"
)

// writeDiskPNG writes a PNG containing a bright anti-aliased disk on black
// and returns its path.
func writeDiskPNG(t *testing.T, size int, cx, cy, r float64) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := r + 0.5 - math.Hypot(float64(x)-cx, float64(y)-cy)
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v * 255)})
		}
	}

	tmpFile, err := os.CreateTemp(t.TempDir(), "disk-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()
	if err := png.Encode(tmpFile, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return tmpFile.Name()
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	s := New(nil)
	if _, err := s.executeTool("image_transmogrify", json.RawMessage(`{}`)); err == nil {
		t.Error("expected error for unknown tool")
	}
}

func TestExecuteTool_ImageLoad(t *testing.T) {
	s := New(nil)
	path := writeDiskPNG(t, 40, 20, 20, 10)

	result, err := s.executeTool("image_load", json.RawMessage(fmt.Sprintf(`{"path":%q}`, path)))
	if err != nil {
		t.Fatalf("image_load failed: %v", err)
	}
	b, _ := json.Marshal(result)
	var info struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Format string `json:"format"`
	}
	if err := json.Unmarshal(b, &info); err != nil {
		t.Fatalf("failed to parse result: %v", err)
	}
	if info.Width != 40 || info.Height != 40 || info.Format != "png" {
		t.Errorf("info: got %+v, want 40x40 png", info)
	}
}

func TestExecuteTool_ImageLoad_MissingFile(t *testing.T) {
	s := New(nil)
	if _, err := s.executeTool("image_load", json.RawMessage(`{"path":"/nonexistent.png"}`)); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExecuteTool_DetectCircles(t *testing.T) {
	s := New(nil)
	path := writeDiskPNG(t, 80, 40, 40, 15)

	args := fmt.Sprintf(`{"path":%q,"min_radius":8,"max_radius":22}`, path)
	result, err := s.executeTool("image_detect_circles", json.RawMessage(args))
	if err != nil {
		t.Fatalf("image_detect_circles failed: %v", err)
	}

	out, ok := result.(*detectCirclesResult)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if out.Count < 1 {
		t.Fatal("no circles detected in the disk image")
	}
	best := out.Circles[0]
	if math.Abs(best.X-40) > 1.5 || math.Abs(best.Y-40) > 1.5 {
		t.Errorf("center: got (%.2f, %.2f), want near (40, 40)", best.X, best.Y)
	}
	if math.Abs(best.Radius-15) > 1.5 {
		t.Errorf("radius: got %.2f, want near 15", best.Radius)
	}
	// The disk is bright, so its center color must be light.
	if best.FillColor.Lightness < 0.5 {
		t.Errorf("fill lightness: got %g, want bright", best.FillColor.Lightness)
	}
}

func TestExecuteTool_DetectCircles_BadRange(t *testing.T) {
	s := New(nil)
	path := writeDiskPNG(t, 40, 20, 20, 10)

	args := fmt.Sprintf(`{"path":%q,"min_radius":20,"max_radius":5}`, path)
	if _, err := s.executeTool("image_detect_circles", json.RawMessage(args)); err == nil {
		t.Error("expected validation error for inverted radius range")
	}
}

func TestExecuteTool_DetectCircles_BadPolarity(t *testing.T) {
	s := New(nil)
	path := writeDiskPNG(t, 40, 20, 20, 10)

	args := fmt.Sprintf(`{"path":%q,"min_radius":5,"max_radius":15,"polarity":"sideways"}`, path)
	if _, err := s.executeTool("image_detect_circles", json.RawMessage(args)); err == nil {
		t.Error("expected error for unknown polarity")
	}
}

func TestExecuteTool_GradientMap(t *testing.T) {
	s := New(nil)
	path := writeDiskPNG(t, 60, 30, 30, 12)

	result, err := s.executeTool("image_gradient_map", json.RawMessage(fmt.Sprintf(`{"path":%q}`, path)))
	if err != nil {
		t.Fatalf("image_gradient_map failed: %v", err)
	}
	out, ok := result.(*gradientMapResult)
	if !ok {
		t.Fatalf("result has unexpected type %T", result)
	}
	if out.ImageBase64 == "" {
		t.Error("gradient map image is empty")
	}
	if out.EdgePixels == 0 {
		t.Error("no edge pixels found on a disk boundary")
	}
	if out.EdgeThreshold <= 0 || out.EdgeThreshold >= 1 {
		t.Errorf("edge threshold: got %g, want inside (0, 1)", out.EdgeThreshold)
	}
}

func TestHandleToolsCall_WrapsResult(t *testing.T) {
	s := New(nil)
	path := writeDiskPNG(t, 40, 20, 20, 10)

	params, _ := json.Marshal(ToolCallParams{
		Name:      "image_dimensions",
		Arguments: json.RawMessage(fmt.Sprintf(`{"path":%q}`, path)),
	})
	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	if resp.Error != nil {
		t.Fatalf("tools/call failed: %+v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result has unexpected type %T", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatalf("missing content in result: %+v", result)
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}
}

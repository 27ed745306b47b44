package server

import (
	"encoding/json"
	"fmt"
	"math"

	"circle-tools-mcp/internal/hough"
	"circle-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_detect_circles").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool. The response wraps the tool result in MCP's content format; tool
// execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_detect_circles":
		return s.handleImageDetectCircles(args)
	case "image_gradient_map":
		return s.handleImageGradientMap(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to a pretty-printed JSON string.
// Marshal failures yield an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type detectCirclesArgs struct {
	Path          string   `json:"path"`
	MinRadius     float64  `json:"min_radius"`
	MaxRadius     float64  `json:"max_radius"`
	Sensitivity   *float64 `json:"sensitivity"`
	Polarity      string   `json:"polarity"`
	EdgeThreshold *float64 `json:"edge_threshold"`
	BlurRadius    float64  `json:"blur_radius"`
}

// detectedCircle is one detection plus the color sampled at its center.
type detectedCircle struct {
	hough.Circle
	FillColor imaging.CenterColor `json:"fill_color"`
}

type detectCirclesResult struct {
	Circles  []detectedCircle `json:"circles"`
	Count    int              `json:"count"`
	Warnings []string         `json:"warnings,omitempty"`
}

func (s *Server) handleImageDetectCircles(args json.RawMessage) (interface{}, error) {
	var a detectCirclesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	params := hough.DefaultParams(a.MinRadius, a.MaxRadius)
	if a.Sensitivity != nil {
		params.Sensitivity = *a.Sensitivity
	}
	params.EdgeThreshold = a.EdgeThreshold
	polarity, err := hough.ParsePolarity(a.Polarity)
	if err != nil {
		return nil, err
	}
	params.Polarity = polarity

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	plane := imaging.PrepareForDetection(img, a.BlurRadius)
	result, err := hough.FindCircles(plane, params)
	if err != nil {
		return nil, err
	}
	for _, w := range result.Warnings {
		s.log.WithField("tool", "image_detect_circles").Warn(w)
	}

	out := &detectCirclesResult{
		Circles:  make([]detectedCircle, len(result.Circles)),
		Count:    result.Count,
		Warnings: result.Warnings,
	}
	bounds := img.Bounds()
	for i, c := range result.Circles {
		out.Circles[i] = detectedCircle{
			Circle: c,
			FillColor: imaging.SampleCenterColor(img,
				bounds.Min.X+int(math.Round(c.X)),
				bounds.Min.Y+int(math.Round(c.Y))),
		}
	}
	return out, nil
}

type gradientMapArgs struct {
	Path       string  `json:"path"`
	BlurRadius float64 `json:"blur_radius"`
}

type gradientMapResult struct {
	*imaging.PlaneImageResult
	EdgeThreshold float64 `json:"edge_threshold"`
	EdgePixels    int     `json:"edge_pixels"`
}

func (s *Server) handleImageGradientMap(args json.RawMessage) (interface{}, error) {
	var a gradientMapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	plane := imaging.PrepareForDetection(img, a.BlurRadius)
	grad := hough.NewGradientField(plane)
	fraction := hough.OtsuFraction(grad.Magnitude)
	edges := hough.ExtractEdges(grad, fraction)

	rendered, err := imaging.RenderPlane(grad.Magnitude)
	if err != nil {
		return nil, err
	}
	return &gradientMapResult{
		PlaneImageResult: rendered,
		EdgeThreshold:    fraction,
		EdgePixels:       len(edges),
	}, nil
}

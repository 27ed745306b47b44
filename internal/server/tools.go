package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and file size. Caches the image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_detect_circles",
			Description: "Detect circles in an image using a phase-coded circular Hough transform. Returns sub-pixel centers, radius estimates and a vote-strength metric, sorted strongest first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"min_radius": map[string]interface{}{
						"type":        "number",
						"description": "Smallest radius to search, in pixels. Must be positive; values of 5 and below degrade accuracy.",
					},
					"max_radius": map[string]interface{}{
						"type":        "number",
						"description": "Largest radius to search, in pixels. Must be >= min_radius.",
					},
					"sensitivity": map[string]interface{}{
						"type":        "number",
						"description": "Detection sensitivity in [0,1]. Higher values accept weaker circles. Default 0.85.",
						"default":     0.85,
					},
					"polarity": map[string]interface{}{
						"type":        "string",
						"description": "\"bright\" for objects brighter than the background (default), \"dark\" for the opposite.",
						"enum":        []string{"bright", "dark"},
					},
					"edge_threshold": map[string]interface{}{
						"type":        "number",
						"description": "Optional fixed edge-gradient cutoff as a fraction in [0,1] of the maximum gradient magnitude. Omit for an adaptive (Otsu) cutoff.",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Optional Gaussian blur radius applied before detection. Use on noisy photos; omit for clean imagery.",
					},
				},
				"required": []string{"path", "min_radius", "max_radius"},
			},
		},
		{
			Name:        "image_gradient_map",
			Description: "Render the edge-gradient magnitude of an image as a base64 PNG, with the adaptive edge threshold and resulting edge-pixel count. Useful for tuning circle detection parameters.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Optional Gaussian blur radius applied before the gradient.",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

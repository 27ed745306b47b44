// Package server implements the MCP (Model Context Protocol) front-end for
// the circle detection pipeline.
//
// This package provides a JSON-RPC 2.0 server that exposes circle detection
// through the MCP protocol, so MCP-compatible clients can locate circular
// features in images with sub-pixel precision.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_detect_circles: Run the circular Hough transform
//   - image_gradient_map: Render the gradient magnitude for parameter tuning
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are
// cached by path and reused across multiple tool calls, avoiding redundant
// disk I/O. The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Detection warnings (for example, a radius range small enough to degrade
// accuracy) are not errors: they are logged and included in the tool result.
package server

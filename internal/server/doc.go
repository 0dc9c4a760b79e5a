// Package server implements the MCP (Model Context Protocol) server for
// media manipulation tools.
//
// The server is a thin routing and validation layer: every actual media
// transformation is delegated to an external command-line process (ffmpeg,
// ffprobe, ImageMagick, pngquant). Nothing here decodes or encodes media.
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
// Video (ffmpeg/ffprobe):
//   - execute-ffmpeg: Pass raw option pairs through to ffmpeg
//   - convert-video: Container/format re-encode
//   - compress-video: H.264 encode with a CRF quality setting
//   - trim-video: Seek plus bounded-duration extraction
//   - get-media-info: ffprobe container and stream metadata
//
// Image (ImageMagick/pngquant):
//   - compress-image: Lossy PNG compression
//   - convert-image: Format re-encode
//   - resize-image: Proportional, bounding-box, or forced resize
//   - rotate-image: Arbitrary-angle rotation
//   - add-watermark: Overlay at a compass anchor with opacity
//   - apply-effect: blur, sharpen, edge, emboss, grayscale, sepia, negate
//
// # Error Handling
//
// Handler failures never surface as JSON-RPC errors. Invalid parameters,
// missing input files, missing binaries, and subprocess failures are all
// rendered as result text starting with an operation-specific prefix such as
// "Error resizing image: ...". Callers distinguish success from failure by
// inspecting the text. Only malformed request params and unknown tool names
// produce JSON-RPC error responses.
//
// # Concurrency
//
// One request is processed at a time. Each tool call awaits exactly one
// subprocess; there is no queueing, no retry, and no timeout beyond context
// cancellation. Concurrent calls writing the same output path race with
// last-writer-wins semantics.
package server

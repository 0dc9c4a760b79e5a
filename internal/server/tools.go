package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// registerTools declares every tool the server exposes: name, description,
// parameter schema, error prefix, and handler. Registration order is the
// order tools/list reports.
func (s *Server) registerTools() {
	inputProp := map[string]interface{}{
		"type":        "string",
		"description": "Path to the input file. Relative paths are resolved against the server's working directory.",
	}
	outputProp := map[string]interface{}{
		"type":        "string",
		"description": "Optional output path. Defaults to the downloads directory with a tool-specific filename.",
	}

	// Video tools

	s.register(Tool{
		Name:        "execute-ffmpeg",
		Description: "Run ffmpeg on an input file with raw flag/value option pairs passed through verbatim.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"inputPath": inputProp,
				"options": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Even-length list of ffmpeg flag/value pairs, e.g. [\"-c:v\", \"libx265\", \"-crf\", \"28\"]",
				},
				"outputPath": outputProp,
			},
			"required": []string{"inputPath"},
		},
	}, "Error executing FFmpeg command", s.handleExecuteFFmpeg)

	s.register(Tool{
		Name:        "convert-video",
		Description: "Convert a video to a different container/format (e.g. mp4, webm, avi).",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"inputPath": inputProp,
				"outputFormat": map[string]interface{}{
					"type":        "string",
					"description": "Target format, e.g. 'mp4' or 'webm'",
				},
				"outputPath": outputProp,
			},
			"required": []string{"inputPath", "outputFormat"},
		},
	}, "Error converting video", s.handleConvertVideo)

	s.register(Tool{
		Name:        "compress-video",
		Description: "Compress a video with H.264. Lower quality values mean better quality and larger files.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"inputPath": inputProp,
				"quality": map[string]interface{}{
					"type":        "integer",
					"description": "Constant rate factor, 1-51 (default 23)",
					"default":     23,
				},
				"outputPath": outputProp,
			},
			"required": []string{"inputPath"},
		},
	}, "Error compressing video", s.handleCompressVideo)

	s.register(Tool{
		Name:        "trim-video",
		Description: "Extract a section of a video given a start time and duration.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"inputPath": inputProp,
				"startTime": map[string]interface{}{
					"type":        "string",
					"description": "Start position in HH:MM:SS format",
				},
				"duration": map[string]interface{}{
					"type":        "string",
					"description": "Length of the extracted section in HH:MM:SS format",
				},
				"outputPath": outputProp,
			},
			"required": []string{"inputPath", "startTime", "duration"},
		},
	}, "Error trimming video", s.handleTrimVideo)

	s.register(Tool{
		Name:        "get-media-info",
		Description: "Inspect a media file and return its container and stream metadata as JSON.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"inputPath": inputProp,
			},
			"required": []string{"inputPath"},
		},
	}, "Error reading media info", s.handleMediaInfo)

	// Image tools

	s.register(Tool{
		Name:        "compress-image",
		Description: "Compress a PNG image with pngquant (lossy). Input must be a PNG file.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"inputPath": inputProp,
				"quality": map[string]interface{}{
					"type":        "integer",
					"description": "Quality 1-100 (default 80)",
					"default":     80,
				},
				"outputPath": outputProp,
			},
			"required": []string{"inputPath"},
		},
	}, "Error compressing image", s.handleCompressImage)

	s.register(Tool{
		Name:        "convert-image",
		Description: "Convert an image to a different format (e.g. png, jpg, webp).",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"inputPath": inputProp,
				"outputFormat": map[string]interface{}{
					"type":        "string",
					"description": "Target format, e.g. 'jpg' or 'webp'",
				},
				"outputPath": outputProp,
			},
			"required": []string{"inputPath", "outputFormat"},
		},
	}, "Error converting image", s.handleConvertImage)

	s.register(Tool{
		Name:        "resize-image",
		Description: "Resize an image. Provide width, height, or both; aspect ratio is preserved unless disabled.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"inputPath": inputProp,
				"width": map[string]interface{}{
					"type":        "integer",
					"description": "Target width in pixels",
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": "Target height in pixels",
				},
				"maintainAspectRatio": map[string]interface{}{
					"type":        "boolean",
					"description": "Fit inside the bounding box instead of forcing exact dimensions (default true)",
					"default":     true,
				},
				"outputPath": outputProp,
			},
			"required": []string{"inputPath"},
		},
	}, "Error resizing image", s.handleResizeImage)

	s.register(Tool{
		Name:        "rotate-image",
		Description: "Rotate an image by an arbitrary angle in degrees.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"inputPath": inputProp,
				"degrees": map[string]interface{}{
					"type":        "number",
					"description": "Rotation angle in degrees (clockwise)",
				},
				"outputPath": outputProp,
			},
			"required": []string{"inputPath", "degrees"},
		},
	}, "Error rotating image", s.handleRotateImage)

	s.register(Tool{
		Name:        "add-watermark",
		Description: "Overlay a watermark image onto a base image at a compass anchor with adjustable opacity.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"inputPath": inputProp,
				"watermarkPath": map[string]interface{}{
					"type":        "string",
					"description": "Path to the watermark image",
				},
				"position": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"northwest", "north", "northeast", "west", "center", "east", "southwest", "south", "southeast"},
					"description": "Anchor for the watermark (default southeast)",
					"default":     "southeast",
				},
				"opacity": map[string]interface{}{
					"type":        "integer",
					"description": "Watermark opacity 0-100 (default 50)",
					"default":     50,
				},
				"outputPath": outputProp,
			},
			"required": []string{"inputPath", "watermarkPath"},
		},
	}, "Error adding watermark", s.handleAddWatermark)

	s.register(Tool{
		Name:        "apply-effect",
		Description: "Apply a visual effect to an image: blur, sharpen, edge, emboss, grayscale, sepia, or negate.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"inputPath": inputProp,
				"effect": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"blur", "sharpen", "edge", "emboss", "grayscale", "sepia", "negate"},
					"description": "Effect to apply",
				},
				"intensity": map[string]interface{}{
					"type":        "integer",
					"description": "Effect intensity 0-100 (default 50). Ignored by grayscale and negate.",
					"default":     50,
				},
				"outputPath": outputProp,
			},
			"required": []string{"inputPath", "effect"},
		},
	}, "Error applying effect", s.handleApplyEffect)
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	defs := make([]Tool, 0, len(s.order))
	for _, name := range s.order {
		defs = append(defs, s.tools[name].def)
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": defs,
		},
	}
}

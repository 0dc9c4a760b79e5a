package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "convert-video", "resize-image").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// toolHandler executes one tool call and returns the success text. Any error
// it returns is rendered into the tool's error prefix; it never reaches the
// transport as a JSON-RPC failure.
type toolHandler func(ctx context.Context, args json.RawMessage) (string, error)

// toolEntry binds a tool definition to its handler and the prefix used when
// a handler error is converted into result text.
type toolEntry struct {
	def       Tool
	errPrefix string
	handler   toolHandler
}

func (s *Server) register(def Tool, errPrefix string, h toolHandler) {
	s.tools[def.Name] = toolEntry{def: def, errPrefix: errPrefix, handler: h}
	s.order = append(s.order, def.Name)
}

// handleToolsCall processes a tools/call request and executes the named tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<result text>"}]
//	}
//
// Every handler-level failure (invalid parameters, missing input, missing
// binary, subprocess exit) is converted into a successful response whose text
// starts with the tool's error prefix. Only malformed params and unknown tool
// names produce JSON-RPC errors.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	entry, ok := s.tools[params.Name]
	if !ok {
		return s.errorResponse(req.ID, -32602, "Unknown tool", params.Name)
	}

	callID := uuid.NewString()
	start := time.Now()
	s.log.Debug("tool call started", "tool", params.Name, "call_id", callID)

	text, err := entry.handler(context.Background(), params.Arguments)
	if err != nil {
		s.log.Warn("tool call failed",
			"tool", params.Name, "call_id", callID, "error", err)
		text = fmt.Sprintf("%s: %v", entry.errPrefix, err)
	} else {
		s.log.Debug("tool call completed",
			"tool", params.Name, "call_id", callID, "duration", time.Since(start))
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
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

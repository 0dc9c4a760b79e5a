package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedTools = []string{
	"execute-ffmpeg",
	"convert-video",
	"compress-video",
	"trim-video",
	"get-media-info",
	"compress-image",
	"convert-image",
	"resize-image",
	"rotate-image",
	"add-watermark",
	"apply-effect",
}

func TestRegisterTools_Catalog(t *testing.T) {
	s, _, _ := newTestServer(t)

	require.Len(t, s.order, len(expectedTools))
	for _, name := range expectedTools {
		entry, ok := s.tools[name]
		require.True(t, ok, "expected tool %s not registered", name)
		assert.NotNil(t, entry.handler, "%s has no handler", name)
		assert.NotEmpty(t, entry.errPrefix, "%s has no error prefix", name)
	}
	// Registration order is the catalog order.
	assert.Equal(t, expectedTools, s.order)
}

func TestToolDefinitions_Structure(t *testing.T) {
	s, _, _ := newTestServer(t)

	for _, name := range s.order {
		tool := s.tools[name].def
		t.Run(tool.Name, func(t *testing.T) {
			assert.NotEmpty(t, tool.Name)
			assert.NotEmpty(t, tool.Description)
			require.NotNil(t, tool.InputSchema)

			assert.Equal(t, "object", tool.InputSchema["type"])

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			require.True(t, ok, "properties missing or wrong type")
			assert.Contains(t, props, "inputPath")

			required, ok := tool.InputSchema["required"].([]string)
			require.True(t, ok, "required missing or wrong type")
			assert.Contains(t, required, "inputPath")
		})
	}
}

func TestToolDefinitions_ErrorPrefixes(t *testing.T) {
	s, _, _ := newTestServer(t)

	seen := make(map[string]bool)
	for _, name := range s.order {
		prefix := s.tools[name].errPrefix
		assert.False(t, seen[prefix], "duplicate error prefix %q", prefix)
		seen[prefix] = true
	}
}

func TestHandleToolsList(t *testing.T) {
	s, _, _ := newTestServer(t)

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	tools, ok := result["tools"].([]Tool)
	require.True(t, ok)
	assert.Len(t, tools, len(expectedTools))

	// The whole list must serialize cleanly for the wire.
	_, err := json.Marshal(resp)
	require.NoError(t, err)
}

package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewServer(t *testing.T) {
	s := NewServer("test-server", "1.2.3", zap.NewNop())
	require.NotNil(t, s)
	require.NotNil(t, s.MCP())
}

func TestServer_InitializeAdvertisesInstructions(t *testing.T) {
	s := NewServer("test-server", "1.2.3", zap.NewNop())

	raw := s.MCP().HandleMessage(context.Background(), []byte(`{
		"jsonrpc": "2.0",
		"id": 1,
		"method": "initialize",
		"params": {
			"protocolVersion": "2025-03-26",
			"capabilities": {},
			"clientInfo": {"name": "test", "version": "0.0.1"}
		}
	}`))

	resultBytes, err := json.Marshal(raw)
	require.NoError(t, err)

	var response struct {
		Result struct {
			Instructions string `json:"instructions"`
			ServerInfo   struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(resultBytes, &response))

	assert.Equal(t, "test-server", response.Result.ServerInfo.Name)
	assert.Equal(t, "1.2.3", response.Result.ServerInfo.Version)
	assert.Contains(t, response.Result.Instructions, "TiDB Cloud Zero")
}

func TestServer_RegisterTool(t *testing.T) {
	s := NewServer("test-server", "1.0.0", zap.NewNop())
	s.RegisterTool(mcpgo.NewTool("ping"), func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		return mcpgo.NewToolResultText("pong"), nil
	})

	raw := s.MCP().HandleMessage(context.Background(),
		[]byte(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"ping"}}`))
	resultBytes, err := json.Marshal(raw)
	require.NoError(t, err)
	assert.Contains(t, string(resultBytes), "pong")
}

func TestServer_NewStreamableHTTPServer(t *testing.T) {
	s := NewServer("test-server", "1.0.0", zap.NewNop())
	assert.NotNil(t, s.NewStreamableHTTPServer())
}

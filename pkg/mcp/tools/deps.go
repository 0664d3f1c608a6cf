// Package tools provides the MCP tool, resource, and prompt surface of
// zero-mcp.
package tools

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/tidbcloud/zero-mcp/pkg/credentials"
	"github.com/tidbcloud/zero-mcp/pkg/tidb"
)

// ToolDeps contains dependencies shared by all database tools.
type ToolDeps struct {
	Executor tidb.Executor
	Resolver *credentials.Resolver
	// Backend is the configured backend name, surfaced by
	// get_database_info.
	Backend string
	// MaxRows caps rows in rendered tables.
	MaxRows int
	Logger  *zap.Logger
}

// RegisterAll registers every tool, resource, and prompt on the
// server.
func RegisterAll(s *server.MCPServer, deps *ToolDeps) {
	registerQueryTool(s, deps)
	registerExecuteTool(s, deps)
	registerBatchExecuteTool(s, deps)
	registerListTablesTool(s, deps)
	registerDescribeTableTool(s, deps)
	registerDatabaseInfoTool(s, deps)
	registerResources(s, deps)
	registerPrompts(s)
}

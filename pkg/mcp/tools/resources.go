package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources exposes the table listing and database info as MCP
// resources, mirroring the corresponding tools.
func registerResources(s *server.MCPServer, deps *ToolDeps) {
	s.AddResource(
		mcp.NewResource(
			"tidb://tables",
			"Database Tables",
			mcp.WithResourceDescription("List of all tables in the database."),
			mcp.WithMIMEType("text/plain"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      "tidb://tables",
					MIMEType: "text/plain",
					Text:     listTables(ctx, deps),
				},
			}, nil
		},
	)

	s.AddResource(
		mcp.NewResource(
			"tidb://info",
			"Database Info",
			mcp.WithResourceDescription("Database connection info and TiDB version."),
			mcp.WithMIMEType("text/plain"),
		),
		func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      "tidb://info",
					MIMEType: "text/plain",
					Text:     databaseInfo(ctx, deps),
				},
			}, nil
		},
	)
}

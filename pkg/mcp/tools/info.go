package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tidbcloud/zero-mcp/pkg/config"
)

// registerDatabaseInfoTool registers connection/version/status
// reporting.
func registerDatabaseInfoTool(s *server.MCPServer, deps *ToolDeps) {
	tool := mcp.NewTool(
		"get_database_info",
		mcp.WithDescription("Get database connection info, TiDB version, and instance status."),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(databaseInfo(ctx, deps)), nil
	})
}

// databaseInfo builds the info text. Shared with the tidb://info
// resource.
func databaseInfo(ctx context.Context, deps *ToolDeps) string {
	desc, err := deps.Resolver.Resolve(ctx)
	if err != nil {
		return "Error: " + err.Error()
	}

	version := firstCell(ctx, deps, "SELECT VERSION() as version")
	db := firstCell(ctx, deps, "SELECT DATABASE() as db")

	tableCount := 0
	if tablesResult, err := deps.Executor.Execute(ctx, "SHOW TABLES", ""); err == nil {
		tableCount = len(tablesResult.Rows)
	}

	connection := "Serverless HTTP (stateless, no driver needed)"
	if deps.Backend == config.BackendDriver {
		connection = "MySQL driver (persistent connection, TLS)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Database: %s\n", db)
	fmt.Fprintf(&b, "TiDB Version: %s\n", version)
	fmt.Fprintf(&b, "Host: %s\n", desc.Host)
	fmt.Fprintf(&b, "API: %s\n", desc.APIURL())
	fmt.Fprintf(&b, "Tables: %d\n", tableCount)
	fmt.Fprintf(&b, "Connection: %s\n", connection)
	if desc.ExpiresAt != "" {
		fmt.Fprintf(&b, "Instance expires: %s\n", desc.ExpiresAt)
	}
	b.WriteString("\nTiDB Cloud Zero — Free serverless MySQL for AI agents.\n")
	b.WriteString("Get yours at https://zero.tidbcloud.com")
	return b.String()
}

// firstCell runs a single-value query and returns the first cell, or
// "unknown" when the query fails or returns nothing.
func firstCell(ctx context.Context, deps *ToolDeps, sql string) string {
	result, err := deps.Executor.Execute(ctx, sql, "")
	if err != nil || len(result.Rows) == 0 || len(result.Rows[0]) == 0 {
		return "unknown"
	}
	return result.Rows[0][0]
}

package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/tidbcloud/zero-mcp/pkg/format"
	"github.com/tidbcloud/zero-mcp/pkg/logging"
	"github.com/tidbcloud/zero-mcp/pkg/tidb"
)

// registerQueryTool registers the read-only query entry point. The
// allow-list check happens before any credential or transport work, so
// a rejected statement never reaches the database.
func registerQueryTool(s *server.MCPServer, deps *ToolDeps) {
	tool := mcp.NewTool(
		"query",
		mcp.WithDescription(
			"Execute a read-only SQL query (SELECT, SHOW, DESCRIBE, EXPLAIN). "+
				"Returns results as a formatted table. "+
				`Examples: query("SELECT * FROM users LIMIT 10"), query("SHOW TABLES"), query("DESCRIBE users")`,
		),
		mcp.WithString("sql",
			mcp.Required(),
			mcp.Description("The SQL query to execute"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sql, err := req.RequireString("sql")
		if err != nil {
			return errorResult(err), nil
		}

		if err := tidb.CheckReadOnly(sql); err != nil {
			return errorResult(err), nil
		}

		result, err := deps.Executor.Execute(ctx, sql, "")
		if err != nil {
			deps.Logger.Debug("query failed",
				zap.String("statement", logging.TruncateStatement(sql)),
				zap.String("error", logging.SanitizeError(err)))
			return errorResult(err), nil
		}
		return mcp.NewToolResultText(format.Render(result, deps.MaxRows)), nil
	})
}

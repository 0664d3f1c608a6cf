package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/tidbcloud/zero-mcp/pkg/format"
	"github.com/tidbcloud/zero-mcp/pkg/logging"
	"github.com/tidbcloud/zero-mcp/pkg/tidb"
)

// registerExecuteTool registers the write entry point.
func registerExecuteTool(s *server.MCPServer, deps *ToolDeps) {
	tool := mcp.NewTool(
		"execute",
		mcp.WithDescription(
			"Execute a write SQL statement (CREATE, INSERT, UPDATE, DELETE, ALTER, DROP). "+
				"Returns the number of affected rows. "+
				`Examples: execute("CREATE TABLE users (id INT AUTO_INCREMENT PRIMARY KEY, name VARCHAR(255))"), `+
				`execute("INSERT INTO users (name) VALUES ('Alice')")`,
		),
		mcp.WithString("sql",
			mcp.Required(),
			mcp.Description("The SQL statement to execute"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sql, err := req.RequireString("sql")
		if err != nil {
			return errorResult(err), nil
		}

		result, err := deps.Executor.Execute(ctx, sql, "")
		if err != nil {
			deps.Logger.Debug("execute failed",
				zap.String("statement", logging.TruncateStatement(sql)),
				zap.String("error", logging.SanitizeError(err)))
			return errorResult(err), nil
		}

		var affected int64
		if result.RowsAffected != nil {
			affected = *result.RowsAffected
		}
		return mcp.NewToolResultText(format.StatusLine(affected, result.LastInsertID)), nil
	})
}

// registerBatchExecuteTool registers sequential multi-statement
// execution. Statements run independently: one failure never aborts
// the rest, and nothing is transactional across statements.
func registerBatchExecuteTool(s *server.MCPServer, deps *ToolDeps) {
	tool := mcp.NewTool(
		"batch_execute",
		mcp.WithDescription(
			"Execute multiple SQL statements sequentially. "+
				"Each statement runs independently; a failed statement does not stop the following ones.",
		),
		mcp.WithArray("statements",
			mcp.Required(),
			mcp.Description("List of SQL statements to execute in order"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]any)
		raw, ok := args["statements"].([]any)
		if !ok {
			return errorResult(fmt.Errorf("statements must be a list of SQL strings")), nil
		}

		statements := make([]string, 0, len(raw))
		for _, item := range raw {
			stmt, ok := item.(string)
			if !ok {
				return errorResult(fmt.Errorf("statements must be a list of SQL strings")), nil
			}
			statements = append(statements, stmt)
		}

		outcomes := tidb.ExecuteBatch(ctx, deps.Executor, statements)
		lines := make([]string, len(outcomes))
		for i, outcome := range outcomes {
			if outcome.Err != nil {
				lines[i] = fmt.Sprintf("[%d] Error: %s", i+1, outcome.Err.Error())
				continue
			}
			lines[i] = fmt.Sprintf("[%d] OK", i+1)
			if outcome.RowsAffected != nil {
				lines[i] += fmt.Sprintf(" (%d rows)", *outcome.RowsAffected)
			}
		}
		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}

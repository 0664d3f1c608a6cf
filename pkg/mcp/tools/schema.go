package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tidbcloud/zero-mcp/pkg/format"
)

// quoteIdentifier backtick-quotes a table name for interpolation into
// SHOW/DESCRIBE statements. Neither backend supports bind parameters
// for identifiers, so embedded backticks are doubled per MySQL quoting
// rules.
func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// registerListTablesTool registers table listing with per-table row
// counts.
func registerListTablesTool(s *server.MCPServer, deps *ToolDeps) {
	tool := mcp.NewTool(
		"list_tables",
		mcp.WithDescription("List all tables in the current database with row counts."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(listTables(ctx, deps)), nil
	})
}

// listTables renders the table/row-count listing. Shared with the
// tidb://tables resource.
func listTables(ctx context.Context, deps *ToolDeps) string {
	result, err := deps.Executor.Execute(ctx, "SHOW TABLES", "")
	if err != nil {
		return "Error: " + err.Error()
	}
	if len(result.Rows) == 0 {
		return "No tables found. Use execute() to create one!"
	}

	type tableCount struct {
		name string
		rows string
	}
	tables := make([]tableCount, 0, len(result.Rows))
	for _, row := range result.Rows {
		if len(row) == 0 {
			continue
		}
		name := row[0]
		count := "?"
		countResult, err := deps.Executor.Execute(ctx,
			fmt.Sprintf("SELECT COUNT(*) as count FROM %s", quoteIdentifier(name)), "")
		if err == nil && len(countResult.Rows) > 0 && len(countResult.Rows[0]) > 0 {
			count = countResult.Rows[0][0]
		}
		tables = append(tables, tableCount{name: name, rows: count})
	}

	nameWidth := len("table")
	for _, t := range tables {
		if len(t.name) > nameWidth {
			nameWidth = len(t.name)
		}
	}

	lines := make([]string, 0, len(tables)+2)
	lines = append(lines,
		fmt.Sprintf("%-*s | rows", nameWidth, "table"),
		strings.Repeat("-", nameWidth)+"-+-----")
	for _, t := range tables {
		lines = append(lines, fmt.Sprintf("%-*s | %s", nameWidth, t.name, t.rows))
	}
	return strings.Join(lines, "\n")
}

// registerDescribeTableTool registers schema inspection for a single
// table.
func registerDescribeTableTool(s *server.MCPServer, deps *ToolDeps) {
	tool := mcp.NewTool(
		"describe_table",
		mcp.WithDescription("Get the schema of a table (columns, types, keys)."),
		mcp.WithString("table",
			mcp.Required(),
			mcp.Description("Table name to describe"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		table, err := req.RequireString("table")
		if err != nil {
			return errorResult(err), nil
		}

		result, err := deps.Executor.Execute(ctx,
			fmt.Sprintf("DESCRIBE %s", quoteIdentifier(table)), "")
		if err != nil {
			return errorResult(err), nil
		}
		return mcp.NewToolResultText(format.Render(result, deps.MaxRows)), nil
	})
}

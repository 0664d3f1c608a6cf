package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerPrompts registers the two static prompt-template generators.
func registerPrompts(s *server.MCPServer) {
	s.AddPrompt(
		mcp.NewPrompt("create_crud_table",
			mcp.WithPromptDescription("Generate SQL to create a table with common CRUD patterns."),
			mcp.WithArgument("table_name",
				mcp.ArgumentDescription("Name of the table to create"),
				mcp.RequiredArgument(),
			),
			mcp.WithArgument("columns",
				mcp.ArgumentDescription("Description of the columns the table needs"),
				mcp.RequiredArgument(),
			),
		),
		func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			tableName := req.Params.Arguments["table_name"]
			columns := req.Params.Arguments["columns"]

			text := fmt.Sprintf("Please create a table called `%s` with these columns: %s\n\n"+
				"Also add:\n"+
				"- An auto-increment primary key `id`\n"+
				"- `created_at` and `updated_at` timestamps\n"+
				"- Appropriate indexes\n\n"+
				"Use the execute() tool to run the CREATE TABLE statement.\n"+
				"Then use describe_table() to verify the schema.", tableName, columns)

			return mcp.NewGetPromptResult("Create a CRUD table", []mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
			}), nil
		},
	)

	s.AddPrompt(
		mcp.NewPrompt("analyze_data",
			mcp.WithPromptDescription("Generate a data analysis workflow for a table."),
			mcp.WithArgument("table_name",
				mcp.ArgumentDescription("Name of the table to analyze"),
				mcp.RequiredArgument(),
			),
		),
		func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			tableName := req.Params.Arguments["table_name"]

			text := fmt.Sprintf("Please analyze the data in the `%s` table:\n\n"+
				"1. First, use describe_table(%q) to see the schema\n"+
				"2. Use query(\"SELECT COUNT(*) as total FROM %s\") for row count\n"+
				"3. For numeric columns, calculate min, max, avg\n"+
				"4. For text columns, show distinct value counts\n"+
				"5. Summarize your findings", tableName, tableName, tableName)

			return mcp.NewGetPromptResult("Analyze table data", []mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
			}), nil
		},
	)
}

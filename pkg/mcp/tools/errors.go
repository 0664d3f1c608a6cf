package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// errorResult converts any failure into the plain-text contract every
// tool honors: a "Error: <message>" string. No structured error and no
// Go error ever crosses the tool boundary into the protocol layer.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultText("Error: " + err.Error())
}

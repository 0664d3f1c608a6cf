// Package format renders normalized query results as plain text:
// either an aligned table or a one-line status message.
package format

import (
	"fmt"
	"strings"

	"github.com/tidbcloud/zero-mcp/pkg/tidb"
)

// DefaultMaxRows caps table output when the caller does not supply a
// display limit.
const DefaultMaxRows = 100

// Render formats a result. Results without rows become a status line;
// everything else becomes an aligned table, truncated at maxRows.
func Render(result *tidb.Result, maxRows int) string {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	if len(result.Rows) == 0 || len(result.Columns) == 0 {
		if result.RowsAffected != nil {
			return StatusLine(*result.RowsAffected, result.LastInsertID)
		}
		return "No results."
	}

	rows := result.Rows
	truncated := len(rows) > maxRows
	if truncated {
		rows = rows[:maxRows]
	}

	names := result.ColumnNames()
	widths := make([]int, len(names))
	for i, name := range names {
		widths[i] = len(name)
	}
	for _, row := range rows {
		for i := range names {
			if i < len(row) && len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
	}

	var b strings.Builder
	writeLine(&b, names, widths, " | ")
	b.WriteByte('\n')
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(dashes, "-+-"))
	for _, row := range rows {
		b.WriteByte('\n')
		cells := make([]string, len(names))
		for i := range names {
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		writeLine(&b, cells, widths, " | ")
	}

	if truncated {
		fmt.Fprintf(&b, "\n... (showing %d of more rows)", maxRows)
	}
	return b.String()
}

// StatusLine renders the outcome of a statement that returned no rows.
func StatusLine(rowsAffected int64, lastInsertID string) string {
	msg := fmt.Sprintf("OK. Rows affected: %d", rowsAffected)
	if lastInsertID != "" && lastInsertID != "0" {
		msg += fmt.Sprintf(". Last insert ID: %s", lastInsertID)
	}
	return msg
}

// writeLine writes cells left-justified to their column widths.
func writeLine(b *strings.Builder, cells []string, widths []int, sep string) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
	}
	b.WriteString(strings.Join(parts, sep))
}

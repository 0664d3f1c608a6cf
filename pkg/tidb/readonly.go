package tidb

import (
	"strings"

	"github.com/tidbcloud/zero-mcp/pkg/apperrors"
)

// readOnlyKeywords are the leading keywords the read-only entry point
// accepts. This is a compatibility allow-list, not a security
// boundary: it cannot stop semantically mutating statements disguised
// behind an allowed keyword (for example a stored-procedure call).
var readOnlyKeywords = []string{"SELECT", "SHOW", "DESCRIBE", "DESC", "EXPLAIN"}

// IsReadOnly reports whether the statement's case-insensitive leading
// keyword is on the read-only allow-list.
func IsReadOnly(statement string) bool {
	upper := strings.ToUpper(strings.TrimSpace(statement))
	for _, kw := range readOnlyKeywords {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// CheckReadOnly returns a ValidationError for statements that fail the
// allow-list. Rejected statements must never reach the transport
// layer.
func CheckReadOnly(statement string) error {
	if IsReadOnly(statement) {
		return nil
	}
	return &apperrors.ValidationError{
		Message: "query() only supports SELECT, SHOW, DESCRIBE, and EXPLAIN. Use execute() for write operations.",
	}
}

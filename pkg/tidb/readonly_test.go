package tidb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidbcloud/zero-mcp/pkg/apperrors"
)

func TestIsReadOnly(t *testing.T) {
	tests := []struct {
		statement string
		want      bool
	}{
		{"SELECT 1", true},
		{"select * from users", true},
		{"  SHOW TABLES  ", true},
		{"DESCRIBE users", true},
		{"desc users", true},
		{"EXPLAIN SELECT 1", true},
		{"UPDATE t SET x=1", false},
		{"INSERT INTO t VALUES (1)", false},
		{"DELETE FROM t", false},
		{"DROP TABLE t", false},
		{"CALL do_mutation()", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.statement, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReadOnly(tt.statement))
		})
	}
}

func TestCheckReadOnly_RejectionIsValidationError(t *testing.T) {
	err := CheckReadOnly("UPDATE t SET x=1")
	require.Error(t, err)

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Message, "query() only supports")
}

func TestCheckReadOnly_AllowsSelect(t *testing.T) {
	assert.NoError(t, CheckReadOnly("SELECT 1"))
}

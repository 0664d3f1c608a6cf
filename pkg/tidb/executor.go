package tidb

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tidbcloud/zero-mcp/pkg/config"
	"github.com/tidbcloud/zero-mcp/pkg/credentials"
)

// Executor runs a single SQL statement against the remote database and
// normalizes the response. database overrides the descriptor's default
// database when non-empty.
//
// Implementations must be safe for concurrent use; each call owns its
// own transport state.
type Executor interface {
	Execute(ctx context.Context, statement string, database string) (*Result, error)
}

// NewExecutor selects the backend named by cfg.Backend. Both backends
// satisfy the same contract; only the transport differs.
func NewExecutor(cfg *config.Config, resolver *credentials.Resolver, logger *zap.Logger) (Executor, error) {
	timeout := time.Duration(cfg.QueryTimeoutSeconds) * time.Second

	switch cfg.Backend {
	case config.BackendHTTP:
		return NewGateway(resolver, timeout, logger), nil
	case config.BackendDriver:
		return NewDriver(resolver, timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// BatchOutcome is the per-statement result of a batch execution.
type BatchOutcome struct {
	// Err is nil on success.
	Err error
	// RowsAffected is set when the backend reported a count.
	RowsAffected *int64
}

// ExecuteBatch runs each statement independently and collects one
// outcome per statement, in order. A failure never aborts the
// remaining statements; the batch is explicitly non-transactional.
func ExecuteBatch(ctx context.Context, exec Executor, statements []string) []BatchOutcome {
	outcomes := make([]BatchOutcome, len(statements))
	for i, stmt := range statements {
		result, err := exec.Execute(ctx, stmt, "")
		if err != nil {
			outcomes[i] = BatchOutcome{Err: err}
			continue
		}
		outcomes[i] = BatchOutcome{RowsAffected: result.RowsAffected}
	}
	return outcomes
}

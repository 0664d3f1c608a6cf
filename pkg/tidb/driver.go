package tidb

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/tidbcloud/zero-mcp/pkg/apperrors"
	"github.com/tidbcloud/zero-mcp/pkg/credentials"
	"github.com/tidbcloud/zero-mcp/pkg/logging"
)

// Driver executes statements over a persistent MySQL driver
// connection. Pools are keyed by DSN so a per-call database override
// gets its own pool; each call acquires a dedicated connection, runs
// inside a transaction, and releases the connection on every exit
// path.
type Driver struct {
	resolver *credentials.Resolver
	timeout  time.Duration
	logger   *zap.Logger

	mu    sync.Mutex
	pools map[string]*sql.DB
}

// NewDriver creates the persistent-connection backend.
func NewDriver(resolver *credentials.Resolver, timeout time.Duration, logger *zap.Logger) *Driver {
	return &Driver{
		resolver: resolver,
		timeout:  timeout,
		logger:   logger,
		pools:    make(map[string]*sql.DB),
	}
}

// pool returns the pool for dsn, opening it on first use.
func (d *Driver) pool(dsn string) (*sql.DB, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if db, ok := d.pools[dsn]; ok {
		return db, nil
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql pool: %w", err)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)
	d.pools[dsn] = db

	d.logger.Debug("opened mysql pool", zap.String("dsn", logging.SanitizeDSN(dsn)))
	return db, nil
}

// Close releases all pools.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var firstErr error
	for dsn, db := range d.pools {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(d.pools, dsn)
	}
	return firstErr
}

// Execute runs one statement on a dedicated connection inside a
// transaction: commit on success, rollback on any error.
func (d *Driver) Execute(ctx context.Context, statement string, database string) (*Result, error) {
	desc, err := d.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	db, err := d.pool(desc.DSN(database))
	if err != nil {
		return nil, &apperrors.ExecutionError{Message: logging.SanitizeError(err)}
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, &apperrors.ExecutionError{Message: logging.SanitizeError(err)}
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, &apperrors.ExecutionError{Message: logging.SanitizeError(err)}
	}

	result, err := d.runInTx(ctx, tx, statement)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, &apperrors.ExecutionError{Message: logging.SanitizeError(err)}
	}

	d.logger.Debug("driver statement executed",
		zap.String("statement", logging.TruncateStatement(statement)),
		zap.Int("rows", len(result.Rows)))
	return result, nil
}

func (d *Driver) runInTx(ctx context.Context, tx *sql.Tx, statement string) (*Result, error) {
	if IsReadOnly(statement) {
		return d.queryRows(ctx, tx, statement)
	}

	res, err := tx.ExecContext(ctx, statement)
	if err != nil {
		return nil, &apperrors.ExecutionError{Message: logging.SanitizeError(err)}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		affected = 0
	}
	result := &Result{RowsAffected: &affected}
	if id, err := res.LastInsertId(); err == nil && id != 0 {
		result.LastInsertID = fmt.Sprintf("%d", id)
	}
	return result, nil
}

func (d *Driver) queryRows(ctx context.Context, tx *sql.Tx, statement string) (*Result, error) {
	rows, err := tx.QueryContext(ctx, statement)
	if err != nil {
		return nil, &apperrors.ExecutionError{Message: logging.SanitizeError(err)}
	}
	defer rows.Close()

	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, &apperrors.ExecutionError{Message: logging.SanitizeError(err)}
	}

	result := &Result{Columns: make([]Column, len(colTypes))}
	for i, ct := range colTypes {
		result.Columns[i] = Column{Name: ct.Name(), Type: ct.DatabaseTypeName()}
	}

	for rows.Next() {
		values := make([]sql.NullString, len(colTypes))
		dest := make([]any, len(colTypes))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &apperrors.ExecutionError{Message: logging.SanitizeError(err)}
		}

		row := make([]string, len(values))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperrors.ExecutionError{Message: logging.SanitizeError(err)}
	}
	return result, nil
}

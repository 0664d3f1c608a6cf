package credentials

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/tidbcloud/zero-mcp/pkg/apperrors"
	"github.com/tidbcloud/zero-mcp/pkg/config"
)

// provisionClient is implemented by Provisioner; narrowed for tests.
type provisionClient interface {
	Provision(ctx context.Context) (Descriptor, error)
}

// Resolver determines how to reach a TiDB instance. Resolution order,
// first success wins:
//
//  1. Explicit environment configuration, used verbatim.
//  2. A persisted instance record, if configured and not expired.
//  3. Auto-provisioning a new TiDB Cloud Zero instance.
//
// The resolved descriptor is cached for the process lifetime behind a
// single-flight mutex, so concurrent first-time resolution cannot
// trigger redundant provisioning calls.
type Resolver struct {
	env         config.TiDBConfig
	store       *Store
	provisioner provisionClient
	logger      *zap.Logger

	mu     sync.Mutex
	cached *Descriptor
}

// NewResolver wires a resolver from its parts. store and provisioner
// may be nil, which disables that resolution step.
func NewResolver(env config.TiDBConfig, store *Store, provisioner provisionClient, logger *zap.Logger) *Resolver {
	return &Resolver{
		env:         env,
		store:       store,
		provisioner: provisioner,
		logger:      logger,
	}
}

// Resolve returns the cached descriptor when it is still configured
// and unexpired, otherwise runs the resolution chain. Idempotent
// within a process once a valid descriptor is cached.
func (r *Resolver) Resolve(ctx context.Context) (Descriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil && r.cached.IsConfigured() && !r.cached.IsExpired() {
		return *r.cached, nil
	}

	d, err := r.resolve(ctx)
	if err != nil {
		return Descriptor{}, err
	}
	r.cached = &d
	return d, nil
}

func (r *Resolver) resolve(ctx context.Context) (Descriptor, error) {
	// 1. Explicit environment configuration
	if d := FromEnv(r.env); d.IsConfigured() {
		r.logger.Info("using TiDB credentials from environment",
			zap.String("host", d.Host),
			zap.String("database", d.DatabaseOrDefault()))
		return d, nil
	}

	// 2. Persisted instance record
	if r.store != nil {
		saved, err := r.store.Load()
		if err != nil {
			r.logger.Warn("failed to read persisted instance record", zap.Error(err))
		}
		if saved != nil {
			r.logger.Info("reusing persisted TiDB Cloud Zero instance",
				zap.String("host", saved.Host),
				zap.String("expires_at", saved.ExpiresAt))
			return *saved, nil
		}
	}

	// 3. Auto-provision a new instance
	if r.provisioner == nil {
		return Descriptor{}, &apperrors.ConfigurationError{
			Reason: "no TiDB credentials configured and provisioning is disabled",
		}
	}

	r.logger.Info("provisioning a new TiDB Cloud Zero instance")
	d, err := r.provisioner.Provision(ctx)
	if err != nil {
		return Descriptor{}, err
	}

	r.logger.Info("provisioned TiDB Cloud Zero instance",
		zap.String("host", d.Host),
		zap.String("expires_at", d.ExpiresAt))

	// Best-effort persistence: a failed write only costs a
	// re-provision after restart.
	if r.store != nil {
		if err := r.store.Save(d); err != nil {
			r.logger.Warn("failed to persist instance record", zap.Error(err))
		}
	}
	return d, nil
}

package goRBAC

import (
	"context"
	"time"

	"github.com/MrEthical07/goRBAC/role"
	"github.com/google/uuid"
)

// Engine owns the principal→bitmap mapping and exposes the grant, revoke,
// query, and enforcement operations over it. Build one through [Builder];
// after Build the engine is immutable and safe for concurrent use.
//
// Bitmaps of distinct principals are fully independent: no operation on one
// principal reads or writes another principal's entry.
type Engine struct {
	config   Config
	store    RoleStore
	registry *role.Registry
	audit    *auditDispatcher
	metrics  *Metrics
}

// Close drains and stops the audit dispatcher. The engine must not be used
// after Close.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped returns the number of audit events dropped under backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of the engine counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// Registry returns the symbolic-name registry, or nil when the engine was
// built without role names.
func (e *Engine) Registry() *role.Registry {
	if e == nil {
		return nil
	}
	return e.registry
}

// Roles resolves registered role names into a composite bitmap, for use as
// the required-roles argument of checks and enforcement calls.
func (e *Engine) Roles(names ...string) (role.Role, error) {
	if e == nil {
		return role.Role{}, ErrEngineNotReady
	}
	if e.registry == nil {
		return role.Role{}, ErrRegistryNotConfigured
	}
	r, err := e.registry.Resolve(names...)
	if err != nil {
		return role.Role{}, ErrRoleNameUnknown
	}
	return r, nil
}

// GetRoles returns the principal's stored bitmap. A principal that was never
// granted anything reads as the zero Role.
func (e *Engine) GetRoles(ctx context.Context, principal string) (role.Role, error) {
	if e == nil || e.store == nil {
		return role.Role{}, ErrEngineNotReady
	}

	stored, err := e.store.Load(ctx, principal)
	if err != nil {
		e.metricInc(MetricStoreError)
		return role.Role{}, err
	}
	return stored, nil
}

// HasAny reports whether the principal holds at least one of the bits set in
// required. Read-only.
func (e *Engine) HasAny(ctx context.Context, principal string, required role.Role) (bool, error) {
	stored, err := e.GetRoles(ctx, principal)
	if err != nil {
		return false, err
	}
	return stored.HasAny(required), nil
}

// HasAll reports whether the principal holds every bit set in required.
// Vacuously true when required is the zero Role. Read-only.
func (e *Engine) HasAll(ctx context.Context, principal string, required role.Role) (bool, error) {
	stored, err := e.GetRoles(ctx, principal)
	if err != nil {
		return false, err
	}
	return stored.HasAll(required), nil
}

// Grant sets every bit of r on the principal's stored bitmap. Granting an
// already-held role leaves the bitmap unchanged but still emits a
// RoleGranted event; notifications are call-counted, not change-triggered.
func (e *Engine) Grant(ctx context.Context, principal string, r role.Role) error {
	if e == nil || e.store == nil {
		return ErrEngineNotReady
	}

	_, err := e.store.Update(ctx, principal, func(stored role.Role) role.Role {
		return stored.Union(r)
	})
	if err != nil {
		e.metricInc(MetricStoreError)
		return err
	}

	e.metricInc(MetricGrant)
	e.emitAudit(ctx, EventRoleGranted, principal, r)
	return nil
}

// Revoke clears every bit of r on the principal's stored bitmap. Revoking a
// role the principal never held still emits a RoleRevoked event. Revoking
// all bits returns the principal to the never-assigned state.
func (e *Engine) Revoke(ctx context.Context, principal string, r role.Role) error {
	if e == nil || e.store == nil {
		return ErrEngineNotReady
	}

	_, err := e.store.Update(ctx, principal, func(stored role.Role) role.Role {
		return stored.Difference(r)
	})
	if err != nil {
		e.metricInc(MetricStoreError)
		return err
	}

	e.metricInc(MetricRevoke)
	e.emitAudit(ctx, EventRoleRevoked, principal, r)
	return nil
}

// SetMembership grants r when shouldHold is true and revokes it otherwise.
func (e *Engine) SetMembership(ctx context.Context, principal string, r role.Role, shouldHold bool) error {
	if shouldHold {
		return e.Grant(ctx, principal, r)
	}
	return e.Revoke(ctx, principal, r)
}

// GrantBatch grants r to each principal in order. The first failure aborts
// the remainder; principals already processed keep their grants, and one
// audit event is emitted per processed principal. The batch has no atomicity
// of its own.
func (e *Engine) GrantBatch(ctx context.Context, principals []string, r role.Role) error {
	for _, principal := range principals {
		if err := e.Grant(ctx, principal, r); err != nil {
			return err
		}
		e.metricInc(MetricBatchGrant)
	}
	return nil
}

// RevokeBatch revokes r from each principal in order, with the same
// first-error-aborts contract as GrantBatch.
func (e *Engine) RevokeBatch(ctx context.Context, principals []string, r role.Role) error {
	for _, principal := range principals {
		if err := e.Revoke(ctx, principal, r); err != nil {
			return err
		}
		e.metricInc(MetricBatchRevoke)
	}
	return nil
}

// RequireAny returns ErrAuthorizationDenied unless the principal holds at
// least one of the bits set in required. A store failure is returned as-is:
// the check fails closed, never open. No side effect on success.
func (e *Engine) RequireAny(ctx context.Context, principal string, required role.Role) error {
	return e.require(ctx, principal, required, role.Role.HasAny)
}

// RequireAll returns ErrAuthorizationDenied unless the principal holds every
// bit set in required. Zero required roles always pass. Fails closed on
// store errors.
func (e *Engine) RequireAll(ctx context.Context, principal string, required role.Role) error {
	return e.require(ctx, principal, required, role.Role.HasAll)
}

func (e *Engine) require(ctx context.Context, principal string, required role.Role, check func(role.Role, role.Role) bool) error {
	start := time.Now()

	stored, err := e.GetRoles(ctx, principal)
	if err != nil {
		return err
	}

	ok := check(stored, required)
	if e != nil && e.metrics != nil {
		e.metrics.Observe(MetricCheckLatency, time.Since(start))
	}
	if !ok {
		e.metricInc(MetricCheckDenied)
		return ErrAuthorizationDenied
	}

	e.metricInc(MetricCheckAllowed)
	return nil
}

func (e *Engine) emitAudit(ctx context.Context, eventType, principal string, r role.Role) {
	if e.audit == nil {
		return
	}

	e.audit.Emit(ctx, AuditEvent{
		Timestamp: time.Now(),
		EventType: eventType,
		EventID:   uuid.NewString(),
		Principal: principal,
		Role:      r.Hex(),
		IP:        clientIPFromContext(ctx),
	})
}

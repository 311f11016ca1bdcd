package goRBAC

import (
	"context"
	"errors"
	"testing"

	"github.com/MrEthical07/goRBAC/role"
)

// failAfterStore wraps a RoleStore and fails every Update past the first n.
type failAfterStore struct {
	inner   RoleStore
	allowed int
	calls   int
	err     error
}

func (s *failAfterStore) Load(ctx context.Context, principal string) (role.Role, error) {
	return s.inner.Load(ctx, principal)
}

func (s *failAfterStore) Update(ctx context.Context, principal string, apply func(role.Role) role.Role) (role.Role, error) {
	s.calls++
	if s.calls > s.allowed {
		return role.Role{}, s.err
	}
	return s.inner.Update(ctx, principal, apply)
}

func TestGrantBatchAppliesToEveryPrincipal(t *testing.T) {
	engine, sink := newTestEngine(t)
	ctx := context.Background()

	principals := []string{"p1", "p2", "p3"}
	r := role.Encode(4)

	if err := engine.GrantBatch(ctx, principals, r); err != nil {
		t.Fatalf("GrantBatch: %v", err)
	}

	for _, principal := range principals {
		if stored := mustGetRoles(t, engine, principal); stored != r {
			t.Fatalf("%s bitmap = %s, want %s", principal, stored, r)
		}
	}

	// One event per principal.
	seen := map[string]bool{}
	for range principals {
		event := waitEvent(t, sink)
		if event.EventType != EventRoleGranted {
			t.Fatalf("event type = %s, want %s", event.EventType, EventRoleGranted)
		}
		seen[event.Principal] = true
	}
	if len(seen) != len(principals) {
		t.Fatalf("events covered %d principals, want %d", len(seen), len(principals))
	}

	if got := engine.MetricsSnapshot().Counters[MetricBatchGrant]; got != 3 {
		t.Fatalf("batch grant metric = %d, want 3", got)
	}
}

func TestRevokeBatchClearsEveryPrincipal(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	principals := []string{"p1", "p2"}
	r := role.Combine(role.Encode(1), role.Encode(2))

	if err := engine.GrantBatch(ctx, principals, r); err != nil {
		t.Fatalf("GrantBatch: %v", err)
	}
	if err := engine.RevokeBatch(ctx, principals, role.Encode(1)); err != nil {
		t.Fatalf("RevokeBatch: %v", err)
	}

	for _, principal := range principals {
		if stored := mustGetRoles(t, engine, principal); stored != role.Encode(2) {
			t.Fatalf("%s bitmap = %s, want %s", principal, stored, role.Encode(2))
		}
	}
}

func TestGrantBatchStopsAtFirstError(t *testing.T) {
	storeErr := errors.New("backend gone")
	store := &failAfterStore{
		inner:   NewMemoryRoleStore(),
		allowed: 2,
		err:     storeErr,
	}

	engine, err := New().WithStore(store).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	ctx := context.Background()
	principals := []string{"p1", "p2", "p3", "p4"}

	err = engine.GrantBatch(ctx, principals, role.Encode(0))
	if !errors.Is(err, storeErr) {
		t.Fatalf("GrantBatch = %v, want wrapped %v", err, storeErr)
	}

	// The first two principals keep their grants, the rest were never touched.
	if stored := mustGetRoles(t, engine, "p1"); stored != role.Encode(0) {
		t.Fatalf("p1 bitmap = %s, want %s", stored, role.Encode(0))
	}
	if stored := mustGetRoles(t, engine, "p2"); stored != role.Encode(0) {
		t.Fatalf("p2 bitmap = %s, want %s", stored, role.Encode(0))
	}
	if stored := mustGetRoles(t, engine, "p3"); !stored.IsZero() {
		t.Fatalf("p3 bitmap = %s, want zero", stored)
	}
	if store.calls != 3 {
		t.Fatalf("store updates = %d, want 3 (third call fails, fourth never made)", store.calls)
	}

	snapshot := engine.MetricsSnapshot()
	if got := snapshot.Counters[MetricBatchGrant]; got != 2 {
		t.Fatalf("batch grant metric = %d, want 2", got)
	}
	if got := snapshot.Counters[MetricStoreError]; got != 1 {
		t.Fatalf("store error metric = %d, want 1", got)
	}
}

func TestBatchEmptyPrincipalsNoOp(t *testing.T) {
	engine, sink := newTestEngine(t)
	ctx := context.Background()

	if err := engine.GrantBatch(ctx, nil, role.Encode(0)); err != nil {
		t.Fatalf("GrantBatch(nil): %v", err)
	}
	if err := engine.RevokeBatch(ctx, []string{}, role.Encode(0)); err != nil {
		t.Fatalf("RevokeBatch(empty): %v", err)
	}

	expectNoEvent(t, sink)
}

package goRBAC

import (
	"context"
	"sync"
	"testing"

	"github.com/MrEthical07/goRBAC/role"
)

func TestMemoryStoreLoadMissingIsZero(t *testing.T) {
	store := NewMemoryRoleStore()

	stored, err := store.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !stored.IsZero() {
		t.Fatalf("Load(missing) = %s, want zero", stored)
	}
}

func TestMemoryStoreUpdateAndDeleteOnZero(t *testing.T) {
	store := NewMemoryRoleStore()
	ctx := context.Background()

	r := role.Encode(7)
	updated, err := store.Update(ctx, "p1", func(stored role.Role) role.Role {
		return stored.Union(r)
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated != r {
		t.Fatalf("Update returned %s, want %s", updated, r)
	}
	if store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", store.Len())
	}

	if _, err := store.Update(ctx, "p1", func(stored role.Role) role.Role {
		return stored.Difference(r)
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Zero bitmaps are not stored.
	if store.Len() != 0 {
		t.Fatalf("Len = %d after full revoke, want 0", store.Len())
	}
}

func TestMemoryStoreConcurrentUpdatesLoseNoBits(t *testing.T) {
	store := NewMemoryRoleStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for id := 0; id < 256; id++ {
		wg.Add(1)
		go func(id uint8) {
			defer wg.Done()
			_, _ = store.Update(ctx, "p1", func(stored role.Role) role.Role {
				return stored.Union(role.Encode(id))
			})
		}(uint8(id))
	}
	wg.Wait()

	stored, err := store.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stored.Count() != 256 {
		t.Fatalf("Count = %d after 256 concurrent grants, want 256", stored.Count())
	}
}

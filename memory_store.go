package goRBAC

import (
	"context"
	"sync"

	"github.com/MrEthical07/goRBAC/role"
)

// MemoryRoleStore is an in-process [RoleStore] backed by a map. Each instance
// owns an isolated principal→bitmap mapping, which makes it the natural
// choice for tests and single-process embedding.
type MemoryRoleStore struct {
	mu    sync.RWMutex
	roles map[string]role.Role
}

func NewMemoryRoleStore() *MemoryRoleStore {
	return &MemoryRoleStore{
		roles: make(map[string]role.Role),
	}
}

func (s *MemoryRoleStore) Load(_ context.Context, principal string) (role.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roles[principal], nil
}

func (s *MemoryRoleStore) Update(_ context.Context, principal string, apply func(role.Role) role.Role) (role.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := apply(s.roles[principal])
	if updated.IsZero() {
		delete(s.roles, principal)
	} else {
		s.roles[principal] = updated
	}
	return updated, nil
}

// Len returns the number of principals with a non-zero bitmap.
func (s *MemoryRoleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.roles)
}

package role

import (
	"errors"
	"sync"
)

// Registry maps symbolic role names to bit identifiers. It replaces a block
// of 256 hand-written constants: callers register the names they actually
// use and resolve composites from them.
//
// Register assigns identifiers sequentially from 0. A Registry is intended
// to be populated during initialization, frozen, and then shared read-only.
type Registry struct {
	mu       sync.RWMutex
	nameToID map[string]uint8
	idToName map[uint8]string
	frozen   bool
}

// NewRegistry creates an empty role name registry.
func NewRegistry() *Registry {
	return &Registry{
		nameToID: make(map[string]uint8),
		idToName: make(map[uint8]string),
	}
}

// Register assigns the next available identifier to the named role and
// returns it. Must be called before [Registry.Freeze].
func (r *Registry) Register(name string) (uint8, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return 0, errors.New("registry frozen")
	}

	if name == "" {
		return 0, errors.New("role name cannot be empty")
	}

	if _, exists := r.nameToID[name]; exists {
		return 0, errors.New("role already registered: " + name)
	}

	next := len(r.nameToID)
	if next > 255 {
		return 0, errors.New("role limit exceeded")
	}

	id := uint8(next)
	r.nameToID[name] = id
	r.idToName[id] = name

	return id, nil
}

// ID returns the identifier for the named role, or false if not registered.
func (r *Registry) ID(name string) (uint8, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.nameToID[name]
	return id, ok
}

// Name returns the role name for the given identifier, or false if unassigned.
func (r *Registry) Name(id uint8) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.idToName[id]
	return name, ok
}

// Resolve returns the composite Role for the named roles. Unknown names fail
// the whole resolution.
func (r *Registry) Resolve(names ...string) (Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out Role
	for _, name := range names {
		id, ok := r.nameToID[name]
		if !ok {
			return Role{}, errors.New("role not registered: " + name)
		}
		out = out.Union(Encode(id))
	}
	return out, nil
}

// Freeze prevents further registrations.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Count returns the number of registered role names.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nameToID)
}

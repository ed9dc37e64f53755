package cache

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// RoleLoader resolves a role name to its id, usually from the roles table.
type RoleLoader func(ctx context.Context, name string) (uuid.UUID, error)

// RoleCache memoizes role ids by name. Roles are seeded once and never
// change at runtime, so entries do not expire.
type RoleCache struct {
	mu    sync.RWMutex
	store map[string]uuid.UUID
	load  RoleLoader
}

func NewRoleCache(load RoleLoader) *RoleCache {
	return &RoleCache{
		store: make(map[string]uuid.UUID),
		load:  load,
	}
}

func (c *RoleCache) Get(name string) (uuid.UUID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.store[name]
	return id, ok
}

func (c *RoleCache) Set(name string, id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[name] = id
}

// RoleID returns the cached id or loads and caches it. Failed loads are not
// cached.
func (c *RoleCache) RoleID(ctx context.Context, name string) (uuid.UUID, error) {
	if id, ok := c.Get(name); ok {
		return id, nil
	}
	id, err := c.load(ctx, name)
	if err != nil {
		return uuid.Nil, err
	}
	c.Set(name, id)
	return id, nil
}

package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/daniilsolovey/content-admin/internal/content"
)

type entry struct {
	data    []byte
	expires time.Time
}

// Memory is an in-process content.Cache. Listings and items of a type
// each have a generation; invalidating one advances it and drops the
// affected entries.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	gens    map[string]int64
	entries map[string]entry
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		gens:    make(map[string]int64),
		entries: make(map[string]entry),
	}
}

func (m *Memory) Lookup(_ context.Context, t content.Type, key string) ([]byte, int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	scope := scopeOf(t, key)
	gen := m.gens[scope]

	k := scope + "|" + key
	e, ok := m.entries[k]
	if !ok {
		return nil, gen, false, nil
	}
	if m.ttl > 0 && m.now().After(e.expires) {
		delete(m.entries, k)
		return nil, gen, false, nil
	}

	return e.data, gen, true, nil
}

// Store keeps data only while the scope of key is still at gen.
func (m *Memory) Store(_ context.Context, t content.Type, key string, gen int64, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	scope := scopeOf(t, key)
	if m.gens[scope] != gen {
		return nil
	}

	m.entries[scope+"|"+key] = entry{data: data, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *Memory) InvalidateList(_ context.Context, t content.Type) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	scope := listScope(t)
	m.gens[scope]++

	for k := range m.entries {
		if strings.HasPrefix(k, scope+"|") {
			delete(m.entries, k)
		}
	}

	return nil
}

func (m *Memory) InvalidateItem(_ context.Context, t content.Type, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	scope := itemScope(t)
	m.gens[scope]++
	delete(m.entries, scope+"|"+content.ItemKey(id))

	return nil
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func scopeOf(t content.Type, key string) string {
	if content.IsItemKey(key) {
		return itemScope(t)
	}
	return listScope(t)
}

func listScope(t content.Type) string { return string(t) + "|list" }

func itemScope(t content.Type) string { return string(t) + "|items" }

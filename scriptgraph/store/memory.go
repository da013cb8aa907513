package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// scriptRecord is one saved script plus the bookkeeping every backend keeps
// alongside it.
type scriptRecord struct {
	data     []byte
	hash     string
	revision string
	savedAt  time.Time
}

// MemoryStore is an in-process Store backed by a map, for tests and hosts
// that don't need saved scripts to survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	scripts map[string]scriptRecord
	loads   singleflight.Group
}

// NewMemoryStore returns an empty, ready-to-use MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scripts: make(map[string]scriptRecord)}
}

func (m *MemoryStore) SaveScript(_ context.Context, name string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripts[name] = scriptRecord{
		data:     buf,
		hash:     contentHash(buf),
		revision: uuid.New().String(),
		savedAt:  time.Now().UTC(),
	}
	return nil
}

// LoadScript dedupes concurrent loads of the same name through a
// singleflight.Group: if two goroutines ask for the same script at once,
// only one actually touches the map.
func (m *MemoryStore) LoadScript(_ context.Context, name string) ([]byte, error) {
	v, err, _ := m.loads.Do(name, func() (interface{}, error) {
		m.mu.RLock()
		defer m.mu.RUnlock()
		rec, ok := m.scripts[name]
		if !ok {
			return nil, ErrNotFound
		}
		out := make([]byte, len(rec.data))
		copy(out, rec.data)
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (m *MemoryStore) ListScripts(context.Context) ([]ScriptInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]ScriptInfo, 0, len(m.scripts))
	for name, rec := range m.scripts {
		infos = append(infos, ScriptInfo{Name: name, Hash: rec.hash, Revision: rec.revision, SavedAt: rec.savedAt})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (m *MemoryStore) DeleteScript(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.scripts[name]; !ok {
		return ErrNotFound
	}
	delete(m.scripts, name)
	return nil
}

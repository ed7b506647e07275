// Package recent tracks the recently-viewed products: a capped sequence,
// most recent last in storage, deduplicated by moving a re-viewed id to the
// end. Display order is the reverse of storage order.
package recent

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"ushop/internal/catalog"
	"ushop/internal/storage"
)

const StorageKey = "recent"

// DefaultLimit is the canonical cap. The legacy pages disagreed (4 on the
// detail page, 5 everywhere else); 5 is the one constant kept.
const DefaultLimit = 5

type Engine struct {
	mu    sync.Mutex
	store storage.Store
	ids   []catalog.ID
	limit int
}

// Load reads the persisted sequence, trimming it if a smaller limit is now
// configured. Corrupt data starts it empty.
func Load(store storage.Store, limit int) *Engine {
	if limit < 1 {
		limit = DefaultLimit
	}
	e := &Engine{store: store, limit: limit}

	raw, ok := store.Get(StorageKey)
	if !ok {
		return e
	}
	if err := json.Unmarshal([]byte(raw), &e.ids); err != nil {
		slog.Warn("discarding corrupt recently-viewed list", "error", err)
		e.ids = nil
		return e
	}
	if len(e.ids) > e.limit {
		e.ids = e.ids[len(e.ids)-e.limit:]
	}
	return e
}

// Record marks the product as just viewed: drop any stale position, append,
// trim from the front while over the cap, persist.
func (e *Engine) Record(id catalog.ID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ids := make([]catalog.ID, 0, len(e.ids)+1)
	for _, existing := range e.ids {
		if existing != id {
			ids = append(ids, existing)
		}
	}
	ids = append(ids, id)
	for len(ids) > e.limit {
		ids = ids[1:]
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal recently viewed: %w", err)
	}
	if err := e.store.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("persist recently viewed: %w", err)
	}

	e.ids = ids
	return nil
}

// IDs returns the sequence in storage order, oldest first.
func (e *Engine) IDs() []catalog.ID {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]catalog.ID, len(e.ids))
	copy(ids, e.ids)
	return ids
}

// Display returns the sequence most recent first.
func (e *Engine) Display() []catalog.ID {
	ids := e.IDs()
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.ids)
}

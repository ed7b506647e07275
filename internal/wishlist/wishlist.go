// Package wishlist keeps the toggled-membership wishlist. Insertion order is
// preserved for display only; membership is what matters.
package wishlist

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"ushop/internal/catalog"
	"ushop/internal/storage"
)

const StorageKey = "wishlist"

type Engine struct {
	mu       sync.Mutex
	store    storage.Store
	ids      []catalog.ID
	onChange func()
}

// Load reads the persisted wishlist; corrupt data starts it empty.
func Load(store storage.Store) *Engine {
	e := &Engine{store: store}

	raw, ok := store.Get(StorageKey)
	if !ok {
		return e
	}
	if err := json.Unmarshal([]byte(raw), &e.ids); err != nil {
		slog.Warn("discarding corrupt persisted wishlist", "error", err)
		e.ids = nil
	}
	return e
}

func (e *Engine) OnChange(fn func()) {
	e.onChange = fn
}

func (e *Engine) IDs() []catalog.ID {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]catalog.ID, len(e.ids))
	copy(ids, e.ids)
	return ids
}

func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.ids)
}

func (e *Engine) Contains(id catalog.ID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return indexOf(e.ids, id) != -1
}

// Toggle removes the id when present and appends it when absent, reporting
// whether the id is now a member. Two toggles restore the original set.
func (e *Engine) Toggle(id catalog.ID) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ids := make([]catalog.ID, len(e.ids))
	copy(ids, e.ids)

	member := false
	if i := indexOf(ids, id); i != -1 {
		ids = append(ids[:i], ids[i+1:]...)
	} else {
		ids = append(ids, id)
		member = true
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return false, fmt.Errorf("marshal wishlist: %w", err)
	}
	if err := e.store.Set(StorageKey, string(data)); err != nil {
		return false, fmt.Errorf("persist wishlist: %w", err)
	}

	e.ids = ids
	if e.onChange != nil {
		e.onChange()
	}
	return member, nil
}

func indexOf(ids []catalog.ID, id catalog.ID) int {
	for i, existing := range ids {
		if existing == id {
			return i
		}
	}
	return -1
}

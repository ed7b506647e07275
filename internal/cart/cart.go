// Package cart mutates the persisted cart collection and prices it. Every
// mutation is write-through: the full collection is saved before the
// in-memory lines are swapped and any change listener runs.
package cart

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"ushop/internal/catalog"
	"ushop/internal/storage"
)

const StorageKey = "cart"

const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Line is one product's entry in the cart. Title, price, image and stock are
// snapshots taken at add time; a later catalog change does not reprice a line.
type Line struct {
	ID       catalog.ID `json:"id"`
	Title    string     `json:"title"`
	Price    float64    `json:"price"`
	Image    string     `json:"image"`
	Stock    string     `json:"stock"`
	Quantity int        `json:"quantity"`
}

// LineTotal is the line's stored unit price times its quantity.
func (l Line) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

type Engine struct {
	mu       sync.Mutex
	store    storage.Store
	lines    []Line
	onChange func()
}

// Load reads the persisted cart. A missing or corrupt value starts an empty
// cart instead of failing the page.
func Load(store storage.Store) *Engine {
	e := &Engine{store: store}

	raw, ok := store.Get(StorageKey)
	if !ok {
		return e
	}
	if err := json.Unmarshal([]byte(raw), &e.lines); err != nil {
		slog.Warn("discarding corrupt persisted cart", "error", err)
		e.lines = nil
	}
	return e
}

// OnChange registers the listener invoked synchronously after every
// successful mutation (header badge and cart view re-render).
func (e *Engine) OnChange(fn func()) {
	e.onChange = fn
}

func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	lines := make([]Line, len(e.lines))
	copy(lines, e.lines)
	return lines
}

// Count is the number of distinct lines, which is what the header badge shows.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines)
}

func (e *Engine) Contains(id catalog.ID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indexOf(id) != -1
}

// Add puts one unit of the product in the cart, incrementing an existing
// line. Unknown product ids are a silent no-op.
func (e *Engine) Add(cat *catalog.Store, id catalog.ID) error {
	product, err := cat.FindByID(id)
	if err != nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	lines := e.copyLines()
	if i := indexOf(lines, id); i != -1 {
		lines[i].Quantity = clampQuantity(lines[i].Quantity + 1)
	} else {
		lines = append(lines, Line{
			ID:       product.ID,
			Title:    product.Title,
			Price:    product.Price,
			Image:    product.Thumbnail,
			Stock:    product.AvailabilityStatus,
			Quantity: 1,
		})
	}

	return e.commit(lines)
}

// Remove drops the line with the given id; absent ids are a no-op.
func (e *Engine) Remove(id catalog.ID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexOf(id)
	if i == -1 {
		return nil
	}

	lines := e.copyLines()
	lines = append(lines[:i], lines[i+1:]...)
	return e.commit(lines)
}

// UpdateQuantity sets a line's quantity, clamped into [1,10]. Removal only
// happens through Remove; decrementing stops at 1.
func (e *Engine) UpdateQuantity(id catalog.ID, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexOf(id)
	if i == -1 {
		return nil
	}

	lines := e.copyLines()
	lines[i].Quantity = clampQuantity(quantity)
	return e.commit(lines)
}

func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ComputeSummary(e.lines)
}

// commit persists the new collection and only then swaps it in and notifies.
// Callers hold e.mu.
func (e *Engine) commit(lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := e.store.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}

	e.lines = lines
	if e.onChange != nil {
		e.onChange()
	}
	return nil
}

func (e *Engine) copyLines() []Line {
	lines := make([]Line, len(e.lines))
	copy(lines, e.lines)
	return lines
}

func (e *Engine) indexOf(id catalog.ID) int {
	return indexOf(e.lines, id)
}

func indexOf(lines []Line, id catalog.ID) int {
	for i, line := range lines {
		if line.ID == id {
			return i
		}
	}
	return -1
}

func clampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

package ledger

import (
	"fmt"
	"sync"
	"time"
)

// Key identifies one stock entry: a (location, SKU) pair.
type Key struct {
	Location string
	SKU      string
}

// Move is a signed quantity change against one stock entry.
type Move struct {
	Location string
	SKU      string
	Delta    int
}

// Entry is one (location, SKU) quantity as of a fully-applied event.
type Entry struct {
	Location string
	SKU      string
	Quantity int
}

// InsufficientStockError is returned when a mutation would drive a
// quantity below zero. It names the offending entry so callers can
// render an actionable message.
type InsufficientStockError struct {
	Location  string
	SKU       string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s at %s: requested %d, available %d",
		e.SKU, e.Location, e.Requested, e.Available)
}

// Ledger is the authoritative in-memory mapping of (location, SKU) to
// quantity. All mutations are serialized under one write lock, so a
// multi-entry event either applies every move or none and readers only
// ever see fully-applied events.
type Ledger struct {
	mu          sync.RWMutex
	entries     map[Key]int
	lastChanged map[string]time.Time
}

func New() *Ledger {
	return &Ledger{
		entries:     make(map[Key]int),
		lastChanged: make(map[string]time.Time),
	}
}

// Load hydrates the ledger, replacing any existing state. Called once at
// boot with the persisted stock entries.
func (l *Ledger) Load(entries map[Key]int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = make(map[Key]int, len(entries))
	for k, qty := range entries {
		if qty < 0 {
			qty = 0
		}
		l.entries[k] = qty
	}
}

// Quantity returns the current quantity for a (location, SKU) pair.
// Unknown pairs are 0, never an error.
func (l *Ledger) Quantity(location, sku string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries[Key{Location: location, SKU: sku}]
}

// Snapshot returns a consistent-at-an-instant copy of one location's
// stock, keyed by SKU.
func (l *Ledger) Snapshot(location string) map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snap := make(map[string]int)
	for k, qty := range l.entries {
		if k.Location == location {
			snap[k.SKU] = qty
		}
	}
	return snap
}

// TotalAt returns the summed quantity across all SKUs at a location.
func (l *Ledger) TotalAt(location string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := 0
	for k, qty := range l.entries {
		if k.Location == location {
			total += qty
		}
	}
	return total
}

// LastChanged reports when a location's stock last mutated.
func (l *Ledger) LastChanged(location string) (time.Time, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.lastChanged[location]
	return t, ok
}

// ApplyDelta applies one signed delta and returns the new quantity.
func (l *Ledger) ApplyDelta(location, sku string, delta int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := Key{Location: location, SKU: sku}
	next := l.entries[k] + delta
	if next < 0 {
		return 0, &InsufficientStockError{
			Location:  location,
			SKU:       sku,
			Requested: -delta,
			Available: l.entries[k],
		}
	}
	l.entries[k] = next
	l.lastChanged[location] = time.Now()
	return next, nil
}

// Apply applies a multi-entry event atomically: every resulting quantity
// is validated under the write lock before anything changes, so a
// rejected event leaves all entries untouched. Moves against the same
// entry accumulate. On success it returns the post-event quantity of
// every touched entry, deduplicated, computed under the same lock.
func (l *Ledger) Apply(moves []Move) ([]Entry, error) {
	if len(moves) == 0 {
		return nil, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Validate the combined result first.
	pending := make(map[Key]int, len(moves))
	order := make([]Key, 0, len(moves))
	for _, m := range moves {
		k := Key{Location: m.Location, SKU: m.SKU}
		base, staged := pending[k]
		if !staged {
			base = l.entries[k]
			order = append(order, k)
		}
		next := base + m.Delta
		if next < 0 {
			return nil, &InsufficientStockError{
				Location:  m.Location,
				SKU:       m.SKU,
				Requested: -m.Delta,
				Available: base,
			}
		}
		pending[k] = next
	}

	now := time.Now()
	applied := make([]Entry, 0, len(order))
	for _, k := range order {
		l.entries[k] = pending[k]
		l.lastChanged[k.Location] = now
		applied = append(applied, Entry{Location: k.Location, SKU: k.SKU, Quantity: pending[k]})
	}
	return applied, nil
}

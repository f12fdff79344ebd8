// Package budget contains budget-related use cases, including the
// create-or-update reconciliation for the (user, category, month, year) key.
package budget

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// KeyedMutex serializes the lookup/persist sequence per budget key so that
// concurrent reconciliations of the same key cannot race each other. The
// store's unique index remains the backstop across processes.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*keyedMutexEntry
}

type keyedMutexEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates a new KeyedMutex instance.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*keyedMutexEntry),
	}
}

// Lock acquires the mutex for key and returns the matching unlock function.
// Entries are reference counted and removed once the last holder unlocks, so
// the map does not grow with the number of distinct keys seen.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	entry, ok := k.entries[key]
	if !ok {
		entry = &keyedMutexEntry{}
		k.entries[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}

// budgetKey builds the lock key for a (user, category, month, year) tuple.
func budgetKey(userID, categoryID uuid.UUID, month, year int) string {
	return fmt.Sprintf("%s:%s:%d:%d", userID, categoryID, month, year)
}

package engine

import (
	"sort"
	"sync"
)

// keyedMutex provides a mutex per document id, created on first use and
// dropped once no goroutine holds or waits on it.
type keyedMutex struct {
	mu      sync.Mutex
	entries map[string]*mutexEntry
}

type mutexEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{entries: make(map[string]*mutexEntry)}
}

// lock acquires the mutex of every given document id and returns the
// matching unlock function. Ids are deduplicated and acquired in sorted
// order, so two operations touching overlapping document sets always
// contend on the shared ids and can never deadlock against each other.
func (k *keyedMutex) lock(ids ...string) func() {
	keys := sortedUnique(ids)

	entries := make([]*mutexEntry, 0, len(keys))
	for _, key := range keys {
		k.mu.Lock()
		entry, ok := k.entries[key]
		if !ok {
			entry = &mutexEntry{}
			k.entries[key] = entry
		}
		entry.refs++
		k.mu.Unlock()

		entry.mu.Lock()
		entries = append(entries, entry)
	}

	return func() {
		for i := len(keys) - 1; i >= 0; i-- {
			entries[i].mu.Unlock()
			k.mu.Lock()
			entries[i].refs--
			if entries[i].refs == 0 {
				delete(k.entries, keys[i])
			}
			k.mu.Unlock()
		}
	}
}

func sortedUnique(ids []string) []string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	res := sorted[:0]
	var prev string
	for i, id := range sorted {
		if i == 0 || id != prev {
			res = append(res, id)
		}
		prev = id
	}
	return res
}

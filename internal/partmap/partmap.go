// Package partmap provides a partitioned map.
package partmap

import (
	"hash/maphash"

	"github.com/go-ricrob/keypadsolver/internal/spinlock"
)

// Hasher is the key constraint of Map.
type Hasher interface {
	comparable
	Hash(seed maphash.Seed) uint64
}

type part[K Hasher, V any] struct {
	mu spinlock.Mutex
	m  map[K]V
}

// Map is a concurrency safe map split into independently locked partitions.
type Map[K Hasher, V any] struct {
	numPart uint64
	seed    maphash.Seed
	parts   []*part[K, V]
}

// New returns a map with numPart partitions.
func New[K Hasher, V any](numPart int) *Map[K, V] {
	if numPart < 1 {
		numPart = 1
	}
	pm := &Map[K, V]{
		numPart: uint64(numPart),
		seed:    maphash.MakeSeed(),
		parts:   make([]*part[K, V], numPart),
	}
	for i := range pm.parts {
		pm.parts[i] = &part[K, V]{m: make(map[K]V)}
	}
	return pm
}

func (pm *Map[K, V]) part(k K) *part[K, V] { return pm.parts[k.Hash(pm.seed)%pm.numPart] }

// Load returns the value stored for k.
func (pm *Map[K, V]) Load(k K) (V, bool) {
	part := pm.part(k)
	part.mu.Lock()
	v, ok := part.m[k]
	part.mu.Unlock()
	return v, ok
}

// StoreIfAbsent stores v for k if k is not yet present and reports whether it did.
func (pm *Map[K, V]) StoreIfAbsent(k K, v V) bool {
	part := pm.part(k)
	part.mu.Lock()
	if _, ok := part.m[k]; !ok {
		part.m[k] = v
		part.mu.Unlock()
		return true
	}
	part.mu.Unlock()
	return false
}

// Size returns the number of stored keys.
func (pm *Map[K, V]) Size() int {
	size := 0
	for _, part := range pm.parts {
		part.mu.Lock()
		size += len(part.m)
		part.mu.Unlock()
	}
	return size
}

// NumPart returns the number of partitions.
func (pm *Map[K, V]) NumPart() int { return int(pm.numPart) }

// Reset removes all keys.
func (pm *Map[K, V]) Reset() {
	for _, part := range pm.parts {
		part.mu.Lock()
		clear(part.m)
		part.mu.Unlock()
	}
}

package repositories

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const lockStripes = 64

// LockTable serializes writers per key with a fixed set of striped mutexes.
// Two keys may share a stripe; that only costs parallelism.
type LockTable struct {
	stripes [lockStripes]sync.Mutex
}

// NewLockTable creates an empty LockTable.
func NewLockTable() *LockTable {
	return &LockTable{}
}

// Lock acquires the stripe for key and returns its unlock function.
func (t *LockTable) Lock(key string) func() {
	m := &t.stripes[xxhash.Sum64String(key)%lockStripes]
	m.Lock()
	return m.Unlock
}

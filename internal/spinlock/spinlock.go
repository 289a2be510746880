// Package spinlock provides a spinlock mutex for very short critical sections.
package spinlock

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// numSpin is the number of busy attempts before the processor is yielded.
const numSpin = 16

var _ sync.Locker = (*Mutex)(nil)

// Mutex represents a spinlock. The zero value is an unlocked mutex.
type Mutex struct {
	locked atomic.Bool
}

// Lock locks the mutex. The first numSpin attempts busy wait, later ones
// yield the processor. A CAS is only tried once the mutex looks unlocked.
func (m *Mutex) Lock() {
	for i := 0; ; i++ {
		if !m.locked.Load() && m.TryLock() {
			return
		}
		if i >= numSpin {
			runtime.Gosched()
		}
	}
}

// TryLock tries to lock the mutex and reports whether it succeeded.
func (m *Mutex) TryLock() bool { return m.locked.CompareAndSwap(false, true) }

// Unlock unlocks the mutex. Unlocking an unlocked mutex panics.
func (m *Mutex) Unlock() {
	if !m.locked.Swap(false) {
		panic("spinlock: unlock of unlocked mutex")
	}
}

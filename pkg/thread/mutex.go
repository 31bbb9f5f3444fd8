package thread

import "sync"

// Mutex is a non-reentrant mutual-exclusion lock.
//
// Lock and Unlock must be paired by the same logical owner; relocking while
// held deadlocks, and unlocking a mutex held by another owner corrupts the
// protected state. Neither misuse is detected.
type Mutex struct {
	mu sync.Mutex
}

// Lock blocks until the mutex is acquired.
func (m *Mutex) Lock() {
	m.mu.Lock()
}

// TryLock acquires the mutex without blocking and reports whether it did.
func (m *Mutex) TryLock() bool {
	return m.mu.TryLock()
}

// Unlock releases the mutex.
func (m *Mutex) Unlock() {
	m.mu.Unlock()
}

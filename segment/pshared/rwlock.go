package pshared

import "sync/atomic"

// RWMutex is a process-shared reader/writer lock. Like Mutex, its zero
// value is ready to use once the backing memory is zeroed.
//
// The implementation is the classic "first reader excludes the writer,
// last reader releases it" scheme built on top of two Mutex words, rather
// than a single compact state word: it is simpler to reason about
// correctly across processes, at the cost of serializing readers through
// mu for the brief window where the reader count is adjusted.
type RWMutex struct {
	mu      Mutex // guards readers and the first/last-reader transition
	writer  Mutex // held for the duration of any write, or by the first reader
	readers int32
}

// RLock acquires a read lock, blocking while a writer holds the lock.
func (rw *RWMutex) RLock() {
	rw.mu.Lock()
	if atomic.AddInt32(&rw.readers, 1) == 1 {
		rw.writer.Lock()
	}
	rw.mu.Unlock()
}

// RUnlock releases a read lock previously acquired with RLock.
func (rw *RWMutex) RUnlock() {
	rw.mu.Lock()
	if atomic.AddInt32(&rw.readers, -1) == 0 {
		rw.writer.Unlock()
	}
	rw.mu.Unlock()
}

// Lock acquires an exclusive write lock, blocking until no readers or
// writers hold the lock.
func (rw *RWMutex) Lock() {
	rw.writer.Lock()
}

// Unlock releases a write lock previously acquired with Lock.
func (rw *RWMutex) Unlock() {
	rw.writer.Unlock()
}

// Package pshared provides mutex and reader/writer lock primitives usable
// across processes that share the same memory segment.
//
// Go's sync.Mutex is unsafe to share across processes: its state word has
// no guaranteed stable address, and the runtime associates wait queues
// with the goroutine that took the lock, not with the memory location
// itself. These types instead keep all state in plain words embedded
// directly in shared memory (one for Mutex; two Mutex words and a reader
// count for RWMutex) and block via the futex word-wait mechanism
// (the same primitive glibc's pthread_mutex_t compiles down to on Linux
// when initialized with the PTHREAD_PROCESS_SHARED attribute), so any
// process mapping that word can contend for the same lock.
package pshared

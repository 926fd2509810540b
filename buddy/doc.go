// Package buddy implements a buddy allocator over a segment.Segment.
//
// Chunks are power-of-two sized and naturally aligned; a chunk's class is
// the base-2 logarithm of its size. Allocation finds (splitting a larger
// chunk if necessary) a free chunk of the smallest class that fits the
// request; freeing repeatedly merges a chunk with its buddy — the chunk
// at the offset reached by flipping the class's size bit — whenever that
// buddy is itself free and of the same class.
//
// All state lives in the segment's Header and in per-chunk headers
// embedded at the front of every chunk, so the allocator itself is
// stateless beyond a reference to the segment: any process attaching the
// same segment can construct its own *Allocator and see the same free
// lists.
//
// # Thread and process safety
//
// Alloc, Free and Snapshot take the segment's single Header.Lock for their
// entire critical section; only argument checks that read no free-list
// state (a size that maps to no class, a null or out-of-range ref) return
// before the lock is taken. There is no per-class locking. Out-of-memory
// returns ErrNoSpace immediately;
// there is no waiting for memory to become available.
package buddy

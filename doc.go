// Package shmbuddy implements a buddy allocator over a process-shared
// memory segment.
//
// # Overview
//
// Three layers, leaves first:
//
//   - segment: a System V (or platform-equivalent) shared memory region,
//     its fixed-layout control header, and the offset-addressed intrusive
//     list used to thread free chunks together across process address
//     spaces.
//   - segment/pshared: process-shared mutex and reader/writer lock
//     primitives, built on a futex word that lives inside the segment
//     header so every attached process shares the same lock state.
//   - buddy: the allocator proper. Chunks are power-of-two sized and
//     naturally aligned; allocation splits a larger free chunk on demand,
//     and freeing repeatedly coalesces a chunk with its buddy.
//
// # Usage
//
//	seg, err := segment.Create(segment.Options{Size: 1 << 20})
//	if err != nil {
//	    return err
//	}
//	a, err := buddy.New(seg)
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	ref, err := a.Alloc(100)
//	if err != nil {
//	    return err
//	}
//	a.Free(ref)
//
// # Scope
//
// This module only implements the allocator and its two supporting
// primitives. A higher-level shared-buffer manager, and the
// database-extension glue that would build parameter buffers and
// projection descriptors on top of it, are external collaborators (see
// internal/dsext for a minimal stand-in) and are not part of this module's
// contract.
package shmbuddy

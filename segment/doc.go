// Package segment provides the shared memory region the buddy allocator
// manages, its fixed-layout control header, and offset arithmetic for
// structures living inside it.
//
// A segment may be mapped at a different virtual address in every process
// that attaches it, so nothing inside the segment may store a native
// pointer: every cross-process reference is an Offset relative to the
// segment's own base address, translated per-process by OffsetOf/AddrOf.
package segment

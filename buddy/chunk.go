package buddy

import (
	"unsafe"

	"github.com/kaigai-boost/shmbuddy/segment"
)

// chunkHeader is the fixed-layout prefix of every chunk, "reinterpreted"
// depending on Active: while a chunk is free, List threads it onto
// FreeList[MClass]; once Active flips true, the caller's payload begins
// at List's own address, so the pointer identity Alloc hands out never
// changes across that transition.
type chunkHeader struct {
	MClass uint8
	Active bool
	_      [6]byte // pad List to its natural 8-byte alignment
	List   segment.Node
}

// chunkHeaderSize is the total size, in bytes, of a chunk header.
const chunkHeaderSize = int(unsafe.Sizeof(chunkHeader{}))

// listFieldOffset is header_bytes from spec.md §4.3: the offset of List
// within chunkHeader, and therefore the number of header bytes that
// precede the address handed back from Alloc.
const listFieldOffset = int(unsafe.Offsetof(chunkHeader{}.List))

// chunkAt returns the chunk header living at off within s.
func chunkAt(s *segment.Segment, off segment.Offset) *chunkHeader {
	return (*chunkHeader)(s.AddrOf(off))
}

// chunkFromNode recovers the owning chunk header from a pointer to its
// List field — the Go analogue of original_source/shmmgr.c's
// container_of(ptr, shmchunk_t, list) macro.
func chunkFromNode(n *segment.Node) *chunkHeader {
	return (*chunkHeader)(unsafe.Pointer(uintptr(unsafe.Pointer(n)) - uintptr(listFieldOffset)))
}

// chunkFromRef recovers the owning chunk header from a ref previously
// returned by Alloc.
func chunkFromRef(s *segment.Segment, ref segment.Offset) *chunkHeader {
	return chunkAt(s, ref-segment.Offset(listFieldOffset))
}

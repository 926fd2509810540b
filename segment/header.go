package segment

import "github.com/kaigai-boost/shmbuddy/segment/pshared"

const (
	// MinClass is the smallest chunk class: a class-6 chunk is 64 bytes.
	MinClass = 6
	// MaxClass is the largest chunk class: a class-31 chunk is 2GiB.
	MaxClass = 31

	numClassSlots = MaxClass + 1
)

// Header is the fixed-layout control block living at offset 0 of every
// segment. Its byte layout is the one piece of structure every attaching
// process must agree on, since it is found by address rather than
// discovered through the allocator.
type Header struct {
	// SegmentID is the opaque identifier the OS returned at segment
	// creation (e.g. a SysV shmid), recorded so later-joining processes
	// can attach by inheriting it through a separate, out-of-scope
	// channel.
	SegmentID int32
	_         [4]byte // pad SegmentSize to an 8-byte boundary

	// SegmentSize is S, fixed for the lifetime of the segment.
	SegmentSize int64

	// FreeList[c] is the list head of free chunks of class c.
	FreeList [numClassSlots]Node

	// NumActive[c] and NumFree[c] are advisory counters used for
	// diagnostics and invariant checking; NumFree[c] must always equal
	// the length of FreeList[c].
	NumActive [numClassSlots]int64
	NumFree   [numClassSlots]int64

	// Lock serializes every Alloc/Free critical section.
	Lock pshared.Mutex

	// RWLock is initialized for use by out-of-scope clients layered on
	// top of the allocator (e.g. a shared-buffer manager); the allocator
	// itself never takes it.
	RWLock pshared.RWMutex
}

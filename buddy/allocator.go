package buddy

import (
	"fmt"
	"unsafe"

	"github.com/kaigai-boost/shmbuddy/segment"
)

// Allocator is a buddy allocator attached to a segment.Segment. Its state
// lives entirely inside the segment (Header.FreeList, Header.NumActive,
// Header.NumFree); Allocator itself only caches the segment pointer and
// header pointer so every method can be short.
type Allocator struct {
	seg *segment.Segment
	hdr *segment.Header
}

// New attaches an Allocator to seg. If the segment has never been
// bootstrapped (every FreeList head is still zeroed, as in a freshly
// created segment), it records the segment size in the header and tiles
// the segment from scratch; otherwise New simply attaches to the existing
// free lists, so a second process calling New on an already-initialized
// segment sees the first process's allocations.
func New(s *segment.Segment) (*Allocator, error) {
	h := s.Header()
	a := &Allocator{seg: s, hdr: h}

	empty := true
	for c := MinClass; c <= MaxClass; c++ {
		if h.FreeList[c].Next != segment.NullOffset {
			empty = false
			break
		}
	}
	if empty {
		h.SegmentSize = s.Size()
		for c := MinClass; c <= MaxClass; c++ {
			segment.Init(s, &h.FreeList[c])
		}
		if err := bootstrap(s, h); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
		}
	}
	return a, nil
}

// ensureNonEmpty guarantees FreeList[class] is non-empty by splitting a
// chunk borrowed from the smallest non-empty class above it, cascading
// the split down one class at a time. It returns false if no class above
// class has a free chunk, meaning the segment is exhausted at this size.
func (a *Allocator) ensureNonEmpty(class int) bool {
	if !segment.IsEmpty(a.seg, &a.hdr.FreeList[class]) {
		return true
	}
	if class >= MaxClass {
		return false
	}
	if !a.ensureNonEmpty(class + 1) {
		return false
	}

	node := a.hdr.FreeList[class+1].Next
	parent := chunkFromNode(segment.NodeAt(a.seg, node))
	segment.Del(a.seg, &parent.List)
	a.hdr.NumFree[class+1]--

	half := segment.Offset(1 << uint(class))
	loOff := a.seg.OffsetOf(unsafe.Pointer(parent))
	hiOff := loOff + half

	lo := chunkAt(a.seg, loOff)
	lo.MClass = uint8(class)
	lo.Active = false
	segment.Init(a.seg, &lo.List)

	hi := chunkAt(a.seg, hiOff)
	hi.MClass = uint8(class)
	hi.Active = false
	segment.Init(a.seg, &hi.List)

	segment.Add(a.seg, &a.hdr.FreeList[class], &hi.List)
	segment.Add(a.seg, &a.hdr.FreeList[class], &lo.List)
	a.hdr.NumFree[class] += 2

	return true
}

// Alloc reserves a chunk large enough to hold size bytes of caller
// payload and returns the segment.Offset of the first payload byte.
//
// It returns segment.NullOffset and ErrClassOverflow if size, plus chunk
// header overhead, needs a class larger than MaxClass can represent, and
// segment.NullOffset and ErrNoSpace if no free chunk of the required
// class or any class above it is available. size <= 0 is reported the
// same way as a request that cannot be satisfied: ErrClassOverflow.
func (a *Allocator) Alloc(size int64) (segment.Offset, error) {
	if size <= 0 {
		return segment.NullOffset, ErrClassOverflow
	}
	need := size + int64(listFieldOffset)
	class := classFor(need)
	if class > MaxClass {
		return segment.NullOffset, ErrClassOverflow
	}

	a.hdr.Lock.Lock()
	defer a.hdr.Lock.Unlock()

	if !a.ensureNonEmpty(class) {
		return segment.NullOffset, ErrNoSpace
	}

	node := a.hdr.FreeList[class].Next
	chunk := chunkFromNode(segment.NodeAt(a.seg, node))
	segment.Del(a.seg, &chunk.List)
	a.hdr.NumFree[class]--

	chunk.Active = true
	a.hdr.NumActive[class]++

	ref := a.seg.OffsetOf(unsafe.Pointer(chunk)) + segment.Offset(listFieldOffset)
	return ref, nil
}

// buddyOffset returns the offset of the buddy of the chunk of class c
// starting at off: the chunk reached by flipping bit c of the
// segment-relative offset off. Because every chunk's offset
// is a multiple of its own size, and power-of-two tiling keeps buddies
// paired at that granularity, XORing in the size bit is sufficient.
func buddyOffset(off segment.Offset, class int) segment.Offset {
	return off ^ segment.Offset(1<<uint(class))
}

// Free releases a chunk previously returned by Alloc, coalescing it with
// its buddy repeatedly while the buddy is itself free, of the same
// class, and outside the Segment Header region, up to MaxClass. Freeing
// segment.NullOffset is a no-op. Free returns ErrBadOffset if ref does
// not address a chunk within the segment's chunk-bearing region.
func (a *Allocator) Free(ref segment.Offset) error {
	if ref == segment.NullOffset {
		return nil
	}
	if int64(ref) < firstUsableOffset(headerSize(a.hdr))+int64(listFieldOffset) || int64(ref) >= a.hdr.SegmentSize {
		return ErrBadOffset
	}

	a.hdr.Lock.Lock()
	defer a.hdr.Lock.Unlock()

	chunk := chunkFromRef(a.seg, ref)
	class := int(chunk.MClass)
	off := a.seg.OffsetOf(unsafe.Pointer(chunk))

	chunk.Active = false
	a.hdr.NumActive[class]--

	hdrSize := segment.Offset(headerSize(a.hdr))

	for class < MaxClass {
		bOff := buddyOffset(off, class)

		// The buddy must not fall inside the Segment Header region: that
		// region is never a chunk, and treating its bytes as one would
		// corrupt SegmentID/SegmentSize/the free lists themselves.
		if bOff < hdrSize {
			break
		}
		if bOff+segment.Offset(1<<uint(class)) > segment.Offset(a.hdr.SegmentSize) {
			break
		}

		buddy := chunkAt(a.seg, bOff)
		if buddy.Active || int(buddy.MClass) != class {
			break
		}

		segment.Del(a.seg, &buddy.List)
		a.hdr.NumFree[class]--

		if bOff < off {
			off = bOff
		}
		class++
		chunk = chunkAt(a.seg, off)
		chunk.MClass = uint8(class)
		chunk.Active = false
	}

	segment.Init(a.seg, &chunk.List)
	segment.Add(a.seg, &a.hdr.FreeList[class], &chunk.List)
	a.hdr.NumFree[class]++
	return nil
}

// Stats is a point-in-time snapshot of chunk counts per class.
type Stats struct {
	Active [32]int64
	Free   [32]int64
}

// Snapshot returns the current Active and Free counts for every class,
// taken under the segment lock so the two arrays are mutually
// consistent.
func (a *Allocator) Snapshot() Stats {
	a.hdr.Lock.Lock()
	defer a.hdr.Lock.Unlock()

	var s Stats
	copy(s.Active[:], a.hdr.NumActive[:])
	copy(s.Free[:], a.hdr.NumFree[:])
	return s
}

// Close detaches the underlying segment. It does not reclaim any memory
// still marked Active in other attached processes.
func (a *Allocator) Close() error {
	return a.seg.Close()
}

package buddy

import (
	"unsafe"

	"github.com/kaigai-boost/shmbuddy/segment"
)

// firstUsableOffset computes o₀, the smallest offset at which a chunk can
// legally start: a power of two strictly greater than the header size,
// but never smaller than a class-MinClass chunk. This is spec.md §9's
// documented policy verbatim (1 << (fls(sizeof(header)) + 1)); it can
// leave unused bytes between the header and o₀, and that slack is
// intentional rather than a bug to fix.
func firstUsableOffset(hdrSize int64) int64 {
	o0 := int64(1) << uint(fls(uint64(hdrSize))+1)
	if o0 < 1<<MinClass {
		o0 = 1 << MinClass
	}
	return o0
}

// headerSize is the size in bytes of the Segment Header itself: the
// region no chunk, split or coalesce may ever touch.
func headerSize(h *segment.Header) int64 {
	return int64(unsafe.Sizeof(*h))
}

// bootstrap tiles the region from o₀ to the end of the segment into the
// largest naturally aligned power-of-two chunks that fit, establishing
// invariants A-F before the first Alloc.
func bootstrap(s *segment.Segment, h *segment.Header) error {
	o0 := firstUsableOffset(headerSize(h))
	size := h.SegmentSize

	if size-o0 < 1<<MinClass {
		return ErrSegmentTooSmall
	}

	for size-o0 >= 1<<MinClass {
		c := ffs(uint64(o0)) - 1
		if c > MaxClass {
			c = MaxClass
		}
		for size < o0+(1<<uint(c)) {
			c--
		}
		if c < MinClass {
			break
		}

		chunk := chunkAt(s, segment.Offset(o0))
		chunk.MClass = uint8(c)
		chunk.Active = false
		segment.Init(s, &chunk.List)
		segment.Add(s, &h.FreeList[c], &chunk.List)
		h.NumFree[c]++

		o0 += 1 << uint(c)
	}
	return nil
}

package segment

import "unsafe"

// Options configures segment creation.
type Options struct {
	// Size is the total segment size in bytes, including the Header.
	Size int64
	// HugePages requests large-page backing where the platform supports
	// it. Platforms without huge-page support silently ignore it rather
	// than fail, matching the "best effort" framing of the original
	// shmget(..., SHM_HUGETLB) call this is modeled on.
	HugePages bool
}

// Segment is a contiguous byte region mapped into the current process,
// shared with every other process that attaches the same underlying OS
// object. Segment itself only tracks the mapping; Create (platform
// specific) is responsible for producing one.
type Segment struct {
	data   []byte
	base   unsafe.Pointer
	id     int32
	detach func() error
}

// newMapped wraps an already-mapped byte region. Platform-specific Create
// implementations call this once they have a live mapping.
func newMapped(data []byte, id int32, detach func() error) *Segment {
	return &Segment{
		data:   data,
		base:   unsafe.Pointer(&data[0]),
		id:     id,
		detach: detach,
	}
}

// Header returns the Segment Header at offset 0, interpreted in this
// process's own mapping.
func (s *Segment) Header() *Header {
	return (*Header)(s.base)
}

// Bytes returns the entire mapped region, including the Header.
func (s *Segment) Bytes() []byte {
	return s.data
}

// Size returns the segment's total size in bytes.
func (s *Segment) Size() int64 {
	return int64(len(s.data))
}

// Base returns the mapped base address in this process's address space.
// Only offset arithmetic should ever touch it; nothing in this package
// persists it to shared memory.
func (s *Segment) Base() unsafe.Pointer {
	return s.base
}

// OffsetOf returns p's Offset relative to this segment's base.
func (s *Segment) OffsetOf(p unsafe.Pointer) Offset {
	return OffsetOf(s.base, p)
}

// AddrOf returns the live pointer corresponding to off in this process.
func (s *Segment) AddrOf(off Offset) unsafe.Pointer {
	return AddrOf(s.base, off)
}

// Close detaches the segment from this process. Depending on how the
// segment was created, the underlying OS object may continue to exist
// until every other attached process also detaches (see Create's doc
// comment on each platform).
func (s *Segment) Close() error {
	if s.detach == nil {
		return nil
	}
	detach := s.detach
	s.detach = nil
	return detach()
}

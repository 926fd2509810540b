package dsext

import (
	"encoding/binary"
	"fmt"

	"github.com/kaigai-boost/shmbuddy/buddy"
	"github.com/kaigai-boost/shmbuddy/segment"
)

// ParamBuffer is an allocator-backed buffer holding a fixed list of
// variable-length values, laid out as an offset table (one uint64 per
// value, 0 meaning "null") followed by the concatenated value bytes.
// Any process attached to the same segment can decode it by reading Ref
// back through the same segment.
type ParamBuffer struct {
	Ref   segment.Offset
	Count int
	Size  int
	seg   *segment.Segment
	alloc *buddy.Allocator
}

// NewParamBuffer packs values into a single allocator chunk. A nil entry
// in values encodes as a null (offset table slot 0).
func NewParamBuffer(seg *segment.Segment, alloc *buddy.Allocator, values [][]byte) (*ParamBuffer, error) {
	tableSize := 8 * len(values)
	total := tableSize
	for _, v := range values {
		total += len(v)
	}

	ref, err := alloc.Alloc(int64(total))
	if err != nil {
		return nil, fmt.Errorf("dsext: packing %d values: %w", len(values), err)
	}

	buf := seg.Bytes()[ref : int(ref)+total]
	cursor := tableSize
	for i, v := range values {
		if v == nil {
			binary.LittleEndian.PutUint64(buf[8*i:], 0)
			continue
		}
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(cursor))
		copy(buf[cursor:], v)
		cursor += len(v)
	}

	return &ParamBuffer{Ref: ref, Count: len(values), Size: total, seg: seg, alloc: alloc}, nil
}

// Value returns the i'th value, or nil if it was encoded as null.
// It panics if i is out of [0, Count).
func (p *ParamBuffer) Value(i int) []byte {
	table := p.seg.Bytes()[p.Ref : int(p.Ref)+p.Size]
	off := binary.LittleEndian.Uint64(table[8*i:])
	if off == 0 {
		return nil
	}

	next := uint64(0)
	for j := i + 1; j < p.Count; j++ {
		if o := binary.LittleEndian.Uint64(table[8*j:]); o != 0 {
			next = o
			break
		}
	}
	if next == 0 {
		next = uint64(p.Size)
	}
	return table[off:next]
}

// Release frees the underlying chunk. The ParamBuffer must not be used
// afterward.
func (p *ParamBuffer) Release() error {
	return p.alloc.Free(p.Ref)
}

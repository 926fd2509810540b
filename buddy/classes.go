package buddy

import (
	"math/bits"

	"github.com/kaigai-boost/shmbuddy/segment"
)

// MinClass and MaxClass mirror segment.MinClass and segment.MaxClass: the
// smallest and largest chunk classes a FreeList slot can hold.
const (
	MinClass = segment.MinClass
	MaxClass = segment.MaxClass
)

// fls returns the 1-based position of the highest set bit in v ("find
// last set"), or 0 if v is zero. fls(1)==1, fls(2)==2, fls(3)==2,
// fls(4)==3.
func fls(v uint64) int {
	return bits.Len64(v)
}

// ffs returns the 1-based position of the lowest set bit in v ("find
// first set"), or 0 if v is zero. ffs(1)==1, ffs(2)==2, ffs(4)==3,
// ffs(6)==2.
func ffs(v uint64) int {
	if v == 0 {
		return 0
	}
	return bits.TrailingZeros64(v) + 1
}

// classFor returns the smallest class c such that 1<<c >= need, clamped up
// to MinClass. A result greater than MaxClass signals that no chunk class
// can satisfy the request.
func classFor(need int64) int {
	c := fls(uint64(need - 1))
	if c < MinClass {
		c = MinClass
	}
	return c
}

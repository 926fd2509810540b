package segment

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// testSegment wraps a plain byte slice as a Segment without going through
// a platform Create, for exercising list/offset logic in isolation.
func testSegment(t *testing.T, size int) *Segment {
	t.Helper()
	buf := make([]byte, size)
	return newMapped(buf, 0, func() error { return nil })
}

// Offset 0 is the null sentinel, so every test places its list head at a
// non-zero offset, as the free-list heads inside a real Header are.

func TestListInitIsEmpty(t *testing.T) {
	s := testSegment(t, 128)
	head := (*Node)(unsafe.Pointer(&s.data[96]))
	Init(s, head)
	require.True(t, IsEmpty(s, head))
}

func TestListAddDel(t *testing.T) {
	s := testSegment(t, 128)
	head := (*Node)(unsafe.Pointer(&s.data[96]))
	Init(s, head)

	n1 := (*Node)(unsafe.Pointer(&s.data[16]))
	n2 := (*Node)(unsafe.Pointer(&s.data[32]))
	Init(s, n1)
	Init(s, n2)

	Add(s, head, n1)
	require.False(t, IsEmpty(s, head))
	require.Equal(t, s.OffsetOf(unsafe.Pointer(n1)), head.Next)
	require.Equal(t, s.OffsetOf(unsafe.Pointer(head)), n1.Next)

	Add(s, head, n2)
	// head -> n2 -> n1 -> head
	require.Equal(t, s.OffsetOf(unsafe.Pointer(n2)), head.Next)
	require.Equal(t, s.OffsetOf(unsafe.Pointer(n1)), n2.Next)
	require.Equal(t, s.OffsetOf(unsafe.Pointer(head)), n1.Next)

	Del(s, n2)
	require.True(t, IsEmpty(s, n2))
	require.Equal(t, s.OffsetOf(unsafe.Pointer(n1)), head.Next)

	Del(s, n1)
	require.True(t, IsEmpty(s, head))
}

func TestListPredecessorInvariant(t *testing.T) {
	s := testSegment(t, 128)
	head := (*Node)(unsafe.Pointer(&s.data[96]))
	Init(s, head)

	nodes := make([]*Node, 4)
	for i := range nodes {
		n := (*Node)(unsafe.Pointer(&s.data[16*(i+1)]))
		Init(s, n)
		Add(s, head, n)
		nodes[i] = n
	}

	// For every linked node n, addr_of(addr_of(n.next).prev) == &n.
	walk := head
	for i := 0; i < len(nodes)+1; i++ {
		next := NodeAt(s, walk.Next)
		require.Equal(t, unsafe.Pointer(walk), s.AddrOf(next.Prev))
		walk = next
	}
}

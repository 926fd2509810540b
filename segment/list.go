package segment

import "unsafe"

// Node is an intrusive circular doubly-linked list node. Prev and Next are
// Offsets rather than pointers so the same bytes mean the same list to
// every process mapping the segment, regardless of where that process's
// mapping lands in its own address space. A list head is itself a Node
// (embedded in the Segment Header); an empty list has Next pointing back
// at itself.
type Node struct {
	Prev Offset
	Next Offset
}

// NodeAt returns the Node living at off within s, for the calling
// process's own mapping.
func NodeAt(s *Segment, off Offset) *Node {
	return (*Node)(s.AddrOf(off))
}

// Init makes n an empty list: both of its links point back at itself.
func Init(s *Segment, n *Node) {
	self := s.OffsetOf(unsafe.Pointer(n))
	n.Prev = self
	n.Next = self
}

// IsEmpty reports whether head has no linked elements.
func IsEmpty(s *Segment, head *Node) bool {
	return s.AddrOf(head.Next) == unsafe.Pointer(head)
}

// Add inserts node immediately after base.
func Add(s *Segment, base, node *Node) {
	next := NodeAt(s, base.Next)

	baseOff := s.OffsetOf(unsafe.Pointer(base))
	nodeOff := s.OffsetOf(unsafe.Pointer(node))

	base.Next = nodeOff
	node.Prev = baseOff
	node.Next = s.OffsetOf(unsafe.Pointer(next))
	next.Prev = nodeOff
}

// Del unlinks node from whatever list it is on and reinitializes it so it
// is safe to Add again.
func Del(s *Segment, node *Node) {
	prev := NodeAt(s, node.Prev)
	next := NodeAt(s, node.Next)

	prev.Next = s.OffsetOf(unsafe.Pointer(next))
	next.Prev = s.OffsetOf(unsafe.Pointer(prev))

	Init(s, node)
}

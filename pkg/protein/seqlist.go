// 12 Oct 2026

// Package protein reads a protein sequence, applies positional replace
// and delete commands to it and prints the result in numbered rows.
//
// The sequence lives in an arena. Each node holds one symbol and the
// index of the next node, so deleting is a splice of two indices and
// no memory is handed back until the whole sequence goes away. There
// is no insertion, so a slot is never reused.
package protein

const nilNdx = -1 // end of list marker

type node struct {
	sym  byte
	next int32
}

// Sequence is an ordered list of symbols, numbered from 1.
type Sequence struct {
	nodes []node
	head  int32
	tail  int32
	n     int // live nodes
}

// NewSequence returns an empty sequence with room for sizeHint symbols.
func NewSequence(sizeHint int) *Sequence {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Sequence{
		nodes: make([]node, 0, sizeHint),
		head:  nilNdx,
		tail:  nilNdx,
	}
}

// FromBytes builds a sequence holding exactly the bytes in b.
func FromBytes(b []byte) *Sequence {
	s := NewSequence(len(b))
	for _, c := range b {
		s.Append(c)
	}
	return s
}

// Append adds a symbol at the end.
func (s *Sequence) Append(c byte) {
	ndx := int32(len(s.nodes))
	s.nodes = append(s.nodes, node{sym: c, next: nilNdx})
	if s.tail == nilNdx {
		s.head = ndx
	} else {
		s.nodes[s.tail].next = ndx
	}
	s.tail = ndx
	s.n++
}

// Len is the number of symbols currently in the sequence.
func (s *Sequence) Len() int { return s.n }

// walk returns the handle of the node at 1-based position pos, counting
// from the head. ok is false if pos is off either end.
func (s *Sequence) walk(pos int) (ndx int32, ok bool) {
	if pos < 1 || pos > s.n {
		return nilNdx, false
	}
	ndx = s.head
	for i := 1; i < pos; i++ {
		ndx = s.nodes[ndx].next
	}
	return ndx, true
}

// At returns the symbol at 1-based position pos.
func (s *Sequence) At(pos int) (byte, bool) {
	ndx, ok := s.walk(pos)
	if !ok {
		return 0, false
	}
	return s.nodes[ndx].sym, true
}

// set overwrites the symbol at pos. It reports false if pos is out of range.
func (s *Sequence) set(pos int, c byte) bool {
	ndx, ok := s.walk(pos)
	if !ok {
		return false
	}
	s.nodes[ndx].sym = c
	return true
}

// unlink removes cur from the list. prev is the node before it, or
// nilNdx if cur is the head.
func (s *Sequence) unlink(prev, cur int32) {
	next := s.nodes[cur].next
	if prev == nilNdx {
		s.head = next
	} else {
		s.nodes[prev].next = next
	}
	if s.tail == cur {
		s.tail = prev
	}
	s.nodes[cur].next = nilNdx
	s.n--
}

// Bytes copies the symbols out in order.
func (s *Sequence) Bytes() []byte {
	b := make([]byte, 0, s.n)
	for ndx := s.head; ndx != nilNdx; ndx = s.nodes[ndx].next {
		b = append(b, s.nodes[ndx].sym)
	}
	return b
}

// String returns the symbols as a string, without any formatting.
func (s *Sequence) String() string { return string(s.Bytes()) }

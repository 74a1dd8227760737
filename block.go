package nfa

import (
	"github.com/bits-and-blooms/bitset"
)

var _ Hashable = &Block{}

// Block A class of a Partition: a frozen set of state indices of one automaton.
type Block struct {
	members  *bitset.BitSet
	size     int
	min      int
	hashCode uint64
}

func newBlock(members *bitset.BitSet) *Block {
	b := &Block{
		members: members,
		size:    int(members.Count()),
		min:     -1,
	}
	if i, ok := members.NextSet(0); ok {
		b.min = int(i)
	}

	h := uint64(b.size)
	for i, ok := members.NextSet(0); ok; i, ok = members.NextSet(i + 1) {
		h = mixInto(h, int(i))
	}
	b.hashCode = h
	return b
}

func (b *Block) Hash() uint64 {
	return b.hashCode
}

func (b *Block) Equals(other Hashable) bool {
	o, ok := other.(*Block)
	if !ok || b == nil || o == nil {
		return ok && b == o
	}
	if b.size != o.size || b.hashCode != o.hashCode {
		return false
	}
	return b.members.IntersectionCardinality(o.members) == uint(b.size)
}

// Len Number of states in the block.
func (b *Block) Len() int {
	return b.size
}

// Contains Returns true if the i'th state of the automaton is in this block.
func (b *Block) Contains(i int) bool {
	return i >= 0 && b.members.Test(uint(i))
}

// Returns member indices in ascending order, which is the order the states were added.
func (b *Block) indices() []int {
	out := make([]int, 0, b.size)
	for i, ok := b.members.NextSet(0); ok; i, ok = b.members.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

package nfa

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Partition A division of the states of one automaton into disjoint, non-empty blocks.
// Blocks are kept ordered by their earliest added member.
type Partition struct {
	nfa    *NFA
	blocks []*Block

	// owner[i] is the position in blocks of the block holding the i'th state.
	owner []int
}

func newPartition(n *NFA, blocks []*Block) *Partition {
	kept := make([]*Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Len() > 0 {
			kept = append(kept, b)
		}
	}
	slices.SortFunc(kept, func(x, y *Block) int {
		return x.min - y.min
	})

	owner := make([]int, n.NumStates())
	for i := range owner {
		owner[i] = -1
	}
	for bi, b := range kept {
		for _, i := range b.indices() {
			owner[i] = bi
		}
	}

	return &Partition{
		nfa:    n,
		blocks: kept,
		owner:  owner,
	}
}

// NewPartition Build a partition of n from groups of its states. Groups may not overlap;
// empty groups are dropped. States of n missing from every group are left unassigned and
// are never split.
func NewPartition(n *NFA, groups ...[]*State) (*Partition, error) {
	seen := bitset.New(uint(n.NumStates()))
	blocks := make([]*Block, 0, len(groups))
	for _, group := range groups {
		members := bitset.New(uint(n.NumStates()))
		for _, s := range group {
			i, ok := n.index[s]
			if !ok {
				return nil, fmt.Errorf("%w: %v", ErrUnknownState, s)
			}
			if seen.Test(uint(i)) && !members.Test(uint(i)) {
				return nil, fmt.Errorf("%w: %v", ErrOverlappingBlocks, s)
			}
			seen.Set(uint(i))
			members.Set(uint(i))
		}
		blocks = append(blocks, newBlock(members))
	}
	return newPartition(n, blocks), nil
}

// Len Number of blocks.
func (p *Partition) Len() int {
	return len(p.blocks)
}

// Block Returns the states of the i'th block in insertion order.
func (p *Partition) Block(i int) []*State {
	indices := p.blocks[i].indices()
	out := make([]*State, len(indices))
	for k, si := range indices {
		out[k] = p.nfa.states[si]
	}
	return out
}

// Blocks Returns the states of every block.
func (p *Partition) Blocks() [][]*State {
	out := make([][]*State, len(p.blocks))
	for i := range p.blocks {
		out[i] = p.Block(i)
	}
	return out
}

// BlockOf Returns the position of the block holding s, or -1.
func (p *Partition) BlockOf(s *State) int {
	i, ok := p.nfa.index[s]
	if !ok {
		return -1
	}
	return p.owner[i]
}

// Equal Returns true if both partitions hold the same blocks, regardless of order.
func (p *Partition) Equal(other *Partition) bool {
	if other == nil || p.Len() != other.Len() {
		return false
	}
	blocks := NewHashMap[*Block, struct{}](WithCapacity(p.Len()))
	for _, b := range p.blocks {
		blocks.Set(b, struct{}{})
	}
	for _, b := range other.blocks {
		if !blocks.Contains(b) {
			return false
		}
	}
	return true
}

func (p *Partition) String() string {
	var sb strings.Builder
	sb.WriteString("Groups:")
	for i := range p.blocks {
		sb.WriteString(" [")
		for k, s := range p.Block(i) {
			if k > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s.Name())
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

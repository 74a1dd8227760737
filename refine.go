package nfa

import (
	"fmt"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

// Strategy Decides how a block is split during one refinement round.
type Strategy int

const (
	// StrategySignature splits a block by the vector of target blocks, one entry per alphabet
	// symbol. Two states stay together only if every symbol leads them into the same block.
	StrategySignature = Strategy(iota)

	// StrategyEscape splits a block in two: states with some transition leaving the block,
	// and states whose transitions all stay inside it. It never looks at which block a
	// transition lands in, so two states escaping to different blocks on the same symbol
	// stay together and the result can be coarser than the minimal DFA.
	StrategyEscape
)

func (s Strategy) String() string {
	switch s {
	case StrategySignature:
		return "signature"
	case StrategyEscape:
		return "escape"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Refiner Computes state equivalence classes of a DFA by k-equivalence: starting from the
// accept/non-accept split, blocks are split until a round changes nothing.
type Refiner struct {
	nfa      *NFA
	symbols  []Symbol
	strategy Strategy
	logger   *slog.Logger
}

// NewRefiner Returns a refiner for n, which must be a DFA.
func NewRefiner(n *NFA, opts ...Option) (*Refiner, error) {
	if !n.IsDFA() {
		return nil, ErrNotDFA
	}
	o := newOptions(opts...)
	return &Refiner{
		nfa:      n,
		symbols:  n.alphabet.Symbols(),
		strategy: o.strategy,
		logger:   o.logger,
	}, nil
}

// Initial Returns the 0-equivalence partition: accept states and non-accept states. A class
// with no states is dropped.
func (r *Refiner) Initial() *Partition {
	numStates := uint(r.nfa.NumStates())
	accept := r.nfa.getAcceptStates().Clone()
	nonAccept := bitset.New(numStates)
	for i := uint(0); i < numStates; i++ {
		if !accept.Test(i) {
			nonAccept.Set(i)
		}
	}
	return newPartition(r.nfa, []*Block{newBlock(accept), newBlock(nonAccept)})
}

// Step Runs one refinement round over p. Blocks with a single state pass through unchanged.
// Fails with ErrUnknownState if p was built over another automaton.
func (r *Refiner) Step(p *Partition) (*Partition, error) {
	if err := r.checkOwner(p); err != nil {
		return nil, err
	}
	return r.step(p), nil
}

func (r *Refiner) step(p *Partition) *Partition {
	next := make([]*Block, 0, p.Len())
	for _, b := range p.blocks {
		if b.Len() <= 1 {
			next = append(next, b)
			continue
		}
		switch r.strategy {
		case StrategyEscape:
			next = append(next, r.splitByEscape(b)...)
		default:
			next = append(next, r.splitBySignature(p, b)...)
		}
	}
	return newPartition(r.nfa, next)
}

// Refine Repeats Step from p until the partition stops changing. Returns the stable
// partition and the number of rounds run, including the final round that confirmed it.
// Every round before the last adds at least one block, so a non-empty automaton needs at
// most NumStates rounds.
func (r *Refiner) Refine(p *Partition) (*Partition, int, error) {
	if err := r.checkOwner(p); err != nil {
		return nil, 0, err
	}
	if p.Len() == 0 {
		return p, 0, nil
	}

	limit := r.nfa.NumStates()
	for round := 1; round <= limit; round++ {
		next := r.step(p)
		r.logger.Debug("refinement round",
			"round", round,
			"strategy", r.strategy.String(),
			"blocks", next.Len())
		if next.Equal(p) {
			return next, round, nil
		}
		p = next
	}
	return p, limit, fmt.Errorf("%w: %d rounds over %d states", ErrNoFixpoint, limit, r.nfa.NumStates())
}

// Block indices and owner only make sense against the automaton the partition was built over.
func (r *Refiner) checkOwner(p *Partition) error {
	if p.nfa != r.nfa {
		return fmt.Errorf("%w: partition belongs to another automaton", ErrUnknownState)
	}
	return nil
}

func (r *Refiner) splitBySignature(p *Partition, b *Block) []*Block {
	numStates := uint(r.nfa.NumStates())
	groups := NewHashMap[signature, *bitset.BitSet]()
	for _, i := range b.indices() {
		sig := make(signature, len(r.symbols))
		for k, symbol := range r.symbols {
			d := r.nfa.step(i, symbol)
			if d < 0 {
				sig[k] = -1
				continue
			}
			sig[k] = p.owner[d]
		}

		members, ok := groups.Get(sig)
		if !ok {
			members = bitset.New(numStates)
			groups.Set(sig, members)
		}
		members.Set(uint(i))
	}

	out := make([]*Block, 0, groups.Size())
	for _, members := range groups.All() {
		out = append(out, newBlock(members))
	}
	return out
}

func (r *Refiner) splitByEscape(b *Block) []*Block {
	numStates := uint(r.nfa.NumStates())
	leave := bitset.New(numStates)
	keep := bitset.New(numStates)
	for _, i := range b.indices() {
		if r.escapes(i, b) {
			leave.Set(uint(i))
		} else {
			keep.Set(uint(i))
		}
	}
	return []*Block{newBlock(leave), newBlock(keep)}
}

// Returns true if some transition of the i'th state lands outside b.
func (r *Refiner) escapes(i int, b *Block) bool {
	for _, dests := range r.nfa.transitions[i] {
		for _, d := range dests.states {
			j, ok := r.nfa.index[d]
			if !ok || !b.Contains(j) {
				return true
			}
		}
	}
	return false
}

var _ Hashable = signature(nil)

// Target block per alphabet symbol.
type signature []int

func (s signature) Hash() uint64 {
	h := uint64(len(s))
	for _, v := range s {
		h = mixInto(h, v)
	}
	return h
}

func (s signature) Equals(other Hashable) bool {
	o, ok := other.(signature)
	if !ok || len(o) != len(s) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

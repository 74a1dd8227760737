package nfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// NFA Represents an automaton over a fixed alphabet. States are added with AddState and
// transitions with AddTransition; a state may carry any number of destinations per symbol, so
// nondeterminism and epsilon moves are representable. A DFA is the special case checked by
// IsDFA. Apart from these two mutators the automaton is read-only, and operations such as
// Minimize always build a new NFA.
type NFA struct {
	alphabet *Alphabet

	// States in insertion order; the position of a state here is its index.
	states []*State

	// Maps each state to its position in states.
	index map[*State]int

	// Bit i is set if states[i] is an accept state.
	isAccept *bitset.BitSet

	// Outgoing transitions per state index, keyed by symbol.
	transitions []map[Symbol]*StateSet
}

// New Create an empty automaton over the given alphabet.
func New(alphabet *Alphabet) *NFA {
	if alphabet == nil {
		alphabet = emptyAlphabet()
	}
	return &NFA{
		alphabet:    alphabet,
		index:       make(map[*State]int),
		isAccept:    bitset.New(0),
		transitions: make([]map[Symbol]*StateSet, 0),
	}
}

// NewWithSymbols Create an empty automaton over an alphabet made of symbols. Fails like
// NewAlphabet.
func NewWithSymbols(symbols ...Symbol) (*NFA, error) {
	alphabet, err := NewAlphabet(symbols...)
	if err != nil {
		return nil, err
	}
	return New(alphabet), nil
}

// AddState Adds states with no transitions. Adding a state that is already present is a no-op.
func (n *NFA) AddState(states ...*State) {
	for _, s := range states {
		if s == nil {
			continue
		}
		if _, ok := n.index[s]; ok {
			continue
		}
		i := len(n.states)
		n.states = append(n.states, s)
		n.index[s] = i
		n.isAccept.SetTo(uint(i), s.Accept())
		n.transitions = append(n.transitions, make(map[Symbol]*StateSet))
	}
}

// AddTransition Add dest to the destinations of source on symbol. Adding a transition that
// already exists changes nothing. Fails without side effects if the symbol is not in the
// alphabet, source was never added, or dest is nil. dest itself need not be added.
func (n *NFA) AddTransition(source *State, symbol Symbol, dest *State) error {
	if !n.alphabet.Contains(symbol) {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, rune(symbol))
	}
	i, ok := n.index[source]
	if !ok {
		return fmt.Errorf("%w: source %v", ErrUnknownState, source)
	}
	if dest == nil {
		return fmt.Errorf("%w: nil destination", ErrUnknownState)
	}

	dests, ok := n.transitions[i][symbol]
	if !ok {
		dests = NewStateSet()
		n.transitions[i][symbol] = dests
	}
	dests.Add(dest)
	return nil
}

// Alphabet Returns the alphabet. Alphabets are immutable.
func (n *NFA) Alphabet() *Alphabet {
	return n.alphabet
}

// States Returns the states in insertion order.
func (n *NFA) States() []*State {
	out := make([]*State, len(n.states))
	copy(out, n.states)
	return out
}

// NumStates How many states this automaton has.
func (n *NFA) NumStates() int {
	return len(n.states)
}

// HasState Returns true if s was added to this automaton.
func (n *NFA) HasState(s *State) bool {
	_, ok := n.index[s]
	return ok
}

// NumTransitions How many (source, symbol, dest) triples this automaton has.
func (n *NFA) NumTransitions() int {
	count := 0
	for _, m := range n.transitions {
		for _, dests := range m {
			count += dests.Size()
		}
	}
	return count
}

// Destinations Returns the destinations of s on symbol, or nil if there are none.
func (n *NFA) Destinations(s *State, symbol Symbol) []*State {
	i, ok := n.index[s]
	if !ok {
		return nil
	}
	dests, ok := n.transitions[i][symbol]
	if !ok {
		return nil
	}
	return dests.GetArray()
}

// Transitions Returns a copy of the transitions leaving s, keyed by symbol.
func (n *NFA) Transitions(s *State) map[Symbol][]*State {
	i, ok := n.index[s]
	if !ok {
		return nil
	}
	return n.transitionsAt(i)
}

// Table Returns a copy of the whole transition table.
func (n *NFA) Table() map[*State]map[Symbol][]*State {
	table := make(map[*State]map[Symbol][]*State, len(n.states))
	for i, s := range n.states {
		table[s] = n.transitionsAt(i)
	}
	return table
}

func (n *NFA) transitionsAt(i int) map[Symbol][]*State {
	out := make(map[Symbol][]*State, len(n.transitions[i]))
	for symbol, dests := range n.transitions[i] {
		out[symbol] = dests.GetArray()
	}
	return out
}

// Returns accept states. If bit i is set then the i'th added state is an accept state.
func (n *NFA) getAcceptStates() *bitset.BitSet {
	return n.isAccept
}

// Returns the single destination of the i'th state on symbol, as a state index, or -1 if there
// is none or it was never added. Only meaningful once IsDFA holds.
func (n *NFA) step(i int, symbol Symbol) int {
	dests, ok := n.transitions[i][symbol]
	if !ok || dests.Size() == 0 {
		return -1
	}
	if d, ok := n.index[dests.First()]; ok {
		return d
	}
	return -1
}

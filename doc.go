// Package nfa models finite automata over a fixed alphabet of symbols.
//
// An NFA is built by adding states and then transitions. States are compared by identity,
// never by name. IsDFA tells whether an automaton is deterministic and total, and Minimize
// merges equivalent states of a DFA by partition refinement, returning a new automaton.
//
// Errors:
//
//	ErrInvalidSymbol     - symbol not in the alphabet, or outside 0..unicode.MaxRune.
//	ErrUnknownState      - state or partition not from this automaton.
//	ErrNotDFA            - operation needs a deterministic automaton.
//	ErrOverlappingBlocks - partition groups share a state.
//	ErrNoFixpoint        - refinement exceeded its round bound.
package nfa

package nfa

import "errors"

var (
	// ErrInvalidSymbol indicates a symbol that is not declared in the alphabet, or that is not a
	// valid code point when building one.
	ErrInvalidSymbol = errors.New("nfa: symbol not in alphabet")
	// ErrUnknownState indicates a state that was never added to the automaton.
	ErrUnknownState = errors.New("nfa: state not in automaton")
	// ErrNotDFA indicates an operation that requires a deterministic automaton.
	ErrNotDFA = errors.New("nfa: automaton is not a DFA")
	// ErrOverlappingBlocks indicates a state placed in more than one block of a partition.
	ErrOverlappingBlocks = errors.New("nfa: state belongs to more than one block")
	// ErrNoFixpoint indicates partition refinement did not stabilise within its round bound.
	ErrNoFixpoint = errors.New("nfa: partition refinement did not reach a fixpoint")
)

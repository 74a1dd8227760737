package nfa

import "fmt"

// MakeEmpty
// Returns a new automaton over alphabet with a single non-accept state that
// loops on every symbol, so it accepts no strings.
func MakeEmpty(alphabet *Alphabet) (*NFA, *State, error) {
	return makeLoop(alphabet, "empty", false)
}

// MakeAnyString
// Returns a new automaton over alphabet that accepts all strings. Like every automaton built
// here it is a DFA unless the alphabet contains Epsilon.
func MakeAnyString(alphabet *Alphabet) (*NFA, *State, error) {
	return makeLoop(alphabet, "any", true)
}

// MakeString
// Returns a new (deterministic) automaton over alphabet that accepts only s. Inputs that
// leave the path of s fall into a non-accept sink state.
func MakeString(alphabet *Alphabet, s string) (*NFA, *State, error) {
	if alphabet == nil {
		alphabet = emptyAlphabet()
	}
	runes := []rune(s)
	for i, r := range runes {
		if !alphabet.Contains(Symbol(r)) {
			return nil, nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, r, i)
		}
	}

	n := New(alphabet)

	path := make([]*State, len(runes)+1)
	for i := range path {
		path[i] = NewState(fmt.Sprintf("q%d", i), i == len(runes))
	}
	sink := NewState("sink", false)
	n.AddState(path...)
	n.AddState(sink)

	symbols := alphabet.Symbols()
	for i, from := range path {
		for _, symbol := range symbols {
			to := sink
			if i < len(runes) && Symbol(runes[i]) == symbol {
				to = path[i+1]
			}
			if err := n.AddTransition(from, symbol, to); err != nil {
				return nil, nil, err
			}
		}
	}
	for _, symbol := range symbols {
		if err := n.AddTransition(sink, symbol, sink); err != nil {
			return nil, nil, err
		}
	}
	return n, path[0], nil
}

func makeLoop(alphabet *Alphabet, name string, accept bool) (*NFA, *State, error) {
	if alphabet == nil {
		alphabet = emptyAlphabet()
	}
	n := New(alphabet)
	s := NewState(name, accept)
	n.AddState(s)
	for _, symbol := range alphabet.Symbols() {
		if err := n.AddTransition(s, symbol, s); err != nil {
			return nil, nil, err
		}
	}
	return n, s, nil
}

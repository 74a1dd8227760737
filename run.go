package nfa

import "fmt"

// Run Returns true if the DFA n, started in start, ends in an accept state after reading s.
func Run(n *NFA, start *State, s string) (bool, error) {
	if !n.IsDFA() {
		return false, ErrNotDFA
	}
	if !n.HasState(start) {
		return false, fmt.Errorf("%w: start %v", ErrUnknownState, start)
	}

	state := start
	for _, v := range s {
		symbol := Symbol(v)
		if !n.alphabet.Contains(symbol) {
			return false, fmt.Errorf("%w: %q", ErrInvalidSymbol, v)
		}
		i, ok := n.index[state]
		if !ok {
			// Reached a destination that was never added; it has no transitions to follow.
			return false, fmt.Errorf("%w: %v on %q", ErrUnknownState, state, v)
		}
		state = n.transitions[i][symbol].First()
	}
	return state.Accept(), nil
}

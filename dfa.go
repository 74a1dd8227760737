package nfa

// IsDFA Returns true if this automaton is deterministic: the alphabet has no epsilon, every
// state has a transition on every symbol, and every transition has exactly one destination.
func (n *NFA) IsDFA() bool {
	// Non-consuming moves rule out determinism whatever the transitions look like.
	if n.alphabet.HasEpsilon() {
		return false
	}

	symbols := n.alphabet.Symbols()
	for i := range n.states {
		for _, symbol := range symbols {
			if _, ok := n.transitions[i][symbol]; !ok {
				return false
			}
		}
		for _, dests := range n.transitions[i] {
			if dests.Size() != 1 {
				return false
			}
		}
	}
	return true
}

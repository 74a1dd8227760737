package nfa

// StateSet Destination states for one (state, symbol) entry. Members keep insertion order and
// are deduplicated by identity.
type StateSet struct {
	states []*State
	index  map[*State]struct{}
}

func NewStateSet(states ...*State) *StateSet {
	set := &StateSet{
		states: make([]*State, 0, len(states)),
		index:  make(map[*State]struct{}, len(states)),
	}
	for _, s := range states {
		set.Add(s)
	}
	return set
}

// Add Adds state to the set; returns false if it was already present.
func (s *StateSet) Add(state *State) bool {
	if _, ok := s.index[state]; ok {
		return false
	}
	s.index[state] = struct{}{}
	s.states = append(s.states, state)
	return true
}

func (s *StateSet) Contains(state *State) bool {
	_, ok := s.index[state]
	return ok
}

func (s *StateSet) Size() int {
	return len(s.states)
}

// First Returns the earliest added member, or nil for an empty set.
func (s *StateSet) First() *State {
	if len(s.states) == 0 {
		return nil
	}
	return s.states[0]
}

// GetArray Returns a copy of the members in insertion order.
func (s *StateSet) GetArray() []*State {
	out := make([]*State, len(s.states))
	copy(out, s.states)
	return out
}

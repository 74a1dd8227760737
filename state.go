package nfa

// State A named state with an accept flag. States are compared by identity: the pointer
// returned by NewState is the state's handle, and two states created with the same name and
// accept flag remain distinct.
type State struct {
	name   string
	accept bool
}

// NewState Create a new state.
func NewState(name string, accept bool) *State {
	return &State{name: name, accept: accept}
}

// Name Returns the display name. It plays no part in identity.
func (s *State) Name() string {
	return s.name
}

// Accept Returns true if this state is an accept state.
func (s *State) Accept() bool {
	return s.accept
}

func (s *State) String() string {
	return s.name
}

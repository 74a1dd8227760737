package nfa

import (
	"fmt"
	"strings"
)

// Reduction The result of minimizing an automaton.
type Reduction struct {
	// Automaton is the reduced automaton. It shares unmerged states with the input.
	Automaton *NFA

	// Partition is the stable partition of the input's states.
	Partition *Partition

	// Rounds is the number of refinement rounds run.
	Rounds int

	redirect map[*State]*State
}

// Redirect Returns the state of the reduced automaton that stands for s, or nil if s is not a
// state of the input.
func (r *Reduction) Redirect(s *State) *State {
	return r.redirect[s]
}

// Minimize Returns a new automaton in which every class of equivalent states is merged into
// one state. The receiver must be a DFA and is not modified.
func (n *NFA) Minimize(opts ...Option) (*NFA, error) {
	r, err := n.Reduce(opts...)
	if err != nil {
		return nil, err
	}
	return r.Automaton, nil
}

// Reduce Like Minimize, but also returns the partition and the mapping from old states to
// new ones.
func (n *NFA) Reduce(opts ...Option) (*Reduction, error) {
	refiner, err := NewRefiner(n, opts...)
	if err != nil {
		return nil, err
	}

	partition, rounds, err := refiner.Refine(refiner.Initial())
	if err != nil {
		return nil, err
	}

	redirect := redirectStates(partition)
	reduced, err := n.rebuild(redirect)
	if err != nil {
		return nil, err
	}

	refiner.logger.Debug("reduced automaton",
		"states", n.NumStates(),
		"reduced_states", reduced.NumStates(),
		"rounds", rounds)

	return &Reduction{
		Automaton: reduced,
		Partition: partition,
		Rounds:    rounds,
		redirect:  redirect,
	}, nil
}

// Maps every state to its representative: itself when alone in its block, otherwise one new
// aggregate state per block.
func redirectStates(p *Partition) map[*State]*State {
	redirect := make(map[*State]*State, p.nfa.NumStates())
	for i := 0; i < p.Len(); i++ {
		members := p.Block(i)
		if len(members) == 1 {
			redirect[members[0]] = members[0]
			continue
		}

		aggregate := newAggregateState(members)
		for _, s := range members {
			redirect[s] = aggregate
		}
	}
	return redirect
}

// Backslash-escapes the characters that delimit an aggregate name, so a member named "{a,b}"
// stays distinguishable from members "{a" and "b}".
var aggregateNameEscaper = strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`, `,`, `\,`)

// Members arrive in insertion order, so the name is the same on every run.
func newAggregateState(members []*State) *State {
	names := make([]string, len(members))
	accept := false
	for i, s := range members {
		names[i] = aggregateNameEscaper.Replace(s.Name())
		accept = accept || s.Accept()
	}
	return NewState("{"+strings.Join(names, ",")+"}", accept)
}

func (n *NFA) rebuild(redirect map[*State]*State) (*NFA, error) {
	out := New(n.alphabet.Clone())
	symbols := n.alphabet.Symbols()

	for i, s := range n.states {
		from := redirect[s]
		out.AddState(from)
		for _, symbol := range symbols {
			dests, ok := n.transitions[i][symbol]
			if !ok {
				continue
			}
			// Destinations that were never added have no representative and are kept as is.
			to := dests.First()
			if r, ok := redirect[to]; ok {
				to = r
			}
			if err := out.AddTransition(from, symbol, to); err != nil {
				return nil, fmt.Errorf("rebuild %v: %w", s, err)
			}
		}
	}
	return out, nil
}

package nfa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// edges maps a source state to its destinations, one per symbol of symbols.
type edges map[*State][]*State

func newAlphabet(t *testing.T, symbols ...Symbol) *Alphabet {
	t.Helper()
	a, err := NewAlphabet(symbols...)
	require.NoError(t, err)
	return a
}

func newNFA(t *testing.T, symbols ...Symbol) *NFA {
	t.Helper()
	n, err := NewWithSymbols(symbols...)
	require.NoError(t, err)
	return n
}

func buildNFA(t *testing.T, symbols []Symbol, states []*State, transitions edges) *NFA {
	t.Helper()
	n := newNFA(t, symbols...)
	n.AddState(states...)
	for _, s := range states {
		for k, d := range transitions[s] {
			require.NoError(t, n.AddTransition(s, symbols[k], d))
		}
	}
	return n
}

type scenarioC struct {
	n                  *NFA
	s0, s1, s2, s3, s4 *State
}

func newScenarioC(t *testing.T) scenarioC {
	s0 := NewState("s0", false)
	s1 := NewState("s1", false)
	s2 := NewState("s2", false)
	s3 := NewState("s3", false)
	s4 := NewState("s4", true)
	n := buildNFA(t, []Symbol{'0', '1'}, []*State{s0, s1, s2, s3, s4}, edges{
		s0: {s1, s3},
		s1: {s2, s4},
		s2: {s1, s4},
		s3: {s2, s4},
		s4: {s4, s4},
	})
	return scenarioC{n: n, s0: s0, s1: s1, s2: s2, s3: s3, s4: s4}
}

// randomDFA builds a total DFA with numStates states over {a, b, c}.
func randomDFA(t *testing.T, rng *rand.Rand, numStates int) *NFA {
	symbols := []Symbol{'a', 'b', 'c'}
	states := make([]*State, numStates)
	for i := range states {
		states[i] = NewState(string(rune('A'+i%26))+string(rune('0'+i/26)), rng.Intn(3) == 0)
	}
	transitions := make(edges, numStates)
	for _, s := range states {
		dests := make([]*State, len(symbols))
		for k := range dests {
			dests[k] = states[rng.Intn(numStates)]
		}
		transitions[s] = dests
	}
	return buildNFA(t, symbols, states, transitions)
}

// words returns every string over symbols of length at most maxLen.
func words(symbols []Symbol, maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for l := 0; l < maxLen; l++ {
		next := make([]string, 0, len(frontier)*len(symbols))
		for _, w := range frontier {
			for _, s := range symbols {
				next = append(next, w+string(rune(s)))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

package nfa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNFA_Minimize(t *testing.T) {
	t.Run("already minimal", func(t *testing.T) {
		s0 := NewState("s0", false)
		s1 := NewState("s1", true)
		n := buildNFA(t, []Symbol{'0', '1'}, []*State{s0, s1}, edges{
			s0: {s1, s0},
			s1: {s0, s1},
		})

		m, err := n.Minimize()
		require.NoError(t, err)
		assert.Equal(t, 2, m.NumStates())
		assert.Equal(t, []*State{s1}, m.Destinations(s0, '0'))
		assert.Equal(t, []*State{s0}, m.Destinations(s0, '1'))
		assert.Equal(t, []*State{s0}, m.Destinations(s1, '0'))
		assert.True(t, m.IsDFA())
	})

	t.Run("all states equivalent", func(t *testing.T) {
		s0 := NewState("s0", false)
		s1 := NewState("s1", false)
		n := buildNFA(t, []Symbol{'0', '1'}, []*State{s0, s1}, edges{
			s0: {s1, s0},
			s1: {s0, s1},
		})

		m, err := n.Minimize()
		require.NoError(t, err)
		require.Equal(t, 1, m.NumStates())

		merged := m.States()[0]
		assert.Equal(t, "{s0,s1}", merged.Name())
		assert.False(t, merged.Accept())
		assert.Equal(t, []*State{merged}, m.Destinations(merged, '0'))
		assert.Equal(t, []*State{merged}, m.Destinations(merged, '1'))
	})

	t.Run("k-equivalence classes", func(t *testing.T) {
		c := newScenarioC(t)

		r, err := c.n.Reduce()
		require.NoError(t, err)
		m := r.Automaton
		require.Equal(t, 3, m.NumStates())
		assert.Equal(t, [][]*State{{c.s0}, {c.s1, c.s2, c.s3}, {c.s4}}, r.Partition.Blocks())

		assert.Same(t, c.s0, r.Redirect(c.s0))
		assert.Same(t, c.s4, r.Redirect(c.s4))
		merged := r.Redirect(c.s1)
		assert.Same(t, merged, r.Redirect(c.s2))
		assert.Same(t, merged, r.Redirect(c.s3))
		assert.Equal(t, "{s1,s2,s3}", merged.Name())
		assert.False(t, merged.Accept())
		assert.Nil(t, r.Redirect(NewState("s1", false)))

		assert.Equal(t, []*State{c.s4}, m.Destinations(c.s4, '0'))
		assert.Equal(t, []*State{c.s4}, m.Destinations(c.s4, '1'))
		assert.Equal(t, []*State{merged}, m.Destinations(c.s0, '0'))
		assert.Equal(t, []*State{merged}, m.Destinations(merged, '0'))
		assert.Equal(t, []*State{c.s4}, m.Destinations(merged, '1'))
		assert.True(t, m.IsDFA())
	})

	t.Run("not a DFA", func(t *testing.T) {
		s1 := NewState("s1", true)
		n := newNFA(t, 'a', 'b')
		n.AddState(s1)
		require.NoError(t, n.AddTransition(s1, 'a', s1))

		m, err := n.Minimize()
		assert.ErrorIs(t, err, ErrNotDFA)
		assert.Nil(t, m)
	})

	t.Run("epsilon alphabet", func(t *testing.T) {
		_, err := newNFA(t, 'a', Epsilon).Minimize()
		assert.ErrorIs(t, err, ErrNotDFA)
	})

	t.Run("empty automaton", func(t *testing.T) {
		m, err := newNFA(t, 'a').Minimize()
		require.NoError(t, err)
		assert.Equal(t, 0, m.NumStates())
		assert.Equal(t, []Symbol{'a'}, m.Alphabet().Symbols())
	})
}

func TestNFA_MinimizeForeignDestination(t *testing.T) {
	// out is a destination but was never added as a state.
	s0 := NewState("s0", false)
	s1 := NewState("s1", false)
	out := NewState("out", true)
	n := buildNFA(t, []Symbol{'a'}, []*State{s0, s1}, edges{
		s0: {out},
		s1: {out},
	})
	require.True(t, n.IsDFA())

	for _, strategy := range []Strategy{StrategySignature, StrategyEscape} {
		r, err := n.Reduce(WithStrategy(strategy))
		require.NoError(t, err)
		require.Equal(t, 1, r.Automaton.NumStates(), strategy.String())
		merged := r.Redirect(s0)
		assert.Equal(t, "{s0,s1}", merged.Name())
		assert.Equal(t, []*State{out}, r.Automaton.Destinations(merged, 'a'))
		assert.Nil(t, r.Redirect(out))
	}

	ok, err := Run(n, s0, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = Run(n, s0, "aa")
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestNFA_MinimizeAggregateNameEscaping(t *testing.T) {
	mergedName := func(names ...string) string {
		states := make([]*State, len(names))
		loops := edges{}
		for i, name := range names {
			states[i] = NewState(name, false)
			loops[states[i]] = []*State{states[i]}
		}
		n := buildNFA(t, []Symbol{'a'}, states, loops)
		r, err := n.Reduce()
		require.NoError(t, err)
		require.Equal(t, 1, r.Automaton.NumStates())
		return r.Redirect(states[0]).Name()
	}

	nested := mergedName("{a,b}", "c")
	split := mergedName("{a", "b}", "c")
	assert.Equal(t, `{\{a\,b\},c}`, nested)
	assert.Equal(t, `{\{a,b\},c}`, split)
	assert.NotEqual(t, nested, split)
	assert.Equal(t, `{x\\,y}`, mergedName(`x\`, "y"))
}

func TestNFA_MinimizeDoesNotMutate(t *testing.T) {
	c := newScenarioC(t)
	before := c.n.String()
	table := c.n.Table()

	_, err := c.n.Minimize()
	require.NoError(t, err)

	assert.Equal(t, before, c.n.String())
	assert.Equal(t, table, c.n.Table())
	assert.Equal(t, 5, c.n.NumStates())
}

func TestNFA_MinimizeAggregateAccept(t *testing.T) {
	// a and b are equivalent accept states; the merged state must accept.
	start := NewState("start", false)
	a := NewState("a", true)
	b := NewState("b", true)
	n := buildNFA(t, []Symbol{'x'}, []*State{start, a, b}, edges{
		start: {a},
		a:     {b},
		b:     {a},
	})

	r, err := n.Reduce()
	require.NoError(t, err)
	assert.Equal(t, 2, r.Automaton.NumStates())
	merged := r.Redirect(a)
	assert.Equal(t, "{a,b}", merged.Name())
	assert.True(t, merged.Accept())
}

func TestNFA_MinimizeNamesAreStable(t *testing.T) {
	names := func() []string {
		c := newScenarioC(t)
		m, err := c.n.Minimize()
		require.NoError(t, err)
		out := make([]string, 0, m.NumStates())
		for _, s := range m.States() {
			out = append(out, s.Name())
		}
		return out
	}

	first := names()
	assert.Equal(t, []string{"s0", "{s1,s2,s3}", "s4"}, first)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, names())
	}
}

func TestNFA_MinimizeEscapeStrategy(t *testing.T) {
	// The escape rule merges p and q although they lead to different blocks, so the merged
	// state inherits both destinations.
	us := newUnderSplit(t)
	r, err := us.n.Reduce(WithStrategy(StrategyEscape))
	require.NoError(t, err)

	merged := r.Redirect(us.p)
	assert.Equal(t, "{p,q}", merged.Name())
	assert.Equal(t, 3, r.Automaton.NumStates())
	assert.Equal(t, []*State{us.r, us.u}, r.Automaton.Destinations(merged, 'a'))
	assert.False(t, r.Automaton.IsDFA())

	exact, err := us.n.Minimize()
	require.NoError(t, err)
	assert.Equal(t, 4, exact.NumStates())
}

func TestNFA_MinimizePreservesLanguage(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inputs := words([]Symbol{'a', 'b', 'c'}, 5)

	for i := 0; i < 30; i++ {
		n := randomDFA(t, rng, 1+rng.Intn(10))
		r, err := n.Reduce()
		require.NoError(t, err)
		require.True(t, r.Automaton.IsDFA())
		require.LessOrEqual(t, r.Automaton.NumStates(), n.NumStates())
		require.LessOrEqual(t, r.Rounds, n.NumStates())

		for _, start := range n.States() {
			for _, w := range inputs {
				want, err := Run(n, start, w)
				require.NoError(t, err)
				got, err := Run(r.Automaton, r.Redirect(start), w)
				require.NoError(t, err)
				require.Equal(t, want, got, "start %v, input %q", start, w)
			}
		}

		again, err := r.Automaton.Minimize()
		require.NoError(t, err)
		assert.Equal(t, r.Automaton.NumStates(), again.NumStates())
	}
}

package nfa

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bits-and-blooms/bitset"
)

// Symbol is a single input character.
type Symbol rune

// Epsilon marks a move that consumes no input.
const Epsilon Symbol = 'λ'

func (s Symbol) String() string {
	return string(rune(s))
}

// Alphabet An immutable set of symbols. Membership is kept in a bitset indexed by code point,
// so iterating the set always yields symbols in ascending order.
type Alphabet struct {
	bits    *bitset.BitSet
	symbols []Symbol
}

// NewAlphabet Create an alphabet from the given symbols; duplicates collapse. Fails with
// ErrInvalidSymbol if a symbol lies outside 0..unicode.MaxRune.
func NewAlphabet(symbols ...Symbol) (*Alphabet, error) {
	bits := bitset.New(0)
	for _, s := range symbols {
		if s < 0 || s > unicode.MaxRune {
			return nil, fmt.Errorf("%w: %d outside 0..%d", ErrInvalidSymbol, int32(s), unicode.MaxRune)
		}
		bits.Set(uint(s))
	}

	sorted := make([]Symbol, 0, bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		sorted = append(sorted, Symbol(i))
	}

	return &Alphabet{
		bits:    bits,
		symbols: sorted,
	}, nil
}

func emptyAlphabet() *Alphabet {
	return &Alphabet{
		bits:    bitset.New(0),
		symbols: []Symbol{},
	}
}

// Contains Returns true if symbol belongs to this alphabet.
func (a *Alphabet) Contains(symbol Symbol) bool {
	if symbol < 0 || symbol > unicode.MaxRune {
		return false
	}
	return a.bits.Test(uint(symbol))
}

// HasEpsilon Returns true if the alphabet offers non-consuming moves.
func (a *Alphabet) HasEpsilon() bool {
	return a.Contains(Epsilon)
}

// Len How many symbols this alphabet has.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols Returns a copy of the symbols in ascending order.
func (a *Alphabet) Symbols() []Symbol {
	out := make([]Symbol, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Clone Returns an alphabet with the same symbols that shares no storage with a.
func (a *Alphabet) Clone() *Alphabet {
	return &Alphabet{
		bits:    a.bits.Clone(),
		symbols: a.Symbols(),
	}
}

func (a *Alphabet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, s := range a.symbols {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(rune(s))
	}
	sb.WriteByte('}')
	return sb.String()
}

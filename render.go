package nfa

import "strings"

const (
	renderHeader = "----------------NFA-------------------"
	renderFooter = "--------------------------------------"
)

// String Renders one line per state, in insertion order, listing its transitions as
// [symbol: destinations] with symbols in ascending order.
func (n *NFA) String() string {
	var sb strings.Builder
	sb.WriteString(renderHeader)

	symbols := n.alphabet.Symbols()
	for i, s := range n.states {
		sb.WriteByte('\n')
		sb.WriteString(s.Name())
		sb.WriteByte('\t')
		for _, symbol := range symbols {
			dests, ok := n.transitions[i][symbol]
			if !ok {
				continue
			}
			sb.WriteByte('[')
			sb.WriteRune(rune(symbol))
			sb.WriteByte(':')
			for _, d := range dests.states {
				sb.WriteByte(' ')
				sb.WriteString(d.Name())
			}
			sb.WriteByte(']')
		}
	}

	sb.WriteByte('\n')
	sb.WriteString(renderFooter)
	return sb.String()
}

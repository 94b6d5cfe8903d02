package fa

import "golang.org/x/exp/slices"

// dead stands for the implicit rejecting sink of a partial DFA.
const dead = -1

func (d *DFA) next(id int, symbol rune) int {
	if id == dead {
		return dead
	}
	if to, ok := d.Step(id, symbol); ok {
		return to
	}
	return dead
}

// Equivalent reports whether a and b accept the same language. Symbols
// outside a DFA's alphabet are rejected by that DFA.
//
// The check walks the product automaton breadth-first and stops at the
// first pair of states which disagree on acceptance.
func Equivalent(a, b *DFA) bool {
	type pair struct{ i, j int }
	alpha := append(a.Alphabet(), b.alphabet...)
	slices.Sort(alpha)
	alpha = slices.Compact(alpha)

	start := pair{a.Start, b.Start}
	seen := map[pair]bool{start: true}
	queue := []pair{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if a.IsAccepting(p.i) != b.IsAccepting(p.j) {
			tracer().Debugf("automata differ at product state (%d,%d)", p.i, p.j)
			return false
		}
		for _, c := range alpha {
			np := pair{a.next(p.i, c), b.next(p.j, c)}
			if np.i == dead && np.j == dead {
				continue
			}
			if !seen[np] {
				seen[np] = true
				queue = append(queue, np)
			}
		}
	}
	return true
}

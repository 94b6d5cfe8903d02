/*
Package fa compiles postfix regular expressions into finite automata.

Compilation runs in two stages. Compile reads a postfix expression and
builds a Thompson NFA: every literal becomes a two-state automaton, and the
operators for concatenation, union and Kleene star glue partial automata
together with epsilon edges. Determinize then runs the subset construction
over an explicit alphabet and yields a DFA, whose states are numbered
from 0 (the epsilon-closure of the NFA start state).

	nfa, err := fa.Compile("ab|*c.")
	if err != nil {
		...
	}
	dfa, err := fa.Determinize(nfa, nfa.Alphabet())
	dfa.Accepts("abbac") // true

States live in an arena owned by a single Graph. Each call to Compile
creates its own Graph, so independent compilations never share state.

Tracing goes to the key "automata.fa".
*/
package fa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to automata.fa .
func tracer() tracing.Trace {
	return tracing.Select("automata.fa")
}

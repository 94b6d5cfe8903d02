package fa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ExportDOT writes a Graphviz representation of an *NFA or a *DFA to w.
// Output order is deterministic.
func ExportDOT(w io.Writer, g interface{}) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	switch t := g.(type) {

	case *DFA:
		for id := 0; id < t.NumStates(); id++ {
			fmt.Fprintf(bw, "    q%d [shape=%s];\n", id, shape(t.IsAccepting(id)))
			for _, c := range t.alphabet {
				if to, ok := t.Step(id, c); ok {
					fmt.Fprintf(bw, "    q%d -> q%d [label=%s];\n", id, to, strconv.Quote(string(c)))
				}
			}
		}
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", t.Start)

	case *NFA:
		for _, s := range t.reachable() {
			fmt.Fprintf(bw, "    n%d [shape=%s];\n", s, shape(s == t.accept))
			t.g.eachEdge(s, func(l Label, to StateID) {
				fmt.Fprintf(bw, "    n%d -> n%d [label=%s];\n", s, to, strconv.Quote(l.String()))
			})
		}
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> n%d;\n", t.start)

	default:
		return fmt.Errorf("cannot export %T as DOT", g)
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func shape(accept bool) string {
	if accept {
		return "doublecircle"
	}
	return "circle"
}

// WriteNFA prints every state reachable from the NFA's start state with
// its outgoing edges.
func WriteNFA(w io.Writer, n *NFA) error {
	bw := bufio.NewWriter(w)
	for _, s := range n.reachable() {
		mark := ""
		switch s {
		case n.start:
			mark = " (START)"
		case n.accept:
			mark = " (ACCEPT)"
		}
		fmt.Fprintf(bw, "State %d%s:\n", s, mark)
		n.g.eachEdge(s, func(l Label, to StateID) {
			fmt.Fprintf(bw, "  --[%s]--> State %d\n", l, to)
		})
	}
	return bw.Flush()
}

// WriteTable prints the start state, the accepting states and the
// transition table of d.
func WriteTable(w io.Writer, d *DFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Start State: %d\n", d.Start)
	fmt.Fprintf(bw, "Accept States: %v\n", d.AcceptIDs())
	fmt.Fprintln(bw, "Transitions:")
	for id := 0; id < d.NumStates(); id++ {
		mark := ""
		if d.IsAccepting(id) {
			mark = " (ACCEPT)"
		}
		fmt.Fprintf(bw, "  State %d%s: %v\n", id, mark, d.subsets[id])
		for _, c := range d.alphabet {
			if to, ok := d.Step(id, c); ok {
				fmt.Fprintf(bw, "    --[%c]--> State %d\n", c, to)
			}
		}
	}
	return bw.Flush()
}

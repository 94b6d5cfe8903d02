package fa

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slices"
)

// DFA is the result of the subset construction. State 0 is the start
// state. Table maps every state to its outgoing transitions; a symbol
// missing from a row means the input is rejected. Every state has a row,
// possibly empty.
//
// A DFA is read-only once Determinize has returned it. Callers must not
// modify Table or Accepting; Subset and Alphabet return copies.
type DFA struct {
	Start     int
	Table     map[int]map[rune]int
	Accepting map[int]struct{}

	alphabet []rune
	subsets  []StateSet // DFA state id -> NFA states it stands for
}

// Determinize converts nfa into a DFA over alphabet by subset
// construction. The alphabet is iterated in ascending order; duplicates
// are ignored. It is an error for the alphabet to contain Epsilon.
//
// An empty alphabet yields a single-state DFA which accepts only the
// empty word, and only if the NFA does.
func Determinize(nfa *NFA, alphabet []rune, opts ...Option) (*DFA, error) {
	cfg := configure(opts)
	alpha := slices.Clone(alphabet)
	for _, a := range alpha {
		if Label(a) == Epsilon {
			return nil, fmt.Errorf("%w: alphabet contains ε", ErrInvalidSymbol)
		}
	}
	slices.Sort(alpha)
	alpha = slices.Compact(alpha)

	g := nfa.g
	d := &DFA{
		Start:     0,
		Table:     make(map[int]map[rune]int),
		Accepting: make(map[int]struct{}),
		alphabet:  alpha,
	}
	ids := make(map[string]int)
	discover := func(s StateSet) (int, bool) {
		k := s.key()
		if id, ok := ids[k]; ok {
			return id, false
		}
		id := len(d.subsets)
		ids[k] = id
		d.subsets = append(d.subsets, s)
		return id, true
	}

	work := newWorklist(cfg.order)
	start, _ := discover(EpsilonClosure(g, NewStateSet(nfa.start)))
	work.push(start)
	for !work.empty() {
		id := work.pop()
		cur := d.subsets[id]
		if cur.Contains(nfa.accept) {
			d.Accepting[id] = struct{}{}
		}
		row := make(map[rune]int)
		d.Table[id] = row
		for _, a := range alpha {
			next := EpsilonClosure(g, move(g, cur, Label(a)))
			if next.Empty() {
				continue
			}
			to, isNew := discover(next)
			if isNew {
				work.push(to)
			}
			row[a] = to
		}
		tracer().P("subset", cur).Debugf("DFA state %d: %d transitions", id, len(row))
	}
	tracer().P("order", cfg.order).Infof("subset construction: %d NFA states -> %d DFA states",
		g.Len(), len(d.subsets))
	return d, nil
}

// NumStates is the number of DFA states.
func (d *DFA) NumStates() int {
	return len(d.subsets)
}

// Alphabet returns the symbols the DFA was built over, ascending.
func (d *DFA) Alphabet() []rune {
	return slices.Clone(d.alphabet)
}

// Subset returns the NFA states DFA state id stands for.
func (d *DFA) Subset(id int) StateSet {
	if id < 0 || id >= len(d.subsets) {
		return nil
	}
	return slices.Clone(d.subsets[id])
}

// IsAccepting reports whether id is an accepting state.
func (d *DFA) IsAccepting(id int) bool {
	_, ok := d.Accepting[id]
	return ok
}

// AcceptIDs lists the accepting states in ascending order.
func (d *DFA) AcceptIDs() []int {
	ids := make([]int, 0, len(d.Accepting))
	for id := range d.Accepting {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Step returns the target of id on symbol. ok is false if there is no
// such transition.
func (d *DFA) Step(id int, symbol rune) (to int, ok bool) {
	row, ok := d.Table[id]
	if !ok {
		return 0, false
	}
	to, ok = row[symbol]
	return to, ok
}

// Run feeds word to the DFA starting in state 0. It returns the state
// reached, or ok == false if some symbol had no transition.
func (d *DFA) Run(word string) (id int, ok bool) {
	id = d.Start
	for _, r := range word {
		if id, ok = d.Step(id, r); !ok {
			return 0, false
		}
	}
	return id, true
}

// Accepts reports whether the DFA accepts word.
func (d *DFA) Accepts(word string) bool {
	id, ok := d.Run(word)
	return ok && d.IsAccepting(id)
}

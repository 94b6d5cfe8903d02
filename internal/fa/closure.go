package fa

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/slices"
)

// StateSet is a set of NFA states in canonical form: ascending and
// free of duplicates. Two StateSets holding the same states are equal
// element by element and have the same key.
type StateSet []StateID

// NewStateSet canonicalizes ids into a StateSet. ids is not modified.
func NewStateSet(ids ...StateID) StateSet {
	s := slices.Clone(ids)
	slices.Sort(s)
	return slices.Compact(s)
}

// Len is the number of states in s.
func (s StateSet) Len() int { return len(s) }

// Empty is true for the empty set.
func (s StateSet) Empty() bool { return len(s) == 0 }

// Contains reports whether id is a member of s.
func (s StateSet) Contains(id StateID) bool {
	_, found := slices.BinarySearch(s, id)
	return found
}

// Equal reports whether s and t hold the same states.
func (s StateSet) Equal(t StateSet) bool {
	return slices.Equal(s, t)
}

// SubsetOf reports whether every member of s is a member of t.
func (s StateSet) SubsetOf(t StateSet) bool {
	for _, id := range s {
		if !t.Contains(id) {
			return false
		}
	}
	return true
}

func (s StateSet) key() string {
	return fmt.Sprint([]StateID(s))
}

func (s StateSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", id)
	}
	b.WriteByte('}')
	return b.String()
}

// EpsilonClosure returns the smallest superset of s which is closed
// under epsilon edges. s need not be canonical; the result always is.
func EpsilonClosure(g *Graph, s StateSet) StateSet {
	visited := treeset.NewWithIntComparator() // holds int, ordered
	stack := arraystack.New()
	visit := func(id StateID) {
		if !visited.Contains(int(id)) {
			visited.Add(int(id))
			stack.Push(id)
		}
	}
	for _, id := range s {
		visit(id)
	}
	for !stack.Empty() {
		v, _ := stack.Pop()
		for _, to := range g.Edges(v.(StateID), Epsilon) {
			visit(to)
		}
	}
	closure := make(StateSet, 0, visited.Size())
	for _, v := range visited.Values() {
		closure = append(closure, StateID(v.(int)))
	}
	return closure
}

// Move returns the states reachable from s over exactly one edge
// labelled symbol. It does not apply the epsilon-closure.
// Moving on Epsilon is an error.
func Move(g *Graph, s StateSet, symbol Label) (StateSet, error) {
	if symbol == Epsilon {
		return nil, fmt.Errorf("%w: cannot move on ε", ErrInvalidSymbol)
	}
	return move(g, s, symbol), nil
}

func move(g *Graph, s StateSet, symbol Label) StateSet {
	var targets []StateID
	for _, id := range s {
		targets = append(targets, g.Edges(id, symbol)...)
	}
	return NewStateSet(targets...)
}

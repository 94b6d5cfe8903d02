package fa

import "fmt"

// StateID identifies a state inside the Graph that created it.
type StateID int

// Label is an edge label. It is either an alphabet symbol or Epsilon.
type Label rune

// Epsilon labels edges which are taken without consuming input.
// No rune read from an expression can be equal to it.
const Epsilon Label = -1

func (l Label) String() string {
	if l == Epsilon {
		return "ε"
	}
	return string(rune(l))
}

type edge struct {
	label Label
	to    StateID
}

type state struct {
	edges []edge // insertion order
}

// Graph is an append-only arena of states. States are addressed by
// their index; there is no way to remove a state or an edge.
//
// A Graph is not safe for concurrent mutation. Automata built from
// different Graphs are independent of each other.
type Graph struct {
	states []state
	nedges int
}

// NewGraph creates an empty state arena.
func NewGraph() *Graph {
	return &Graph{}
}

// NewState appends a fresh state without edges.
func (g *Graph) NewState() StateID {
	g.states = append(g.states, state{})
	return StateID(len(g.states) - 1)
}

// AddEdge appends an edge from -> to with the given label.
// Parallel edges and self loops are legal.
func (g *Graph) AddEdge(from StateID, label Label, to StateID) {
	g.mustHave(from)
	g.mustHave(to)
	g.states[from].edges = append(g.states[from].edges, edge{label: label, to: to})
	g.nedges++
}

// Edges returns the targets of all edges leaving from with the given
// label, in the order they were added.
func (g *Graph) Edges(from StateID, label Label) []StateID {
	g.mustHave(from)
	var out []StateID
	for _, e := range g.states[from].edges {
		if e.label == label {
			out = append(out, e.to)
		}
	}
	return out
}

// Labels returns the distinct labels on edges leaving from, in order of
// first appearance.
func (g *Graph) Labels(from StateID) []Label {
	g.mustHave(from)
	var out []Label
	seen := map[Label]bool{}
	for _, e := range g.states[from].edges {
		if !seen[e.label] {
			seen[e.label] = true
			out = append(out, e.label)
		}
	}
	return out
}

// Len is the number of states in the arena.
func (g *Graph) Len() int {
	return len(g.states)
}

// EdgeCount is the number of edges in the arena.
func (g *Graph) EdgeCount() int {
	return g.nedges
}

func (g *Graph) eachEdge(from StateID, fn func(Label, StateID)) {
	for _, e := range g.states[from].edges {
		fn(e.label, e.to)
	}
}

func (g *Graph) mustHave(id StateID) {
	if id < 0 || int(id) >= len(g.states) {
		panic(fmt.Sprintf("fa: state %d not in graph of %d states", id, len(g.states)))
	}
}

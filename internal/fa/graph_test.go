package fa

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestNewStateIsFresh(t *testing.T) {
	g := NewGraph()
	seen := map[StateID]bool{}
	for i := 0; i < 10; i++ {
		s := g.NewState()
		if seen[s] {
			t.Fatalf("state id %d handed out twice", s)
		}
		seen[s] = true
		if labels := g.Labels(s); len(labels) != 0 {
			t.Fatalf("fresh state %d has edges %v", s, labels)
		}
	}
	if g.Len() != 10 {
		t.Fatalf("want 10 states, have %d", g.Len())
	}
}

func TestAddEdgeKeepsInsertionOrder(t *testing.T) {
	g := NewGraph()
	s0, s1, s2, s3 := g.NewState(), g.NewState(), g.NewState(), g.NewState()
	g.AddEdge(s0, 'a', s2)
	g.AddEdge(s0, Epsilon, s3)
	g.AddEdge(s0, 'a', s1)
	g.AddEdge(s0, 'a', s2) // parallel edge
	g.AddEdge(s0, 'b', s0) // self loop

	if got := g.Edges(s0, 'a'); !slices.Equal(got, []StateID{s2, s1, s2}) {
		t.Fatalf("edges on 'a' = %v", got)
	}
	if got := g.Edges(s0, Epsilon); !slices.Equal(got, []StateID{s3}) {
		t.Fatalf("ε edges = %v", got)
	}
	if got := g.Labels(s0); !slices.Equal(got, []Label{'a', Epsilon, 'b'}) {
		t.Fatalf("labels = %v", got)
	}
	if g.EdgeCount() != 5 {
		t.Fatalf("want 5 edges, have %d", g.EdgeCount())
	}
	if got := g.Edges(s1, 'a'); len(got) != 0 {
		t.Fatalf("s1 should have no edges, has %v", got)
	}
}

func TestAddEdgeUnknownStatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for edge to unknown state")
		}
	}()
	g := NewGraph()
	s := g.NewState()
	g.AddEdge(s, 'a', 7)
}

func TestLabelString(t *testing.T) {
	if Epsilon.String() != "ε" {
		t.Errorf("Epsilon prints as %q", Epsilon.String())
	}
	if Label('x').String() != "x" {
		t.Errorf("'x' prints as %q", Label('x').String())
	}
}

package fa

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/slices"

	"automata/internal/postfix"
)

// NFA is a Thompson automaton: a start state and a single accept state
// inside a Graph. Every state reachable from Start belongs to the NFA.
// An NFA is immutable once Build has returned it.
type NFA struct {
	g      *Graph
	start  StateID
	accept StateID
}

// Graph returns the arena holding the NFA's states.
func (n *NFA) Graph() *Graph { return n.g }

// Start returns the start state.
func (n *NFA) Start() StateID { return n.start }

// Accept returns the single accepting state.
func (n *NFA) Accept() StateID { return n.accept }

// Alphabet returns the symbols labelling edges reachable from the start
// state, in ascending order.
func (n *NFA) Alphabet() []rune {
	var alpha []rune
	for _, s := range n.reachable() {
		n.g.eachEdge(s, func(l Label, _ StateID) {
			if l != Epsilon {
				alpha = append(alpha, rune(l))
			}
		})
	}
	slices.Sort(alpha)
	return slices.Compact(alpha)
}

// Accepts simulates the NFA on word.
func (n *NFA) Accepts(word string) bool {
	cur := EpsilonClosure(n.g, NewStateSet(n.start))
	for _, r := range word {
		moved, err := Move(n.g, cur, Label(r))
		if err != nil {
			return false
		}
		cur = EpsilonClosure(n.g, moved)
		if cur.Empty() {
			return false
		}
	}
	return cur.Contains(n.accept)
}

// reachable lists the states reachable from start in depth-first
// pre-order, following edges in insertion order.
func (n *NFA) reachable() []StateID {
	visited := make([]bool, n.g.Len())
	var order []StateID
	var dfs func(StateID)
	dfs = func(s StateID) {
		if visited[s] {
			return
		}
		visited[s] = true
		order = append(order, s)
		n.g.eachEdge(s, func(_ Label, to StateID) { dfs(to) })
	}
	dfs(n.start)
	return order
}

// --- Thompson construction ---------------------------------------------------

// frag is a partial automaton on the builder's work stack. Combinators
// never modify a frag; they return a new one.
type frag struct {
	start, accept StateID
}

type builder struct {
	g     *Graph
	stack *arraystack.Stack
}

func (b *builder) push(f frag) { b.stack.Push(f) }

func (b *builder) pop() frag {
	v, _ := b.stack.Pop()
	return v.(frag)
}

func (b *builder) symbol(r rune) frag {
	s, a := b.g.NewState(), b.g.NewState()
	b.g.AddEdge(s, Label(r), a)
	return frag{start: s, accept: a}
}

func (b *builder) concat(left, right frag) frag {
	b.g.AddEdge(left.accept, Epsilon, right.start)
	return frag{start: left.start, accept: right.accept}
}

func (b *builder) union(left, right frag) frag {
	s, a := b.g.NewState(), b.g.NewState()
	b.g.AddEdge(s, Epsilon, left.start)
	b.g.AddEdge(s, Epsilon, right.start)
	b.g.AddEdge(left.accept, Epsilon, a)
	b.g.AddEdge(right.accept, Epsilon, a)
	return frag{start: s, accept: a}
}

func (b *builder) star(f frag) frag {
	s, a := b.g.NewState(), b.g.NewState()
	b.g.AddEdge(s, Epsilon, a)              // zero occurrences
	b.g.AddEdge(s, Epsilon, f.start)        // enter
	b.g.AddEdge(f.accept, Epsilon, f.start) // loop
	b.g.AddEdge(f.accept, Epsilon, a)       // exit
	return frag{start: s, accept: a}
}

// Build runs Thompson's construction over a postfix token sequence.
// It fails with ErrMalformedExpression if an operator is short of
// operands or if the tokens do not reduce to exactly one automaton.
func Build(tokens []postfix.Token) (*NFA, error) {
	b := &builder{g: NewGraph(), stack: arraystack.New()}
	for _, tok := range tokens {
		if n := tok.Kind.Arity(); b.stack.Size() < n {
			return nil, fmt.Errorf("%w: %s operator at offset %d needs %d operand(s), has %d",
				ErrMalformedExpression, tok.Kind, tok.Pos.Offset, n, b.stack.Size())
		}
		switch tok.Kind {
		case postfix.Symbol:
			b.push(b.symbol(tok.Symbol))
		case postfix.Star:
			b.push(b.star(b.pop()))
		case postfix.Concat:
			right := b.pop()
			b.push(b.concat(b.pop(), right))
		case postfix.Union:
			right := b.pop()
			b.push(b.union(b.pop(), right))
		default:
			return nil, fmt.Errorf("%w: unknown token kind %v", ErrMalformedExpression, tok.Kind)
		}
	}
	switch b.stack.Size() {
	case 0:
		return nil, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d operands left without operator", ErrMalformedExpression,
			b.stack.Size())
	}
	f := b.pop()
	tracer().P("states", b.g.Len()).Debugf("built NFA start=%d accept=%d", f.start, f.accept)
	return &NFA{g: b.g, start: f.start, accept: f.accept}, nil
}

// Compile tokenizes a postfix expression and builds its NFA.
func Compile(expr string, opts ...Option) (*NFA, error) {
	cfg := configure(opts)
	p := postfix.Parse
	if cfg.ops != postfix.DefaultOperators {
		parser, err := postfix.New(cfg.ops)
		if err != nil {
			return nil, err
		}
		p = parser.Parse
	}
	tokens, err := p(expr)
	if err != nil {
		return nil, err
	}
	nfa, err := Build(tokens)
	if err != nil {
		tracer().Errorf("compile %q: %v", expr, err)
		return nil, err
	}
	return nfa, nil
}

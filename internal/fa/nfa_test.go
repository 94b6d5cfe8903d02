package fa

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"

	"automata/internal/postfix"
)

func mustCompile(t *testing.T, expr string, opts ...Option) *NFA {
	t.Helper()
	n, err := Compile(expr, opts...)
	if err != nil {
		t.Fatalf("compile %q: %v", expr, err)
	}
	return n
}

func TestSingleSymbol(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelDebug)
	//
	for _, sym := range []string{"a", "z", " ", "é", "#"} {
		n := mustCompile(t, sym)
		g := n.Graph()
		if g.Len() != 2 || g.EdgeCount() != 1 {
			t.Fatalf("%q: want 2 states/1 edge, have %d/%d", sym, g.Len(), g.EdgeCount())
		}
		r := []rune(sym)[0]
		if got := g.Edges(n.Start(), Label(r)); !slices.Equal(got, []StateID{n.Accept()}) {
			t.Fatalf("%q: start edges = %v, accept = %d", sym, got, n.Accept())
		}
	}
}

func TestConcatShape(t *testing.T) {
	n := mustCompile(t, "ab.")
	g := n.Graph()
	if g.Len() != 4 || g.EdgeCount() != 3 {
		t.Fatalf("want 4 states/3 edges, have %d/%d", g.Len(), g.EdgeCount())
	}
	// left operand's accept is linked to the right operand's start
	aAccept := g.Edges(n.Start(), 'a')[0]
	bStart := g.Edges(aAccept, Epsilon)[0]
	if got := g.Edges(bStart, 'b'); !slices.Equal(got, []StateID{n.Accept()}) {
		t.Fatalf("b edge leads to %v, want accept %d", got, n.Accept())
	}
}

func TestUnionShape(t *testing.T) {
	n := mustCompile(t, "ab|")
	g := n.Graph()
	if g.Len() != 6 || g.EdgeCount() != 6 {
		t.Fatalf("want 6 states/6 edges, have %d/%d", g.Len(), g.EdgeCount())
	}
	branches := g.Edges(n.Start(), Epsilon)
	if len(branches) != 2 {
		t.Fatalf("new start should fork twice, has %v", branches)
	}
	for _, b := range branches {
		for _, mid := range append(g.Edges(b, 'a'), g.Edges(b, 'b')...) {
			if got := g.Edges(mid, Epsilon); !slices.Equal(got, []StateID{n.Accept()}) {
				t.Fatalf("branch accept %d leads to %v", mid, got)
			}
		}
	}
}

func TestStarShape(t *testing.T) {
	n := mustCompile(t, "a*")
	g := n.Graph()
	if g.Len() != 4 || g.EdgeCount() != 5 {
		t.Fatalf("want 4 states/5 edges, have %d/%d", g.Len(), g.EdgeCount())
	}
	eps := g.Edges(n.Start(), Epsilon)
	if !slices.Contains(eps, n.Accept()) {
		t.Fatalf("start has no ε edge to accept: %v", eps)
	}
	var inner StateID = -1
	for _, s := range eps {
		if s != n.Accept() {
			inner = s
		}
	}
	innerAccept := g.Edges(inner, 'a')[0]
	loop := g.Edges(innerAccept, Epsilon)
	if !slices.Equal(loop, []StateID{inner, n.Accept()}) {
		t.Fatalf("operand accept should loop and exit, has %v", loop)
	}
}

func TestMalformedExpression(t *testing.T) {
	for _, expr := range []string{"*", ".", "|", "a.", "a|", "ab", "abc|", "", "a.b", "**", "ab|*a.b|."} {
		n, err := Compile(expr)
		if !errors.Is(err, ErrMalformedExpression) {
			t.Fatalf("%q: want ErrMalformedExpression, have %v", expr, err)
		}
		if n != nil {
			t.Fatalf("%q: partial NFA returned", expr)
		}
	}
}

func TestCustomOperators(t *testing.T) {
	ops := postfix.Operators{Concat: '&', Union: '+', Star: '~'}
	custom := mustCompile(t, "ab+~c&", WithOperators(ops))
	std := mustCompile(t, "ab|*c.")
	d1 := mustDeterminize(t, custom, []rune("abc"))
	d2 := mustDeterminize(t, std, []rune("abc"))
	if !Equivalent(d1, d2) {
		t.Fatalf("custom operators change the language")
	}
	// with custom operators '.' is an ordinary symbol
	dot := mustCompile(t, "a.&", WithOperators(ops))
	if !slices.Equal(dot.Alphabet(), []rune{'.', 'a'}) {
		t.Fatalf("alphabet = %q", string(dot.Alphabet()))
	}
	if _, err := Compile("ab.", WithOperators(postfix.Operators{Concat: '.', Union: '.', Star: '*'})); !errors.Is(err, postfix.ErrOperators) {
		t.Fatalf("want ErrOperators, have %v", err)
	}
}

func TestNFAAlphabet(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"a", "a"},
		{"aa.", "a"},
		{"ab|*c.", "abc"},
		{"cb.a|", "abc"},
	}
	for _, tt := range tests {
		if got := string(mustCompile(t, tt.expr).Alphabet()); got != tt.want {
			t.Errorf("%q: alphabet %q, want %q", tt.expr, got, tt.want)
		}
	}
}

func TestCompilationsAreIndependent(t *testing.T) {
	big := mustCompile(t, "ab|*c.d.e|*")
	small := mustCompile(t, "x")
	if small.Graph() == big.Graph() {
		t.Fatalf("two compilations share a graph")
	}
	if small.Graph().Len() != 2 || small.Start() != 0 || small.Accept() != 1 {
		t.Fatalf("second compilation does not start from a fresh arena: start=%d accept=%d",
			small.Start(), small.Accept())
	}
}

func TestNFAAccepts(t *testing.T) {
	n := mustCompile(t, "ab|*c.")
	for _, w := range []string{"c", "ac", "bc", "abbac"} {
		if !n.Accepts(w) {
			t.Errorf("NFA should accept %q", w)
		}
	}
	for _, w := range []string{"", "a", "cc", "ca", "x"} {
		if n.Accepts(w) {
			t.Errorf("NFA should reject %q", w)
		}
	}
}
